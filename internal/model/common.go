package model

import "time"

// BaseModel 基础模型
// CreatedAt 仅在插入时写入；UpdatedAt 由 GORM 在 Create/Save/Updates 时刷新，UpdateColumn 不会触碰
type BaseModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
