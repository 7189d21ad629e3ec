package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// upsertOnBuildID 冲突时仅更新这些列，其它仓库元数据与 created_at 保持不变
var upsertOnBuildID = clause.OnConflict{
	Columns:   []clause.Column{{Name: "build_id"}},
	DoUpdates: clause.AssignmentColumns([]string{"frontend_url", "status", "updated_at"}),
}

type QueryOption func(*gorm.DB) *gorm.DB

// OrderByNewest created_at 倒序，id 倒序保证同一时间戳下顺序稳定
func OrderByNewest() QueryOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC").Order("id DESC")
	}
}
