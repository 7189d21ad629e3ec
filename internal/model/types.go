package model

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// PreviewStatusTypeName PostgreSQL 枚举类型名
const PreviewStatusTypeName = "preview_status"

// PreviewStatus 预览环境状态
type PreviewStatus string

const (
	PreviewStatusReady PreviewStatus = "ready" // 可访问
	PreviewStatusDown  PreviewStatus = "down"  // 已主动下线
	PreviewStatusError PreviewStatus = "error" // 部署失败
)

// PreviewStatuses 全部合法状态，顺序固定
var PreviewStatuses = []PreviewStatus{PreviewStatusReady, PreviewStatusDown, PreviewStatusError}

// IsValid 是否为合法状态
func (s PreviewStatus) IsValid() bool {
	switch s {
	case PreviewStatusReady, PreviewStatusDown, PreviewStatusError:
		return true
	}
	return false
}

// OrDefault 空状态回落为 ready
func (s PreviewStatus) OrDefault() PreviewStatus {
	if s == "" {
		return PreviewStatusReady
	}
	return s
}

// 实现 sql.Scanner
func (s *PreviewStatus) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into PreviewStatus", value)
	}
	status := PreviewStatus(raw)
	if !status.IsValid() {
		return fmt.Errorf("invalid preview status %q", raw)
	}
	*s = status
	return nil
}

// 实现 driver.Valuer，非法值不会被写入数据库
func (s PreviewStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid preview status %q", string(s))
	}
	return string(s), nil
}

// GormDBDataType 按方言选择列类型：MySQL 内联 ENUM，PostgreSQL 使用命名枚举类型
func (PreviewStatus) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "ENUM('ready','down','error')"
	case "postgres":
		return PreviewStatusTypeName
	}
	return "varchar(16)"
}
