package model

const PreviewTableName = "previews"

// Preview 预览环境记录，每个构建一行
type Preview struct {
	BaseModel

	// 构建标识（upsert 键）
	BuildID string `gorm:"column:build_id;size:64;not null;uniqueIndex:uk_previews_build_id" json:"build_id"`

	// 仓库信息
	Repo      string `gorm:"size:255;not null;index:repo_idx;index:repo_pr_idx,priority:1" json:"repo"`
	PRNumber  int    `gorm:"column:pr_number;not null;index:repo_pr_idx,priority:2" json:"pr_number"`
	CommitSHA string `gorm:"column:commit_sha;size:64;not null" json:"commit_sha"`
	Branch    string `gorm:"type:text;not null" json:"branch"`
	Actor     string `gorm:"type:text;not null" json:"actor"`

	// 部署信息
	FrontendURL string        `gorm:"column:frontend_url;type:text;not null" json:"frontend_url"`
	Status      PreviewStatus `gorm:"not null;default:ready;index:status_idx" json:"status"`
}

// TableName 指定表名
func (Preview) TableName() string {
	return PreviewTableName
}

// PreviewStatusCount 按状态聚合的数量
type PreviewStatusCount struct {
	Status PreviewStatus `gorm:"column:status"`
	Total  int64         `gorm:"column:total"`
}
