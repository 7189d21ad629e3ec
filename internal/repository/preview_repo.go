package repository

import (
	"context"

	"gorm.io/gorm"

	"preview-tracker/internal/model"
	pkgErrors "preview-tracker/pkg/errors"
)

// PreviewRepository 预览环境仓储接口
type PreviewRepository interface {
	Upsert(ctx context.Context, preview *model.Preview) error
	UpdateStatus(ctx context.Context, buildID string, status model.PreviewStatus) (int64, error)
	List(ctx context.Context) ([]*model.Preview, error)
	CountByStatus(ctx context.Context) ([]model.PreviewStatusCount, error)
}

type previewRepository struct {
	db *gorm.DB
}

// NewPreviewRepository 创建预览环境仓储实例
func NewPreviewRepository(db *gorm.DB) PreviewRepository {
	return &previewRepository{db: db}
}

// Upsert 按 build_id 插入或更新，单条语句完成
// 已存在时只更新 frontend_url、status、updated_at
func (r *previewRepository) Upsert(ctx context.Context, preview *model.Preview) error {
	err := r.db.WithContext(ctx).
		Clauses(upsertOnBuildID).
		Create(preview).Error
	if err != nil {
		return pkgErrors.Storage("upsert preview failed", err)
	}
	return nil
}

// UpdateStatus 更新状态，返回受影响行数；0 行不视为错误
// 使用 UpdateColumn 避免刷新 updated_at
func (r *previewRepository) UpdateStatus(ctx context.Context, buildID string, status model.PreviewStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Preview{}).
		Where("build_id = ?", buildID).
		UpdateColumn("status", status)
	if result.Error != nil {
		return 0, pkgErrors.Storage("update preview status failed", result.Error)
	}
	return result.RowsAffected, nil
}

// List 查询全部预览，最新创建的在前
func (r *previewRepository) List(ctx context.Context) ([]*model.Preview, error) {
	previews := make([]*model.Preview, 0)
	if err := OrderByNewest()(r.db.WithContext(ctx)).Find(&previews).Error; err != nil {
		return nil, pkgErrors.Storage("list previews failed", err)
	}
	return previews, nil
}

// CountByStatus 按状态统计数量
func (r *previewRepository) CountByStatus(ctx context.Context) ([]model.PreviewStatusCount, error) {
	var counts []model.PreviewStatusCount
	err := r.db.WithContext(ctx).
		Model(&model.Preview{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, pkgErrors.Storage("count previews by status failed", err)
	}
	return counts, nil
}
