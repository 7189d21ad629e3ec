package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"preview-tracker/internal/dto"
	"preview-tracker/internal/metrics"
	"preview-tracker/internal/model"
	"preview-tracker/internal/pkg/logger"
	"preview-tracker/internal/repository"
	pkgErrors "preview-tracker/pkg/errors"
	"preview-tracker/pkg/utils"
)

const (
	opRegister  = "register"
	opSetStatus = "set_status"
	opList      = "list"
)

// PreviewService 预览环境服务接口
type PreviewService interface {
	RegisterOrUpdate(ctx context.Context, req *dto.RegisterPreviewRequest) error
	SetStatus(ctx context.Context, req *dto.UpdatePreviewStatusRequest) error
	List(ctx context.Context) ([]*model.Preview, error)
}

type previewService struct {
	previewRepo repository.PreviewRepository
	validate    *validator.Validate
}

// NewPreviewService 创建预览环境服务实例
// 校验规则与 gin 绑定共用 binding 标签，非 HTTP 调用方得到相同的校验
func NewPreviewService(previewRepo repository.PreviewRepository) PreviewService {
	v := validator.New()
	v.SetTagName("binding")
	v.RegisterTagNameFunc(utils.JSONFieldName)
	return &previewService{
		previewRepo: previewRepo,
		validate:    v,
	}
}

// RegisterOrUpdate 注册或更新预览环境（按 build_id upsert）
func (s *previewService) RegisterOrUpdate(ctx context.Context, req *dto.RegisterPreviewRequest) (err error) {
	defer func() { observe(opRegister, err) }()

	if req == nil || req.BuildID == "" {
		return pkgErrors.ErrMissingBuildID
	}
	if err := s.validate.Struct(req); err != nil {
		return pkgErrors.Validation("Invalid preview payload", err)
	}

	preview := req.ToModel()
	if err := s.previewRepo.Upsert(ctx, preview); err != nil {
		logger.Error("注册预览环境失败", zap.String("build_id", req.BuildID), zap.Error(err))
		return err
	}

	logger.Info("预览环境已注册",
		zap.String("build_id", preview.BuildID),
		zap.String("repo", preview.Repo),
		zap.Int("pr_number", preview.PRNumber),
		zap.String("status", string(preview.Status)))
	return nil
}

// SetStatus 更新预览环境状态
// 不存在的 build_id 不报错也不创建记录；不刷新 updated_at
func (s *previewService) SetStatus(ctx context.Context, req *dto.UpdatePreviewStatusRequest) (err error) {
	defer func() { observe(opSetStatus, err) }()

	if req == nil || req.BuildID == "" || req.Status == "" {
		return pkgErrors.ErrMissingBuildIDOrStatus
	}
	if err := s.validate.Struct(req); err != nil {
		return pkgErrors.Validation("Invalid status", err)
	}

	affected, err := s.previewRepo.UpdateStatus(ctx, req.BuildID, req.Status)
	if err != nil {
		logger.Error("更新预览环境状态失败", zap.String("build_id", req.BuildID), zap.Error(err))
		return err
	}

	if affected == 0 {
		logger.Warn("预览环境不存在，忽略状态更新", zap.String("build_id", req.BuildID), zap.String("status", string(req.Status)))
		return nil
	}

	logger.Info("预览环境状态已更新", zap.String("build_id", req.BuildID), zap.String("status", string(req.Status)))
	return nil
}

// List 查询全部预览环境，按创建时间倒序
func (s *previewService) List(ctx context.Context) (previews []*model.Preview, err error) {
	defer func() { observe(opList, err) }()

	previews, err = s.previewRepo.List(ctx)
	if err != nil {
		logger.Error("查询预览环境列表失败", zap.Error(err))
		return nil, err
	}
	return previews, nil
}

// observe 记录操作结果
func observe(operation string, err error) {
	result := "ok"
	switch {
	case err == nil:
	case pkgErrors.IsValidation(err):
		result = "validation_error"
	default:
		result = "storage_error"
	}
	metrics.PreviewOperations.WithLabelValues(operation, result).Inc()
}
