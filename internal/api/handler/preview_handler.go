package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"preview-tracker/internal/dto"
	"preview-tracker/internal/service"
	"preview-tracker/pkg/utils"
)

// PreviewHandler 预览环境处理器
type PreviewHandler struct {
	previewService service.PreviewService
}

// NewPreviewHandler 创建预览环境处理器
func NewPreviewHandler(previewService service.PreviewService) *PreviewHandler {
	return &PreviewHandler{previewService: previewService}
}

// Register 注册或更新预览环境
// @Summary 注册或更新预览环境
// @Description 构建完成后由 CI 调用，按 build_id upsert；已存在时仅更新 frontend_url、status、updated_at
// @Tags Preview
// @Accept json
// @Produce json
// @Param request body dto.RegisterPreviewRequest true "预览环境信息"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/previews [post]
func (h *PreviewHandler) Register(c *gin.Context) {
	var req dto.RegisterPreviewRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.previewService.RegisterOrUpdate(c.Request.Context(), &req); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c)
}

// UpdateStatus 更新预览环境状态
// @Summary 更新预览环境状态
// @Description build_id 不存在时不报错也不创建记录
// @Tags Preview
// @Accept json
// @Produce json
// @Param request body dto.UpdatePreviewStatusRequest true "build_id 与状态"
// @Success 200 {object} utils.Response
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /api/previews [patch]
func (h *PreviewHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdatePreviewStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.previewService.SetStatus(c.Request.Context(), &req); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c)
}

// List 查询全部预览环境
// @Summary 查询预览环境列表
// @Description 返回全部记录，按创建时间倒序，无分页
// @Tags Preview
// @Produce json
// @Success 200 {array} model.Preview
// @Failure 500 {object} utils.Response
// @Router /api/previews [get]
func (h *PreviewHandler) List(c *gin.Context) {
	previews, err := h.previewService.List(c.Request.Context())
	if err != nil {
		utils.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, previews)
}

// bindJSON 解析请求体；字段级校验失败时交由服务层统一给出错误信息
func bindJSON(c *gin.Context, req interface{}) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return true
	}

	utils.ErrorWithDetail(c, http.StatusBadRequest, "Invalid JSON body", utils.FormatValidationError(err))
	return false
}
