package utils

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"preview-tracker/pkg/errors"
)

// Response 写操作统一响应结构
type Response struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"` // 详细错误信息（可选）
}

// Success 成功响应
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, Response{OK: true})
}

// Error 错误响应
// 校验类错误返回 4xx 并附带字段详情，存储等其它错误返回 5xx
func Error(c *gin.Context, err error) {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		resp := Response{OK: false, Error: appErr.Message}
		if errors.IsValidation(appErr) && appErr.Err != nil {
			resp.Detail = FormatValidationError(appErr.Err)
		}
		c.JSON(appErr.HTTPStatus(), resp)
		return
	}

	c.JSON(http.StatusInternalServerError, Response{
		OK:    false,
		Error: err.Error(),
	})
}

// ErrorWithDetail 带详细信息的错误响应
func ErrorWithDetail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, Response{
		OK:     false,
		Error:  message,
		Detail: detail,
	})
}
