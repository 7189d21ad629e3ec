package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// 错误码
const (
	CodeSuccess         = 200
	CodeBadRequest      = 400
	CodeNotFound        = 404
	CodeInternalError   = 500
	CodeDatabaseError   = 501
	CodeValidationError = 503
)

// AppError 应用错误
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持 errors.Is / errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 业务错误码对应的 HTTP 状态：参数/校验类为 4xx，其余为 5xx
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case CodeBadRequest, CodeValidationError:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新错误
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装错误
func Wrap(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Validation 创建校验错误（调用方错误，未触达存储）
func Validation(message string, err error) *AppError {
	return Wrap(CodeValidationError, message, err)
}

// Storage 创建存储错误（持久化失败，不重试）
func Storage(message string, err error) *AppError {
	return Wrap(CodeDatabaseError, message, err)
}

// IsValidation 是否为校验错误
func IsValidation(err error) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == CodeValidationError || appErr.Code == CodeBadRequest
}

// IsStorage 是否为存储错误
func IsStorage(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr) && appErr.Code == CodeDatabaseError
}

// 预定义错误
var (
	ErrBadRequest      = New(CodeBadRequest, "Invalid request")
	ErrInternalError   = New(CodeInternalError, "Internal server error")
	ErrDatabaseError   = New(CodeDatabaseError, "Database error")
	ErrValidationError = New(CodeValidationError, "Validation failed")

	ErrMissingBuildIDOrStatus = New(CodeValidationError, "Missing build_id or status")
	ErrMissingBuildID         = New(CodeValidationError, "Missing build_id")
)
