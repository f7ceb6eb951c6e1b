package errorx

import "errors"

// 定义业务错误
var (
	ErrCaseNotFound       = errors.New("business case not found")
	ErrAuditTimeout       = errors.New("audit timeout")
	ErrUnknownCanvasBlock = errors.New("unknown canvas block")
	ErrLLMNotConfigured   = errors.New("AI service not configured")
	ErrKBNotConfigured    = errors.New("knowledge base not configured")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
