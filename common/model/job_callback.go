package model

// CaseAuditCallback 案例审计回调消息（标准化）
// 用于 bcsync → bcmain callback consumer 的消息传递
type CaseAuditCallback struct {
	RequestID   string       `json:"request_id"`             // 对应请求的 request_id（链路追踪）
	CaseID      int64        `json:"case_id"`                // 案例 ID
	ProjectName string       `json:"project_name"`           // 项目名
	Status      string       `json:"status"`                 // 回调状态: SUCCESS / FAILED
	AuditResult *AuditResult `json:"audit_result,omitempty"` // 审计结果（成功时返回）
	Error       string       `json:"error,omitempty"`        // 错误信息（失败时返回）
	ProcessedAt int64        `json:"processed_at"`           // 处理时间戳（Unix timestamp）
}

// 回调状态常量
const (
	CallbackStatusSuccess = "SUCCESS" // 审计成功
	CallbackStatusFailed  = "FAILED"  // 审计失败
)
