package model

// CaseAuditJob 业务案例审计任务消息（标准化）
// 用于 bcmain → bcsync 的消息传递
type CaseAuditJob struct {
	Payload CaseAuditPayload `json:"payload"`
}

// CaseAuditPayload Job 负载
type CaseAuditPayload struct {
	Data CaseAuditData `json:"data"`
}

// CaseAuditData Job 数据层
type CaseAuditData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（全链路追踪）
	OrgID      string `json:"org_id"`      // 组织 ID（MVP 固定为 "0"）
	ActionType string `json:"action_type"` // 动作类型，固定值 "case_audit"
	ID         string `json:"id"`          // 案例 ID（字符串形式）

	// 业务数据
	Data CaseAuditBusinessData `json:"data"`
}

// CaseAuditBusinessData 案例审计业务数据
// 包含 bcsync 执行审计所需的所有数据（避免查询 DB）
type CaseAuditBusinessData struct {
	CaseID      int64            `json:"case_id"`      // 案例 ID
	ProjectName string           `json:"project_name"` // 项目名
	Case        BusinessCaseData `json:"case"`         // 完整案例数据
}
