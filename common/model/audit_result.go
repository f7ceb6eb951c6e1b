package model

// AuditResult 审计结果容器
type AuditResult struct {
	Status      string    `json:"status"`
	Findings    []Finding `json:"findings"`
	Suggestions []string  `json:"suggestions"`
	RiskScore   float64   `json:"risk_score"` // 归一化风险分 [0, 1]
}

// 审计状态常量
const (
	AuditStatusCompleted = "completed"
)
