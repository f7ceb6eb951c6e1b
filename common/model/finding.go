package model

// FindingType 审计发现类型
type FindingType string

// Severity 审计发现严重级别
type Severity string

// 发现类型常量
const (
	FindingTypeError   FindingType = "error"
	FindingTypeWarning FindingType = "warning"
	FindingTypeInfo    FindingType = "info"
)

// 严重级别常量
const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Finding 单条审计发现
type Finding struct {
	Type     FindingType `json:"type"`
	Year     int         `json:"year"`
	Field    string      `json:"field"`    // 问题字段，例如 gross_profit
	Message  string      `json:"message"`  // 人类可读描述
	Severity Severity    `json:"severity"` // high/medium/low
}
