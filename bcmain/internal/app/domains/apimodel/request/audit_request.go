package request

// AuditRequest 同步审计请求（案例数据随请求内联，不落库）
type AuditRequest struct {
	BusinessCaseData *BusinessCaseRequest `json:"business_case_data" binding:"required"`
}

// FormulaRequest 公式校验请求
// 所有字段可省略：左右值缺省为 0，比较符缺省 "="，容差缺省 0.01
type FormulaRequest struct {
	LeftSide  *float64 `json:"left_side" example:"100"`
	RightSide *float64 `json:"right_side" example:"100.005"`
	Operator  string   `json:"operator" example:"="`
	Tolerance *float64 `json:"tolerance" example:"0.01"`
}
