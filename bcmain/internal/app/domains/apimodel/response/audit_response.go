package response

import "bcp/common/auditor"

// RulesResponse 审计规则目录响应（DTO）
// 审计结果与公式校验结果直接复用 model.AuditResult / auditor.FormulaResult（本身即线上格式）
type RulesResponse struct {
	Rules []auditor.Rule `json:"rules"`
}
