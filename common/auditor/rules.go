package auditor

import "bcp/common/model"

// Rule 审计规则描述（用于展示与文档）
type Rule struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Severity    model.Severity `json:"severity"`
}

// Rules 返回审计使用的固定规则清单
// 纯声明，不参与计算
func Rules() []Rule {
	return []Rule{
		{
			ID:          "gross_profit_check",
			Description: "Gross Profit = Revenue - Costs",
			Severity:    model.SeverityHigh,
		},
		{
			ID:          "ebitda_check",
			Description: "EBITDA = Gross Profit - Operating Expenses",
			Severity:    model.SeverityHigh,
		},
		{
			ID:          "ebit_check",
			Description: "EBIT = EBITDA - Depreciation",
			Severity:    model.SeverityHigh,
		},
		{
			ID:          "negative_revenue_check",
			Description: "Revenue should not be negative",
			Severity:    model.SeverityMedium,
		},
		{
			ID:          "growth_rate_check",
			Description: "Flag unusual year-over-year growth rates",
			Severity:    model.SeverityMedium,
		},
		{
			ID:          "margin_check",
			Description: "Validate profit margins are within reasonable ranges",
			Severity:    model.SeverityLow,
		},
	}
}
