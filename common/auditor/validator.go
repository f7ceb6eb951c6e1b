package auditor

import (
	"fmt"
	"math"

	"bcp/common/model"
)

// IdentityTolerance 勾稽校验容差（绝对差值）
// 固定为 0.01：吸收浮点舍入误差，同时不掩盖真实的模型错误
const IdentityTolerance = 0.01

// Validator 财务模型校验器
// 对每个财年记录重算派生字段并与填报值对比
type Validator struct{}

// NewValidator 创建校验器实例
func NewValidator() *Validator {
	return &Validator{}
}

// CheckRecord 校验单条记录的勾稽关系
// 三项检查相互独立：每项只对比该公式自身的输入与声明的输出，
// 不从 revenue/costs 做端到端重算（即使 gross_profit 已经错了，
// ebitda 检查仍以填报的 gross_profit 为基准）
func (v *Validator) CheckRecord(rec model.FinancialRecord) []model.Finding {
	findings := make([]model.Finding, 0, 3)

	// 规则 1：Gross Profit = Revenue - Costs
	expectedGrossProfit := rec.Revenue - rec.Costs
	if math.Abs(rec.GrossProfit-expectedGrossProfit) > IdentityTolerance {
		findings = append(findings, model.Finding{
			Type:     model.FindingTypeError,
			Year:     rec.Year,
			Field:    "gross_profit",
			Message:  fmt.Sprintf("Gross Profit mismatch. Expected: %.2f, Found: %.2f", expectedGrossProfit, rec.GrossProfit),
			Severity: model.SeverityHigh,
		})
	}

	// 规则 2：EBITDA = Gross Profit - Operating Expenses
	expectedEBITDA := rec.GrossProfit - rec.OperatingExpenses
	if math.Abs(rec.EBITDA-expectedEBITDA) > IdentityTolerance {
		findings = append(findings, model.Finding{
			Type:     model.FindingTypeError,
			Year:     rec.Year,
			Field:    "ebitda",
			Message:  fmt.Sprintf("EBITDA mismatch. Expected: %.2f, Found: %.2f", expectedEBITDA, rec.EBITDA),
			Severity: model.SeverityHigh,
		})
	}

	// 规则 3：EBIT = EBITDA - Depreciation
	expectedEBIT := rec.EBITDA - rec.Depreciation
	if math.Abs(rec.EBIT-expectedEBIT) > IdentityTolerance {
		findings = append(findings, model.Finding{
			Type:     model.FindingTypeError,
			Year:     rec.Year,
			Field:    "ebit",
			Message:  fmt.Sprintf("EBIT mismatch. Expected: %.2f, Found: %.2f", expectedEBIT, rec.EBIT),
			Severity: model.SeverityHigh,
		})
	}

	return findings
}
