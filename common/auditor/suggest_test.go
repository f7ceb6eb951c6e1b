package auditor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bcp/common/model"
)

func TestSuggestionGenerator_CleanModel(t *testing.T) {
	g := NewSuggestionGenerator()

	data := &model.BusinessCaseData{
		ProjectName: "clean",
		FinancialData: []model.FinancialRecord{
			consistentRecord(2024, 100, 40, 20, 5),
			consistentRecord(2025, 120, 50, 25, 5),
			consistentRecord(2026, 140, 60, 30, 5),
		},
		Assumptions: map[string]string{"growth": "20% YoY"},
	}

	assert.Empty(t, g.Generate(nil, data))
}

func TestSuggestionGenerator_ErrorAndWarningRules(t *testing.T) {
	g := NewSuggestionGenerator()

	data := &model.BusinessCaseData{
		ProjectName: "demo",
		FinancialData: []model.FinancialRecord{
			consistentRecord(2024, 100, 40, 20, 5),
			consistentRecord(2025, 120, 50, 25, 5),
			consistentRecord(2026, 140, 60, 30, 5),
		},
		Assumptions: map[string]string{"pricing": "flat"},
	}

	findings := []model.Finding{
		{Type: model.FindingTypeError, Year: 2024, Field: "ebitda", Message: "EBITDA mismatch. Expected: 40.00, Found: 45.00", Severity: model.SeverityHigh},
		{Type: model.FindingTypeWarning, Year: 2025, Field: "gross_profit", Message: "Negative gross margin detected", Severity: model.SeverityHigh},
	}

	got := g.Generate(findings, data)

	assert.Equal(t, []string{
		"Review and correct calculation formulas in the financial model",
		"Validate assumptions for flagged metrics",
	}, got)
}

func TestSuggestionGenerator_SensitivityAnalysisOnGrowth(t *testing.T) {
	g := NewSuggestionGenerator()

	data := &model.BusinessCaseData{
		ProjectName: "demo",
		FinancialData: []model.FinancialRecord{
			consistentRecord(2024, 100, 40, 20, 5),
			consistentRecord(2025, 250, 90, 50, 5),
			consistentRecord(2026, 300, 100, 60, 5),
		},
		Assumptions: map[string]string{"pricing": "flat"},
	}

	growth := []model.Finding{
		{Type: model.FindingTypeWarning, Year: 2025, Field: "revenue", Message: "High revenue growth rate: 150.0%", Severity: model.SeverityMedium},
	}
	got := g.Generate(growth, data)
	assert.Contains(t, got, "Consider adding sensitivity analysis for revenue projections")

	// 下滑类消息不含 "growth" 字样，不触发敏感性分析建议
	decline := []model.Finding{
		{Type: model.FindingTypeWarning, Year: 2025, Field: "revenue", Message: "Significant revenue decline: -60.0%", Severity: model.SeverityMedium},
	}
	got = g.Generate(decline, data)
	assert.NotContains(t, got, "Consider adding sensitivity analysis for revenue projections")
}

func TestSuggestionGenerator_CompletenessRules(t *testing.T) {
	g := NewSuggestionGenerator()

	// 假设缺失 + 预测年数不足
	data := &model.BusinessCaseData{
		ProjectName: "thin",
		FinancialData: []model.FinancialRecord{
			consistentRecord(2024, 100, 40, 20, 5),
			consistentRecord(2025, 120, 50, 25, 5),
		},
	}

	got := g.Generate(nil, data)

	assert.Equal(t, []string{
		"Document key assumptions underlying the financial projections",
		"Consider extending projections to at least 3-5 years",
	}, got)

	// 恰好 3 年不再提示扩展
	data.FinancialData = append(data.FinancialData, consistentRecord(2026, 140, 60, 30, 5))
	data.Assumptions = map[string]string{"note": "documented"}
	assert.Empty(t, g.Generate(nil, data))
}
