package auditor

import (
	"strings"

	"bcp/common/model"
)

// MinProjectionYears 建议的最少预测年数
const MinProjectionYears = 3

// SuggestionGenerator 改进建议生成器
// 根据发现模式与模型完整度输出固定集合内的建议
type SuggestionGenerator struct{}

// NewSuggestionGenerator 创建建议生成器实例
func NewSuggestionGenerator() *SuggestionGenerator {
	return &SuggestionGenerator{}
}

// Generate 生成改进建议
// 各条规则独立判定、按固定顺序追加，不互斥
func (g *SuggestionGenerator) Generate(findings []model.Finding, data *model.BusinessCaseData) []string {
	suggestions := make([]string, 0, 5)

	errorCount := 0
	warningCount := 0
	for _, f := range findings {
		switch f.Type {
		case model.FindingTypeError:
			errorCount++
		case model.FindingTypeWarning:
			warningCount++
		}
	}

	if errorCount > 0 {
		suggestions = append(suggestions, "Review and correct calculation formulas in the financial model")
	}

	if warningCount > 0 {
		suggestions = append(suggestions, "Validate assumptions for flagged metrics")
	}

	// 收入字段上含 "growth" 字样的发现（下滑类消息不命中）
	for _, f := range findings {
		if f.Field == "revenue" && strings.Contains(f.Message, "growth") {
			suggestions = append(suggestions, "Consider adding sensitivity analysis for revenue projections")
			break
		}
	}

	if len(data.Assumptions) == 0 {
		suggestions = append(suggestions, "Document key assumptions underlying the financial projections")
	}

	if len(data.FinancialData) < MinProjectionYears {
		suggestions = append(suggestions, "Consider extending projections to at least 3-5 years")
	}

	return suggestions
}
