package auditor

import (
	"fmt"

	"bcp/common/model"
)

// 异常检测阈值
const (
	// HighGrowthThreshold 年增长率上限（超过 100% 视为异常增长）
	HighGrowthThreshold = 1.0
	// SteepDeclineThreshold 年降幅下限（跌破 -50% 视为异常下滑）
	SteepDeclineThreshold = -0.5
	// HighMarginThreshold 毛利率上限（超过 90% 提示复核）
	HighMarginThreshold = 0.9
)

// AnomalyDetector 异常检测器
// 检测负收入、异常增长率、越界毛利率
type AnomalyDetector struct{}

// NewAnomalyDetector 创建异常检测器实例
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{}
}

// CheckRecord 检测单条记录的异常
// prev 为上一财年记录，首年传 nil（无前序记录不做增长率检查）
func (d *AnomalyDetector) CheckRecord(prev *model.FinancialRecord, rec model.FinancialRecord) []model.Finding {
	findings := make([]model.Finding, 0, 3)

	// 规则 1：收入不应为负
	if rec.Revenue < 0 {
		findings = append(findings, model.Finding{
			Type:     model.FindingTypeWarning,
			Year:     rec.Year,
			Field:    "revenue",
			Message:  "Negative revenue detected",
			Severity: model.SeverityMedium,
		})
	}

	// 规则 2：年增长率检查
	// 仅当上年收入为正时计算（避免除零，且基数为负时增长率无意义）
	if prev != nil && prev.Revenue > 0 {
		growthRate := (rec.Revenue - prev.Revenue) / prev.Revenue
		if growthRate > HighGrowthThreshold {
			findings = append(findings, model.Finding{
				Type:     model.FindingTypeWarning,
				Year:     rec.Year,
				Field:    "revenue",
				Message:  fmt.Sprintf("High revenue growth rate: %.1f%%", growthRate*100),
				Severity: model.SeverityMedium,
			})
		} else if growthRate < SteepDeclineThreshold {
			findings = append(findings, model.Finding{
				Type:     model.FindingTypeWarning,
				Year:     rec.Year,
				Field:    "revenue",
				Message:  fmt.Sprintf("Significant revenue decline: %.1f%%", growthRate*100),
				Severity: model.SeverityMedium,
			})
		}
	}

	// 规则 3：毛利率检查（仅当收入为正）
	if rec.Revenue > 0 {
		grossMargin := rec.GrossProfit / rec.Revenue
		if grossMargin < 0 {
			findings = append(findings, model.Finding{
				Type:     model.FindingTypeWarning,
				Year:     rec.Year,
				Field:    "gross_profit",
				Message:  "Negative gross margin detected",
				Severity: model.SeverityHigh,
			})
		} else if grossMargin > HighMarginThreshold {
			findings = append(findings, model.Finding{
				Type:     model.FindingTypeInfo,
				Year:     rec.Year,
				Field:    "gross_profit",
				Message:  fmt.Sprintf("Very high gross margin: %.1f%%", grossMargin*100),
				Severity: model.SeverityLow,
			})
		}
	}

	return findings
}
