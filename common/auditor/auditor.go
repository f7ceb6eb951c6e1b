// Package auditor 实现业务案例的规则审计引擎：
// 勾稽校验、异常检测、风险评分、改进建议
package auditor

import "bcp/common/model"

// Auditor 财务逻辑审计器（组装四个组件）
// 无状态、无 I/O，可任意并发调用
type Auditor struct {
	validator *Validator
	detector  *AnomalyDetector
	scorer    *RiskScorer
	suggester *SuggestionGenerator
}

// New 创建审计器实例
func New() *Auditor {
	return &Auditor{
		validator: NewValidator(),
		detector:  NewAnomalyDetector(),
		scorer:    NewRiskScorer(),
		suggester: NewSuggestionGenerator(),
	}
}

// Audit 执行完整审计流程
// 逐年先做勾稽校验、再做异常检测，发现顺序与输入顺序一致；
// 单条记录的问题不会中断其余记录的处理（一次跑完、全部上报）
func (a *Auditor) Audit(data *model.BusinessCaseData) *model.AuditResult {
	findings := make([]model.Finding, 0)

	for i, rec := range data.FinancialData {
		// 1. 勾稽校验
		findings = append(findings, a.validator.CheckRecord(rec)...)

		// 2. 异常检测（增长率检查需要上一财年记录）
		var prev *model.FinancialRecord
		if i > 0 {
			prev = &data.FinancialData[i-1]
		}
		findings = append(findings, a.detector.CheckRecord(prev, rec)...)
	}

	return &model.AuditResult{
		Status:      model.AuditStatusCompleted,
		Findings:    findings,
		Suggestions: a.suggester.Generate(findings, data),
		RiskScore:   a.scorer.Score(findings),
	}
}
