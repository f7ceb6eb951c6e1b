package auditor

import "bcp/common/model"

// severityWeights 严重级别权重表
var severityWeights = map[model.Severity]int{
	model.SeverityHigh:   3,
	model.SeverityMedium: 2,
	model.SeverityLow:    1,
}

// RiskScorer 风险评分器
// 将审计发现聚合为单一归一化风险分
type RiskScorer struct{}

// NewRiskScorer 创建风险评分器实例
func NewRiskScorer() *RiskScorer {
	return &RiskScorer{}
}

// Score 计算风险分 [0, 1]
// 以"全部为 high 级别"作为归一化基准：分数反映严重度构成而非发现条数，
// 五条 low 的模型得分低于两条 high 的模型
func (s *RiskScorer) Score(findings []model.Finding) float64 {
	if len(findings) == 0 {
		return 0.0
	}

	totalWeight := 0
	for _, f := range findings {
		w, ok := severityWeights[f.Severity]
		if !ok {
			w = 1 // 未知级别按最低权重计
		}
		totalWeight += w
	}

	maxPossible := len(findings) * 3
	if maxPossible < 1 {
		maxPossible = 1
	}

	score := float64(totalWeight) / float64(maxPossible)
	if score > 1.0 {
		score = 1.0
	}
	return score
}
