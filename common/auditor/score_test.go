package auditor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bcp/common/model"
)

func findingsWithSeverity(severities ...model.Severity) []model.Finding {
	findings := make([]model.Finding, 0, len(severities))
	for _, s := range severities {
		findings = append(findings, model.Finding{
			Type:     model.FindingTypeWarning,
			Year:     2024,
			Field:    "revenue",
			Message:  "test finding",
			Severity: s,
		})
	}
	return findings
}

func TestRiskScorer_EmptyFindings(t *testing.T) {
	s := NewRiskScorer()

	assert.Equal(t, 0.0, s.Score(nil))
	assert.Equal(t, 0.0, s.Score([]model.Finding{}))
}

func TestRiskScorer_SeverityMix(t *testing.T) {
	s := NewRiskScorer()

	tests := []struct {
		name       string
		severities []model.Severity
		want       float64
	}{
		{"单条 medium", []model.Severity{model.SeverityMedium}, 2.0 / 3.0},
		{"单条 high 满分", []model.Severity{model.SeverityHigh}, 1.0},
		{"全部 high 满分", []model.Severity{model.SeverityHigh, model.SeverityHigh, model.SeverityHigh}, 1.0},
		{"全部 low", []model.Severity{model.SeverityLow, model.SeverityLow}, 2.0 / 6.0},
		{"高低混合", []model.Severity{model.SeverityHigh, model.SeverityLow}, 4.0 / 6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(findingsWithSeverity(tt.severities...))
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRiskScorer_SeverityMixBeatsCount(t *testing.T) {
	s := NewRiskScorer()

	// 归一化基准是"全部为 high"：五条 low 的得分低于两条 high
	fiveLow := s.Score(findingsWithSeverity(
		model.SeverityLow, model.SeverityLow, model.SeverityLow,
		model.SeverityLow, model.SeverityLow,
	))
	twoHigh := s.Score(findingsWithSeverity(model.SeverityHigh, model.SeverityHigh))

	assert.Less(t, fiveLow, twoHigh)
}

func TestRiskScorer_MonotonicInHighFindings(t *testing.T) {
	s := NewRiskScorer()

	// 逐条追加 high 级别发现，分数单调不减且不超过 1.0
	severities := []model.Severity{model.SeverityLow, model.SeverityLow}
	prev := s.Score(findingsWithSeverity(severities...))

	for i := 0; i < 10; i++ {
		severities = append(severities, model.SeverityHigh)
		got := s.Score(findingsWithSeverity(severities...))

		assert.GreaterOrEqual(t, got, prev)
		assert.LessOrEqual(t, got, 1.0)
		prev = got
	}
}

func TestRiskScorer_UnknownSeverityDefaultsToLowest(t *testing.T) {
	s := NewRiskScorer()

	// 未知级别按权重 1 计，与 low 等价
	unknown := s.Score(findingsWithSeverity(model.Severity("bogus")))
	low := s.Score(findingsWithSeverity(model.SeverityLow))

	assert.Equal(t, low, unknown)
}
