package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcp/bcsync/internal/domains/common/job"
	"bcp/bcsync/internal/domains/common/response"
	"bcp/common/model"
)

func testMeta() *job.Meta {
	return &job.Meta{
		RequestID:  "req-1",
		OrgID:      "0",
		ActionType: "case_audit",
		ID:         "42",
	}
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"case_id":      42,
		"project_name": "demo",
		"case": map[string]interface{}{
			"project_name": "demo",
			"financial_data": []map[string]interface{}{
				{"year": 2024, "revenue": 100.0, "costs": 40.0, "gross_profit": 60.0,
					"operating_expenses": 20.0, "ebitda": 40.0, "depreciation": 5.0,
					"ebit": 35.0, "interest": 2.0, "taxes": 8.0, "net_income": 25.0},
			},
			"assumptions": map[string]string{"growth": "steady"},
		},
	}
}

func TestNewAuditHandler_ValidPayload(t *testing.T) {
	h, err := NewAuditHandler(context.Background(), testMeta(), validPayload())
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestNewAuditHandler_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]interface{})
		wantErr string
	}{
		{"缺 case_id", func(p map[string]interface{}) { delete(p, "case_id") }, "case_id is required"},
		{"缺 project_name", func(p map[string]interface{}) { delete(p, "project_name") }, "project_name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPayload()
			tt.mutate(payload)

			h, err := NewAuditHandler(context.Background(), testMeta(), payload)
			assert.Nil(t, h)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewAuditHandler_NonNumericField(t *testing.T) {
	payload := validPayload()
	payload["case"].(map[string]interface{})["financial_data"] = []map[string]interface{}{
		{"year": 2024, "revenue": "a-lot"},
	}

	h, err := NewAuditHandler(context.Background(), testMeta(), payload)
	assert.Nil(t, h)
	assert.ErrorContains(t, err, "unmarshal business data failed")
}

func TestAuditHandler_GetProcess_MissingService(t *testing.T) {
	// Context 未注入 AuditService：不可重试失败，结果状态 FAILED
	h, err := NewAuditHandler(context.Background(), testMeta(), validPayload())
	require.NoError(t, err)

	resp := h.GetProcess()
	require.NotNil(t, resp.Error)
	assert.False(t, resp.Error.Retryable)
	assert.False(t, resp.Processed)
	assert.Equal(t, response.AuditStatusFailed, resp.Result.GetStatus())
}

func TestAuditHandler_PayloadRoundTrip(t *testing.T) {
	h, err := NewAuditHandler(context.Background(), testMeta(), validPayload())
	require.NoError(t, err)

	ah := h.(*AuditHandler)
	assert.Equal(t, int64(42), ah.jobData.CaseID)
	assert.Equal(t, "demo", ah.jobData.ProjectName)
	require.Len(t, ah.jobData.Case.FinancialData, 1)
	assert.Equal(t, model.FinancialRecord{
		Year: 2024, Revenue: 100, Costs: 40, GrossProfit: 60,
		OperatingExpenses: 20, EBITDA: 40, Depreciation: 5,
		EBIT: 35, Interest: 2, Taxes: 8, NetIncome: 25,
	}, ah.jobData.Case.FinancialData[0])
}
