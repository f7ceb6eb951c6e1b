package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/domains/modules/mdaudit"
	"bcp/bcmain/internal/app/domains/modules/mdcase"
	"bcp/bcmain/internal/app/domains/services/svaudit"
	"bcp/bcmain/internal/app/domains/services/svcanvas"
	"bcp/bcmain/internal/app/domains/services/svcase"
	"bcp/bcmain/internal/app/domains/services/svexport"
	"bcp/bcmain/internal/app/domains/services/svsearch"
	"bcp/bcmain/internal/app/infra/mq/lmstfy"
	"bcp/bcmain/internal/app/server/handlers/audit"
	"bcp/bcmain/internal/app/server/handlers/canvas"
	"bcp/bcmain/internal/app/server/handlers/cases"
	"bcp/bcmain/internal/app/server/handlers/export"
	"bcp/common/model"
)

// fakeCaseRepo 内存版案例仓储，按插入顺序保存
type fakeCaseRepo struct {
	mu    sync.Mutex
	order []int64
	cases map[int64]*etcase.BusinessCase
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[int64]*etcase.BusinessCase)}
}

func (r *fakeCaseRepo) Create(_ context.Context, businessCase *etcase.BusinessCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *businessCase
	r.cases[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	return nil
}

func (r *fakeCaseRepo) GetByID(_ context.Context, caseID int64) (*etcase.BusinessCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	businessCase, ok := r.cases[caseID]
	if !ok {
		return nil, fmt.Errorf("case %d not found", caseID)
	}
	clone := *businessCase
	return &clone, nil
}

func (r *fakeCaseRepo) GetByProjectName(_ context.Context, projectName string) (*etcase.BusinessCase, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, businessCase := range r.cases {
		if businessCase.ProjectName == projectName {
			clone := *businessCase
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeCaseRepo) Update(_ context.Context, businessCase *etcase.BusinessCase) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *businessCase
	r.cases[clone.ID] = &clone
	return nil
}

func (r *fakeCaseRepo) UpdateAuditResult(_ context.Context, caseID int64, result *model.AuditResult, status string, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	businessCase, ok := r.cases[caseID]
	if !ok {
		return fmt.Errorf("case %d not found", caseID)
	}
	businessCase.AuditResult = result
	businessCase.Status = etcase.CaseStatus(status)
	return nil
}

func (r *fakeCaseRepo) Delete(_ context.Context, projectName string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, businessCase := range r.cases {
		if businessCase.ProjectName == projectName {
			delete(r.cases, id)
			for i, ordered := range r.order {
				if ordered == id {
					r.order = append(r.order[:i], r.order[i+1:]...)
					break
				}
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCaseRepo) List(_ context.Context, page, limit int) ([]*etcase.BusinessCase, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// 新创建的在前
	reversed := make([]*etcase.BusinessCase, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		clone := *r.cases[r.order[i]]
		reversed = append(reversed, &clone)
	}
	start := (page - 1) * limit
	if start > len(reversed) {
		start = len(reversed)
	}
	end := start + limit
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[start:end], int64(len(r.order)), nil
}

// newTestEngine 组装一套不依赖外部组件的完整路由
// lmstfy 用 httptest 假服务替代，知识库与画布 AI 保持未配置
func newTestEngine(t *testing.T) (*gin.Engine, *fakeCaseRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mqServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"job_id":"test-job"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(mqServer.Close)

	repo := newFakeCaseRepo()
	caseModule := mdcase.NewCaseModule(repo)
	auditModule := mdaudit.NewAuditModule(lmstfy.NewClient(mqServer.URL, "test", "token"), nil, "case_audit_queue")

	caseService := svcase.NewCaseService(caseModule, auditModule)
	auditService := svaudit.NewAuditService()
	searchService := svsearch.NewSearchService(nil, nil, "")
	canvasService := svcanvas.NewCanvasService(nil, searchService, "", "")
	exportService := svexport.NewExportService(caseModule, svexport.NewJSONRenderer())

	engine := SetupRoutes(
		cases.NewCaseHandler(caseService),
		audit.NewAuditHandler(auditService),
		export.NewExportHandler(exportService),
		canvas.NewCanvasHandler(canvasService, searchService),
	)
	return engine, repo
}

type envelope struct {
	Meta struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Path string `json:"path"`
			Info string `json:"info"`
		} `json:"details"`
	} `json:"meta"`
	Data json.RawMessage `json:"data"`
}

func doJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// cleanRecord 勾稽关系全部成立的财务记录
func cleanRecord(year int) map[string]interface{} {
	return map[string]interface{}{
		"year":               year,
		"revenue":            100.0,
		"costs":              40.0,
		"gross_profit":       60.0,
		"operating_expenses": 20.0,
		"ebitda":             40.0,
		"depreciation":       5.0,
		"ebit":               35.0,
		"interest":           2.0,
		"taxes":              8.0,
		"net_income":         25.0,
	}
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "bcmain", body["service"])
}

func TestAuditEndpoint_CleanCase(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/audit", map[string]interface{}{
		"business_case_data": map[string]interface{}{
			"project_name":   "solar-farm",
			"financial_data": []interface{}{cleanRecord(2024)},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, 200, env.Meta.Code)

	var result model.AuditResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, model.AuditStatusCompleted, result.Status)
	assert.Empty(t, result.Findings)
	assert.Zero(t, result.RiskScore)
	assert.NotEmpty(t, result.Suggestions)
}

func TestAuditEndpoint_FormulaCascade(t *testing.T) {
	engine, _ := newTestEngine(t)

	// gross_profit 报告值 55，勾稽差 5 → 同时带崩 EBITDA 勾稽
	record := cleanRecord(2024)
	record["gross_profit"] = 55.0
	w := doJSON(engine, http.MethodPost, "/api/v1/audit", map[string]interface{}{
		"business_case_data": map[string]interface{}{
			"project_name":   "solar-farm",
			"financial_data": []interface{}{record},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var result model.AuditResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.Len(t, result.Findings, 2)
	assert.Equal(t, "gross_profit", result.Findings[0].Field)
	assert.Equal(t, "ebitda", result.Findings[1].Field)
	assert.Greater(t, result.RiskScore, 0.0)
}

func TestAuditEndpoint_MissingRequiredField(t *testing.T) {
	engine, _ := newTestEngine(t)

	record := cleanRecord(2024)
	delete(record, "revenue")
	w := doJSON(engine, http.MethodPost, "/api/v1/audit", map[string]interface{}{
		"business_case_data": map[string]interface{}{
			"project_name":   "solar-farm",
			"financial_data": []interface{}{record},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", env.Meta.Message)
	require.Len(t, env.Meta.Details, 1)
	assert.Equal(t, "revenue", env.Meta.Details[0].Path)
	assert.Equal(t, "revenue is required", env.Meta.Details[0].Info)
}

func TestAuditEndpoint_WrongTypeForNumber(t *testing.T) {
	engine, _ := newTestEngine(t)

	// 数值字段传字符串必须报错，禁止静默取零值
	record := cleanRecord(2024)
	record["revenue"] = "a lot"
	w := doJSON(engine, http.MethodPost, "/api/v1/audit", map[string]interface{}{
		"business_case_data": map[string]interface{}{
			"project_name":   "solar-farm",
			"financial_data": []interface{}{record},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", env.Meta.Message)
	require.Len(t, env.Meta.Details, 1)
	assert.Equal(t, "business_case_data.financial_data.revenue", env.Meta.Details[0].Path)
	assert.Contains(t, env.Meta.Details[0].Info, "must be of type float64")
}

func TestFormulaEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	tests := []struct {
		name      string
		body      map[string]interface{}
		wantValid bool
		wantDiff  float64
	}{
		{
			name:      "空请求走默认值",
			body:      map[string]interface{}{},
			wantValid: true,
			wantDiff:  0,
		},
		{
			name: "等式容差 0.01 含边界",
			body: map[string]interface{}{
				"left_side": 100.0, "right_side": 100.01,
			},
			wantValid: true,
			wantDiff:  0.01,
		},
		{
			name: "大于等于",
			body: map[string]interface{}{
				"left_side": 100.0, "right_side": 95.0, "operator": ">=",
			},
			wantValid: true,
			wantDiff:  5,
		},
		{
			name: "未知运算符返回不成立",
			body: map[string]interface{}{
				"left_side": 1.0, "right_side": 1.0, "operator": "~",
			},
			wantValid: false,
			wantDiff:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(engine, http.MethodPost, "/api/v1/audit/formula", tt.body)

			require.Equal(t, http.StatusOK, w.Code)
			env := decodeEnvelope(t, w)
			var result struct {
				IsValid    bool    `json:"is_valid"`
				Difference float64 `json:"difference"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &result))
			assert.Equal(t, tt.wantValid, result.IsValid)
			assert.InDelta(t, tt.wantDiff, result.Difference, 1e-9)
		})
	}
}

func TestRulesEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/api/v1/audit/rules", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var body struct {
		Rules []struct {
			ID string `json:"id"`
		} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Rules, 6)
	assert.Equal(t, "gross_profit_check", body.Rules[0].ID)
}

func TestCaseLifecycleEndpoints(t *testing.T) {
	engine, _ := newTestEngine(t)

	// 1. 创建：未带 wait 参数，直接返回处理中
	w := doJSON(engine, http.MethodPost, "/api/v1/cases", map[string]interface{}{
		"project_name":   "solar-farm",
		"description":    "Rooftop solar expansion",
		"financial_data": []interface{}{cleanRecord(2024), cleanRecord(2025)},
		"assumptions":    map[string]string{"discount_rate": "8%"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, 3001, env.Meta.Code)
	var processing struct {
		CaseID  int64  `json:"case_id"`
		PollURL string `json:"poll_url"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &processing))
	assert.Positive(t, processing.CaseID)
	assert.Equal(t, "/api/v1/cases/solar-farm", processing.PollURL)

	// 2. 查询：审计尚未完成，状态为 AUDITING
	w = doJSON(engine, http.MethodGet, "/api/v1/cases/solar-farm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var caseBody struct {
		ProjectName   string                   `json:"project_name"`
		Status        string                   `json:"status"`
		FinancialData []map[string]interface{} `json:"financial_data"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &caseBody))
	assert.Equal(t, "solar-farm", caseBody.ProjectName)
	assert.Equal(t, "AUDITING", caseBody.Status)
	assert.Len(t, caseBody.FinancialData, 2)

	// 3. 同名再次提交走覆盖更新，案例数不变
	w = doJSON(engine, http.MethodPost, "/api/v1/cases", map[string]interface{}{
		"project_name":   "solar-farm",
		"financial_data": []interface{}{cleanRecord(2024)},
	})
	require.Equal(t, http.StatusOK, w.Code)

	// 4. 替换财务数据
	w = doJSON(engine, http.MethodPut, "/api/v1/cases/solar-farm/financials",
		[]interface{}{cleanRecord(2024), cleanRecord(2025), cleanRecord(2026)})
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var updateBody struct {
		ProjectName string `json:"project_name"`
		UpdatedRows int    `json:"updated_rows"`
		Status      string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updateBody))
	assert.Equal(t, 3, updateBody.UpdatedRows)
	assert.Equal(t, "AUDITING", updateBody.Status)

	// 5. 删除后再查询返回 404
	w = doJSON(engine, http.MethodDelete, "/api/v1/cases/solar-farm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var deleteBody struct {
		Deleted string `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &deleteBody))
	assert.Equal(t, "solar-farm", deleteBody.Deleted)

	w = doJSON(engine, http.MethodGet, "/api/v1/cases/solar-farm", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	env = decodeEnvelope(t, w)
	assert.Equal(t, "Business case not found", env.Meta.Message)

	w = doJSON(engine, http.MethodDelete, "/api/v1/cases/solar-farm", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCaseCreateEndpoint_MissingFinancialData(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/cases", map[string]interface{}{
		"project_name": "no-financials",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Validation failed", env.Meta.Message)
	require.Len(t, env.Meta.Details, 1)
	assert.Equal(t, "financial_data", env.Meta.Details[0].Path)
}

func TestListCasesEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		w := doJSON(engine, http.MethodPost, "/api/v1/cases", map[string]interface{}{
			"project_name":   name,
			"financial_data": []interface{}{cleanRecord(2024)},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(engine, http.MethodGet, "/api/v1/cases?page=1&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)

	var listBody struct {
		Cases []struct {
			ProjectName string `json:"project_name"`
			Years       int    `json:"years"`
		} `json:"cases"`
		Pagination struct {
			Page  int   `json:"page"`
			Limit int   `json:"limit"`
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &listBody))
	require.Len(t, listBody.Cases, 2)
	assert.Equal(t, "gamma", listBody.Cases[0].ProjectName)
	assert.Equal(t, 1, listBody.Cases[0].Years)
	assert.Equal(t, int64(3), listBody.Pagination.Total)
	assert.Equal(t, 2, listBody.Pagination.Limit)
}

func TestExportTemplateEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/api/v1/export/template", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var body struct {
		Slides []struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
			Type  string `json:"type"`
		} `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.Slides, 12)
	assert.Equal(t, "Title Slide", body.Slides[0].Title)
	assert.Equal(t, "chart", body.Slides[2].Type)
	assert.Equal(t, "Conclusion & Recommendations", body.Slides[11].Title)
}

func TestExportDeckEndpoint_InlineData(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/export/deck", map[string]interface{}{
		"project_name":   "Solar Farm",
		"financial_data": []interface{}{cleanRecord(2024), cleanRecord(2025)},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Solar_Farm_business_case.json"`,
		w.Header().Get("Content-Disposition"))

	var deck struct {
		ProjectName string `json:"project_name"`
		Slides      []struct {
			ID        int    `json:"id"`
			Type      string `json:"type"`
			ChartType string `json:"chart_type"`
		} `json:"slides"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &deck))
	assert.Equal(t, "Solar Farm", deck.ProjectName)
	require.Len(t, deck.Slides, 12)
	assert.Equal(t, 3, deck.Slides[2].ID)
	assert.Equal(t, "chart", deck.Slides[2].Type)
	assert.Equal(t, "column", deck.Slides[2].ChartType)
}

func TestExportDeckEndpoint_StoredCaseNotFound(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/export/deck", map[string]interface{}{
		"project_name": "never-saved",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Business case not found", env.Meta.Message)
}

func TestCanvasGenerateEndpoint_Placeholder(t *testing.T) {
	engine, _ := newTestEngine(t)

	// 未配置 AI 提供方：生成接口降级为占位内容而不是报错
	w := doJSON(engine, http.MethodPost, "/api/v1/canvas/generate", map[string]interface{}{
		"block_id": "problem_statement",
		"context":  map[string]interface{}{"project_name": "Solar Farm"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var block struct {
		BlockID       string `json:"block_id"`
		Content       string `json:"content"`
		IsPlaceholder bool   `json:"is_placeholder"`
		Message       string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &block))
	assert.Equal(t, "problem_statement", block.BlockID)
	assert.True(t, block.IsPlaceholder)
	assert.Equal(t, "AI service not configured. Using placeholder content.", block.Message)
	assert.Contains(t, block.Content, "**Problem Statement**")
	assert.Contains(t, block.Content, "[Configure an AI provider to generate AI-powered content]")
}

func TestCanvasGenerateEndpoint_UnknownBlock(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/canvas/generate", map[string]interface{}{
		"block_id": "elevator_pitch",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decodeEnvelope(t, w)
	assert.Contains(t, env.Meta.Message, "unknown canvas block")
	assert.Contains(t, env.Meta.Message, "elevator_pitch")
}

func TestCanvasGenerateAllEndpoint_Placeholder(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/canvas/generate-all", map[string]interface{}{
		"context": map[string]interface{}{"project_name": "Solar Farm"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var body struct {
		CanvasBlocks     map[string]json.RawMessage `json:"canvas_blocks"`
		BlockDefinitions map[string]json.RawMessage `json:"block_definitions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Len(t, body.CanvasBlocks, 12)
	assert.Len(t, body.BlockDefinitions, 12)
	assert.Contains(t, body.CanvasBlocks, "executive_summary")
}

func TestCanvasEnhanceEndpoint_NotConfigured(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/canvas/enhance", map[string]interface{}{
		"content": "We sell solar panels.",
	})

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "AI service not configured", env.Meta.Message)
}

func TestCanvasBuildingBlocksEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/api/v1/canvas/building-blocks", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var body struct {
		BuildingBlocks map[string]struct {
			Name      string `json:"name"`
			PitchStep int    `json:"pitch_step"`
		} `json:"building_blocks"`
		PitchFramework string `json:"pitch_framework"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	require.Len(t, body.BuildingBlocks, 12)
	assert.Equal(t, "Problem Statement", body.BuildingBlocks["problem_statement"].Name)
	assert.Equal(t, 1, body.BuildingBlocks["problem_statement"].PitchStep)
	assert.Contains(t, body.PitchFramework, "7-Step Pitch Framework")
}

func TestKnowledgeBaseEndpoints_NotConfigured(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/canvas/knowledge-base/search", map[string]interface{}{
		"query": "market size",
	})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "Knowledge base not configured", env.Meta.Message)

	w = doJSON(engine, http.MethodGet, "/api/v1/canvas/knowledge-base/status", nil)
	require.Equal(t, http.StatusOK, w.Code)
	env = decodeEnvelope(t, w)
	var status struct {
		Configured bool `json:"configured"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.Configured)
}

func TestCanvasStatusEndpoint(t *testing.T) {
	engine, _ := newTestEngine(t)

	w := doJSON(engine, http.MethodGet, "/api/v1/canvas/status", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	var body struct {
		CanvasAIService struct {
			Available bool `json:"available"`
		} `json:"canvas_ai_service"`
		KnowledgeBaseService struct {
			Configured bool `json:"configured"`
		} `json:"knowledge_base_service"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.False(t, body.CanvasAIService.Available)
	assert.False(t, body.KnowledgeBaseService.Configured)
}

func TestCORSPreflight(t *testing.T) {
	engine, _ := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/cases", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	// 白名单外的来源不回显
	req = httptest.NewRequest(http.MethodOptions, "/api/v1/cases", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
