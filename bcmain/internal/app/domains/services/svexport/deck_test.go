package svexport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bcp/common/model"
)

func sampleData() *model.BusinessCaseData {
	return &model.BusinessCaseData{
		ProjectName: "Harbor Logistics",
		Description: "Automated port terminal",
		FinancialData: []model.FinancialRecord{
			{Year: 2024, Revenue: 1200000, Costs: 500000, GrossProfit: 700000, OperatingExpenses: 300000, EBITDA: 400000, Depreciation: 50000, EBIT: 350000, Interest: 20000, Taxes: 80000, NetIncome: 250000},
			{Year: 2025, Revenue: 1500000, Costs: 600000, GrossProfit: 900000, OperatingExpenses: 350000, EBITDA: 550000, Depreciation: 50000, EBIT: 500000, Interest: 20000, Taxes: 120000, NetIncome: 360000},
		},
		Assumptions: map[string]string{
			"growth_rate":   "25% YoY",
			"discount_rate": "8%",
		},
	}
}

func TestBuildDeck_FullData(t *testing.T) {
	deck := BuildDeck(sampleData())

	assert.Equal(t, "Harbor Logistics", deck.ProjectName)
	require.Len(t, deck.Slides, 12)

	// 页码与模板固定对应
	for i, slide := range deck.Slides {
		assert.Equal(t, i+1, slide.ID)
	}

	title := deck.Slides[0]
	assert.Equal(t, SlideTypeTitle, title.Type)
	assert.Equal(t, "Harbor Logistics", title.Title)
	assert.Equal(t, "Automated port terminal", title.Subtitle)

	revenue := deck.Slides[2]
	assert.Equal(t, "Revenue Projection", revenue.Title)
	assert.Equal(t, "column", revenue.ChartType)
	require.NotNil(t, revenue.Chart)
	assert.Equal(t, []string{"2024", "2025"}, revenue.Chart.Categories)
	require.Len(t, revenue.Chart.Series, 1)
	assert.Equal(t, "Revenue", revenue.Chart.Series[0].Name)
	assert.Equal(t, []float64{1200000, 1500000}, revenue.Chart.Series[0].Values)

	costAnalysis := deck.Slides[3]
	require.Len(t, costAnalysis.Chart.Series, 2)
	assert.Equal(t, "Direct Costs", costAnalysis.Chart.Series[0].Name)
	assert.Equal(t, "Operating Expenses", costAnalysis.Chart.Series[1].Name)

	profitability := deck.Slides[4]
	assert.Equal(t, "line", profitability.ChartType)
	assert.Equal(t, "Gross Profit", profitability.Chart.Series[0].Name)
	assert.Equal(t, "EBITDA", profitability.Chart.Series[1].Name)

	netIncome := deck.Slides[5]
	assert.Equal(t, "Net Income Projection", netIncome.Title)
	assert.Equal(t, "column", netIncome.ChartType)

	// 假设按 key 排序输出
	assumptions := deck.Slides[6]
	assert.Equal(t, "• discount_rate: 8%\n• growth_rate: 25% YoY", assumptions.Content)

	summary := deck.Slides[10]
	assert.Equal(t, "Financial Summary", summary.Title)
	assert.Equal(t, "• Total Revenue (5-year): $2,700,000\n• Total Net Income: $610,000\n• ROI Analysis", summary.Content)
}

func TestBuildDeck_NoFinancialData(t *testing.T) {
	deck := BuildDeck(&model.BusinessCaseData{ProjectName: "Draft Idea"})

	// 跳过 3-6 图表页，剩余页码不重排
	require.Len(t, deck.Slides, 8)
	ids := make([]int, 0, len(deck.Slides))
	for _, slide := range deck.Slides {
		ids = append(ids, slide.ID)
		assert.NotEqual(t, SlideTypeChart, slide.Type)
	}
	assert.Equal(t, []int{1, 2, 7, 8, 9, 10, 11, 12}, ids)

	// 描述为空时标题页用默认副标题
	assert.Equal(t, "Business Case Analysis", deck.Slides[0].Subtitle)

	// 无假设与无财务数据时的占位文案
	assert.Equal(t, "• Market growth rate assumptions\n• Cost escalation factors\n• Pricing strategy",
		deck.Slides[2].Content)
	assert.Equal(t, "• Financial highlights to be added", deck.Slides[6].Content)
}

func TestJSONRenderer(t *testing.T) {
	renderer := NewJSONRenderer()

	assert.Equal(t, "application/json", renderer.ContentType())
	assert.Equal(t, ".json", renderer.FileExtension())

	content, err := renderer.Render(BuildDeck(sampleData()))
	require.NoError(t, err)
	assert.Contains(t, string(content), `"project_name": "Harbor Logistics"`)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{950, "950"},
		{1000, "1,000"},
		{2700000, "2,700,000"},
		{-1234567, "-1,234,567"},
		{999.6, "1,000"}, // 舍入到整数后再分组
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in), "formatAmount(%v)", tt.in)
	}
}
