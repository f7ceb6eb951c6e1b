package svexport

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"bcp/common/model"
)

// 幻灯片类型
const (
	SlideTypeTitle   = "title"
	SlideTypeContent = "content"
	SlideTypeChart   = "chart"
)

// DeckSpec 幻灯片内容规格（渲染器的输入）
type DeckSpec struct {
	ProjectName string   `json:"project_name"`
	Slides      []*Slide `json:"slides"`
}

// Slide 单页幻灯片
type Slide struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Type      string     `json:"type"`
	Subtitle  string     `json:"subtitle,omitempty"`
	Content   string     `json:"content,omitempty"`
	ChartType string     `json:"chart_type,omitempty"`
	Chart     *ChartData `json:"chart,omitempty"`
}

// ChartData 图表数据
type ChartData struct {
	Categories []string      `json:"categories"`
	Series     []ChartSeries `json:"series"`
}

// ChartSeries 图表数据序列
type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// DeckRenderer 幻灯片渲染器
// 二进制格式（pptx 等）的渲染实现放在该接口后面，服务层只组装 DeckSpec
type DeckRenderer interface {
	// Render 将 DeckSpec 渲染为可下载的字节流
	Render(deck *DeckSpec) ([]byte, error)
	// ContentType 渲染产物的 MIME 类型
	ContentType() string
	// FileExtension 渲染产物的文件扩展名（含点）
	FileExtension() string
}

// JSONRenderer 内置渲染器：将 DeckSpec 输出为 JSON 附件
type JSONRenderer struct{}

// NewJSONRenderer 创建 JSON 渲染器
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render 输出缩进 JSON
func (r *JSONRenderer) Render(deck *DeckSpec) ([]byte, error) {
	return json.MarshalIndent(deck, "", "  ")
}

// ContentType 附件 MIME 类型
func (r *JSONRenderer) ContentType() string {
	return "application/json"
}

// FileExtension 附件扩展名
func (r *JSONRenderer) FileExtension() string {
	return ".json"
}

// BuildDeck 从案例数据组装 12 页幻灯片规格
// 页码与模板固定对应；无财务数据时跳过 3-6 的图表页（页码不重排）
func BuildDeck(data *model.BusinessCaseData) *DeckSpec {
	deck := &DeckSpec{
		ProjectName: data.ProjectName,
		Slides:      make([]*Slide, 0, 12),
	}

	// 1. 标题页
	subtitle := data.Description
	if subtitle == "" {
		subtitle = "Business Case Analysis"
	}
	deck.add(&Slide{ID: 1, Title: data.ProjectName, Type: SlideTypeTitle, Subtitle: subtitle})

	// 2. 执行摘要
	deck.add(contentSlide(2, "Executive Summary",
		"• Project overview and objectives\n• Key financial highlights\n• Strategic alignment"))

	// 3-6. 财务图表页
	if len(data.FinancialData) > 0 {
		years := make([]string, 0, len(data.FinancialData))
		revenues := make([]float64, 0, len(data.FinancialData))
		costs := make([]float64, 0, len(data.FinancialData))
		opExpenses := make([]float64, 0, len(data.FinancialData))
		grossProfits := make([]float64, 0, len(data.FinancialData))
		ebitda := make([]float64, 0, len(data.FinancialData))
		netIncome := make([]float64, 0, len(data.FinancialData))
		for _, record := range data.FinancialData {
			years = append(years, strconv.Itoa(record.Year))
			revenues = append(revenues, record.Revenue)
			costs = append(costs, record.Costs)
			opExpenses = append(opExpenses, record.OperatingExpenses)
			grossProfits = append(grossProfits, record.GrossProfit)
			ebitda = append(ebitda, record.EBITDA)
			netIncome = append(netIncome, record.NetIncome)
		}

		deck.add(chartSlide(3, "Revenue Projection", "column", &ChartData{
			Categories: years,
			Series:     []ChartSeries{{Name: "Revenue", Values: revenues}},
		}))
		deck.add(chartSlide(4, "Cost Analysis", "column", &ChartData{
			Categories: years,
			Series: []ChartSeries{
				{Name: "Direct Costs", Values: costs},
				{Name: "Operating Expenses", Values: opExpenses},
			},
		}))
		deck.add(chartSlide(5, "Profitability Analysis", "line", &ChartData{
			Categories: years,
			Series: []ChartSeries{
				{Name: "Gross Profit", Values: grossProfits},
				{Name: "EBITDA", Values: ebitda},
			},
		}))
		deck.add(chartSlide(6, "Net Income Projection", "column", &ChartData{
			Categories: years,
			Series:     []ChartSeries{{Name: "Net Income", Values: netIncome}},
		}))
	}

	// 7. 关键假设
	deck.add(contentSlide(7, "Key Assumptions", assumptionsText(data.Assumptions)))

	// 8-10. 固定内容页
	deck.add(contentSlide(8, "Risk Analysis",
		"• Market risks\n• Operational risks\n• Financial risks\n• Mitigation strategies"))
	deck.add(contentSlide(9, "Implementation Timeline",
		"• Phase 1: Planning and Setup\n• Phase 2: Implementation\n• Phase 3: Optimization\n• Phase 4: Scale"))
	deck.add(contentSlide(10, "Resource Requirements",
		"• Personnel needs\n• Technology infrastructure\n• Capital requirements\n• Training needs"))

	// 11. 财务汇总
	deck.add(contentSlide(11, "Financial Summary", financialSummaryText(data.FinancialData)))

	// 12. 结论与建议
	deck.add(contentSlide(12, "Conclusion & Recommendations",
		"• Strategic alignment confirmed\n• Financial viability established\n• Recommended next steps"))

	return deck
}

func (d *DeckSpec) add(slide *Slide) {
	d.Slides = append(d.Slides, slide)
}

func contentSlide(id int, title, content string) *Slide {
	return &Slide{ID: id, Title: title, Type: SlideTypeContent, Content: content}
}

func chartSlide(id int, title, chartType string, chart *ChartData) *Slide {
	return &Slide{ID: id, Title: title, Type: SlideTypeChart, ChartType: chartType, Chart: chart}
}

// assumptionsText 假设列表文本（按 key 排序保证输出稳定）
func assumptionsText(assumptions map[string]string) string {
	if len(assumptions) == 0 {
		return "• Market growth rate assumptions\n• Cost escalation factors\n• Pricing strategy"
	}

	keys := make([]string, 0, len(assumptions))
	for key := range assumptions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, fmt.Sprintf("• %s: %s", key, assumptions[key]))
	}
	return strings.Join(lines, "\n")
}

func financialSummaryText(records []model.FinancialRecord) string {
	if len(records) == 0 {
		return "• Financial highlights to be added"
	}

	var totalRevenue, totalNetIncome float64
	for _, record := range records {
		totalRevenue += record.Revenue
		totalNetIncome += record.NetIncome
	}
	return fmt.Sprintf("• Total Revenue (5-year): $%s\n• Total Net Income: $%s\n• ROI Analysis",
		formatAmount(totalRevenue), formatAmount(totalNetIncome))
}

// formatAmount 金额按千分位分组、舍入到整数
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
