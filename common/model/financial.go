package model

// FinancialRecord 单个财年的财务数据
// 字段之间的勾稽关系（Gross Profit = Revenue - Costs 等）不在构造时强制，
// 由审计引擎负责校验
type FinancialRecord struct {
	Year              int     `json:"year"`
	Revenue           float64 `json:"revenue"`
	Costs             float64 `json:"costs"`
	GrossProfit       float64 `json:"gross_profit"`
	OperatingExpenses float64 `json:"operating_expenses"`
	EBITDA            float64 `json:"ebitda"`
	Depreciation      float64 `json:"depreciation"`
	EBIT              float64 `json:"ebit"`
	Interest          float64 `json:"interest"`
	Taxes             float64 `json:"taxes"`
	NetIncome         float64 `json:"net_income"`
}

// BusinessCaseData 业务案例完整数据
// 用于 bcmain ↔ bcsync 的消息传递以及审计引擎的输入
type BusinessCaseData struct {
	ProjectName   string            `json:"project_name"`
	Description   string            `json:"description,omitempty"`
	FinancialData []FinancialRecord `json:"financial_data"`
	Assumptions   map[string]string `json:"assumptions,omitempty"`
}
