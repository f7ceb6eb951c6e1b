package request

// BusinessCaseRequest 创建/覆盖商业案例请求（按 project_name upsert）
type BusinessCaseRequest struct {
	ProjectName   string             `json:"project_name" binding:"required" example:"green-energy-2026"`
	Description   string             `json:"description" example:"Rooftop solar rollout for the APAC region"`
	FinancialData []*FinancialRecord `json:"financial_data" binding:"required,dive"`
	Assumptions   map[string]string  `json:"assumptions"`
}

// FinancialRecord 单年财务预测
// 所有字段必填：缺失或非数值在参数校验阶段报错，绝不默认为 0
type FinancialRecord struct {
	Year              *int     `json:"year" binding:"required" example:"2026"`
	Revenue           *float64 `json:"revenue" binding:"required" example:"1000000"`
	Costs             *float64 `json:"costs" binding:"required" example:"400000"`
	GrossProfit       *float64 `json:"gross_profit" binding:"required" example:"600000"`
	OperatingExpenses *float64 `json:"operating_expenses" binding:"required" example:"100000"`
	EBITDA            *float64 `json:"ebitda" binding:"required" example:"500000"`
	Depreciation      *float64 `json:"depreciation" binding:"required" example:"50000"`
	EBIT              *float64 `json:"ebit" binding:"required" example:"450000"`
	Interest          *float64 `json:"interest" binding:"required" example:"20000"`
	Taxes             *float64 `json:"taxes" binding:"required" example:"90000"`
	NetIncome         *float64 `json:"net_income" binding:"required" example:"340000"`
}

// ExportDeckRequest 幻灯片导出请求
// 二选一：内联完整案例数据，或仅给 project_name 引用已存储的案例
// （financial_data 为 null 时按引用处理）
type ExportDeckRequest struct {
	ProjectName   string             `json:"project_name" binding:"required" example:"green-energy-2026"`
	Description   string             `json:"description"`
	FinancialData []*FinancialRecord `json:"financial_data" binding:"omitempty,dive"`
	Assumptions   map[string]string  `json:"assumptions"`
}

// Inline 是否携带内联案例数据
func (r *ExportDeckRequest) Inline() bool {
	return r.FinancialData != nil
}
