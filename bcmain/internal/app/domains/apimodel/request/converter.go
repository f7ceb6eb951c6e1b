package request

import (
	"bcp/common/auditor"
	"bcp/common/model"
)

// ToBusinessCaseData 将 Request DTO 转换为领域数据
func (r *BusinessCaseRequest) ToBusinessCaseData() *model.BusinessCaseData {
	return &model.BusinessCaseData{
		ProjectName:   r.ProjectName,
		Description:   r.Description,
		FinancialData: ToFinancialRecords(r.FinancialData),
		Assumptions:   r.Assumptions,
	}
}

// ToBusinessCaseData 将内联导出请求转换为领域数据
func (r *ExportDeckRequest) ToBusinessCaseData() *model.BusinessCaseData {
	return &model.BusinessCaseData{
		ProjectName:   r.ProjectName,
		Description:   r.Description,
		FinancialData: ToFinancialRecords(r.FinancialData),
		Assumptions:   r.Assumptions,
	}
}

// ToFinancialRecords 解引用并展开财务记录 DTO，nil 元素跳过
func ToFinancialRecords(dtos []*FinancialRecord) []model.FinancialRecord {
	records := make([]model.FinancialRecord, 0, len(dtos))
	for _, dto := range dtos {
		if dto == nil {
			continue
		}
		records = append(records, model.FinancialRecord{
			Year:              derefInt(dto.Year),
			Revenue:           derefFloat(dto.Revenue),
			Costs:             derefFloat(dto.Costs),
			GrossProfit:       derefFloat(dto.GrossProfit),
			OperatingExpenses: derefFloat(dto.OperatingExpenses),
			EBITDA:            derefFloat(dto.EBITDA),
			Depreciation:      derefFloat(dto.Depreciation),
			EBIT:              derefFloat(dto.EBIT),
			Interest:          derefFloat(dto.Interest),
			Taxes:             derefFloat(dto.Taxes),
			NetIncome:         derefFloat(dto.NetIncome),
		})
	}
	return records
}

// Normalize 应用公式校验的缺省值
func (r *FormulaRequest) Normalize() (left, right float64, operator string, tolerance float64) {
	left = derefFloat(r.LeftSide)
	right = derefFloat(r.RightSide)
	operator = r.Operator
	if operator == "" {
		operator = auditor.OperatorEqual
	}
	tolerance = auditor.DefaultTolerance
	if r.Tolerance != nil {
		tolerance = *r.Tolerance
	}
	return left, right, operator, tolerance
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
