package response

import (
	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/domains/entity/etprimitive"
)

// FromCaseEntity 从领域对象转换为完整案例响应 DTO
func FromCaseEntity(businessCase *etcase.BusinessCase) *CaseResponse {
	return &CaseResponse{
		ID:            businessCase.ID,
		ProjectName:   businessCase.ProjectName,
		Description:   businessCase.Description,
		FinancialData: businessCase.FinancialData,
		Assumptions:   businessCase.Assumptions,
		Status:        string(businessCase.Status),
		AuditResult:   businessCase.AuditResult,
		CreatedAt:     businessCase.CreatedAt,
		UpdatedAt:     businessCase.UpdatedAt,
	}
}

// FromCaseEntities 从领域对象列表转换为列表响应 DTO
func FromCaseEntities(cases []*etcase.BusinessCase, page, limit int, total int64) *CaseListResponse {
	summaries := make([]*CaseSummary, 0, len(cases))
	for _, businessCase := range cases {
		summaries = append(summaries, &CaseSummary{
			ID:          businessCase.ID,
			ProjectName: businessCase.ProjectName,
			Status:      string(businessCase.Status),
			Years:       len(businessCase.FinancialData),
			CreatedAt:   businessCase.CreatedAt,
			UpdatedAt:   businessCase.UpdatedAt,
		})
	}

	return &CaseListResponse{
		Cases: summaries,
		Pagination: &etprimitive.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	}
}
