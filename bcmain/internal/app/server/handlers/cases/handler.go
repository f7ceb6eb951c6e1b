package cases

import "bcp/bcmain/internal/app/domains/services/svcase"

// CaseHandler 案例 HTTP 处理器
type CaseHandler struct {
	caseService *svcase.CaseService
}

// NewCaseHandler 创建案例处理器实例
func NewCaseHandler(caseService *svcase.CaseService) *CaseHandler {
	return &CaseHandler{
		caseService: caseService,
	}
}
