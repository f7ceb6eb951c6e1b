package cases

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// UpdateFinancials 替换案例的财务数据并触发重审
// PUT /api/v1/cases/:project_name/financials
func (h *CaseHandler) UpdateFinancials(c *gin.Context) {
	projectName := c.Param("project_name")
	if projectName == "" {
		ginx.BadRequest(c, "project_name required")
		return
	}

	var dtos []*request.FinancialRecord
	if err := c.ShouldBindJSON(&dtos); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}
	if dtos == nil {
		ginx.BadRequest(c, "financial_data required")
		return
	}

	records := request.ToFinancialRecords(dtos)
	businessCase, err := h.caseService.UpdateFinancialData(c.Request.Context(), projectName, records)
	if err != nil {
		if errors.Is(err, errorx.ErrCaseNotFound) {
			ginx.NotFound(c, "Business case not found")
			return
		}
		log.Printf("[ERROR] update financial data failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.UpdateFinancialsResponse{
		ProjectName: businessCase.ProjectName,
		UpdatedRows: len(records),
		Status:      string(businessCase.Status),
	})
}
