package cases

import (
	"fmt"
	"log"
	"strconv"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/pkg/ginx"

	"github.com/gin-gonic/gin"
)

// Create 创建或更新案例接口（按 project_name 幂等）
// POST /api/v1/cases?wait=10
func (h *CaseHandler) Create(c *gin.Context) {
	waitSeconds := 0
	if waitStr := c.Query("wait"); waitStr != "" {
		if w, err := strconv.Atoi(waitStr); err == nil && w > 0 {
			waitSeconds = w
		}
	}

	var req request.BusinessCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	businessCase, err := h.caseService.CreateOrUpdateCase(c.Request.Context(), req.ToBusinessCaseData(), waitSeconds)
	if err != nil {
		log.Printf("[ERROR] create case failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	if businessCase.Status == etcase.CaseStatusAuditing {
		pollURL := fmt.Sprintf("/api/v1/cases/%s", businessCase.ProjectName)
		ginx.Processing(c, businessCase.ID, pollURL)
	} else {
		ginx.Success(c, response.FromCaseEntity(businessCase))
	}
}
