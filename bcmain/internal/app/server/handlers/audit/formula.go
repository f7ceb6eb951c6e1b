package audit

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// ValidateFormula 校验单条公式
// POST /api/v1/audit/formula
func (h *AuditHandler) ValidateFormula(c *gin.Context) {
	var req request.FormulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	left, right, operator, tolerance := req.Normalize()
	result := h.auditService.ValidateFormula(left, right, operator, tolerance)
	ginx.Success(c, result)
}
