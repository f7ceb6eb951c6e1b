package audit

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Rules 返回审计规则清单
// GET /api/v1/audit/rules
func (h *AuditHandler) Rules(c *gin.Context) {
	ginx.Success(c, response.RulesResponse{Rules: h.auditService.Rules()})
}
