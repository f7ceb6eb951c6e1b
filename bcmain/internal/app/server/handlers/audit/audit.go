package audit

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Audit godoc
// @Summary      同步审计财务数据
// @Description  对请求体内的财务数据执行全量规则审计，立即返回结果，不落库
// @Description
// @Description  使用场景：
// @Description  - 前端编辑器的实时校验
// @Description  - 保存案例前的预检
// @Tags         audit
// @Accept       json
// @Produce      json
// @Param        request body request.AuditRequest true "审计请求"
// @Success      200 {object} ginx.Response{data=model.AuditResult} "审计完成"
// @Failure      400 {object} ginx.Response "参数错误"
// @Router       /audit [post]
func (h *AuditHandler) Audit(c *gin.Context) {
	var req request.AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result := h.auditService.AuditCase(req.BusinessCaseData.ToBusinessCaseData())
	ginx.Success(c, result)
}
