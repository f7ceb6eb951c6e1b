package cases

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取案例详情
// @Description  根据项目名获取案例详细信息（包含审计结果）
// @Description
// @Description  使用场景：
// @Description  - 创建案例返回 code=3001 时，通过此接口轮询审计结果
// @Description  - 查询历史案例详情
// @Tags         cases
// @Produce      json
// @Param        project_name path string true "项目名"
// @Success      200 {object} ginx.Response{data=response.CaseResponse} "查询成功"
// @Failure      404 {object} ginx.Response "案例不存在"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /cases/{project_name} [get]
func (h *CaseHandler) Get(c *gin.Context) {
	projectName := c.Param("project_name")
	if projectName == "" {
		ginx.BadRequest(c, "project_name required")
		return
	}

	businessCase, err := h.caseService.GetCaseByProjectName(c.Request.Context(), projectName)
	if err != nil {
		if errors.Is(err, errorx.ErrCaseNotFound) {
			ginx.NotFound(c, "Business case not found")
			return
		}
		log.Printf("[ERROR] get case failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromCaseEntity(businessCase))
}
