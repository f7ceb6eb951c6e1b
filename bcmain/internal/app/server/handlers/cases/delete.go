package cases

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Delete 删除案例
// DELETE /api/v1/cases/:project_name
func (h *CaseHandler) Delete(c *gin.Context) {
	projectName := c.Param("project_name")
	if projectName == "" {
		ginx.BadRequest(c, "project_name required")
		return
	}

	if err := h.caseService.DeleteCase(c.Request.Context(), projectName); err != nil {
		if errors.Is(err, errorx.ErrCaseNotFound) {
			ginx.NotFound(c, "Business case not found")
			return
		}
		log.Printf("[ERROR] delete case failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.DeleteCaseResponse{Deleted: projectName})
}
