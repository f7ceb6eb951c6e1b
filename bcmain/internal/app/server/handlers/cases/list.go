package cases

import (
	"log"
	"strconv"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/ginx"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 100
)

// List 分页查询案例列表
// GET /api/v1/cases?page=1&limit=20
func (h *CaseHandler) List(c *gin.Context) {
	page := defaultPage
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	limit := defaultLimit
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	listCases, total, err := h.caseService.ListCases(c.Request.Context(), page, limit)
	if err != nil {
		log.Printf("[ERROR] list cases failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromCaseEntities(listCases, page, limit, total))
}
