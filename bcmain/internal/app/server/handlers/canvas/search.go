package canvas

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// SearchKnowledgeBase godoc
// @Summary      检索知识库
// @Description  对案例知识库做向量相似检索，返回匹配片段与拼接后的上下文
// @Tags         canvas
// @Accept       json
// @Produce      json
// @Param        request body request.SearchKnowledgeBaseRequest true "检索请求"
// @Success      200 {object} ginx.Response{data=response.SearchResponse} "检索成功"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      503 {object} ginx.Response "知识库未配置"
// @Router       /canvas/knowledge-base/search [post]
func (h *CanvasHandler) SearchKnowledgeBase(c *gin.Context) {
	var req request.SearchKnowledgeBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req.Query, req.PageSize)
	if err != nil {
		if errors.Is(err, errorx.ErrKBNotConfigured) {
			ginx.Error(c, http.StatusServiceUnavailable, "Knowledge base not configured")
			return
		}
		log.Printf("[ERROR] knowledge base search failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
