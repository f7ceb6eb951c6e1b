package canvas

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// KnowledgeBaseStatus 返回知识库配置状态
// GET /api/v1/canvas/knowledge-base/status
func (h *CanvasHandler) KnowledgeBaseStatus(c *gin.Context) {
	ginx.Success(c, h.searchService.Status())
}

// ServiceStatus 返回画布 AI 与知识库的可用状态
// GET /api/v1/canvas/status
func (h *CanvasHandler) ServiceStatus(c *gin.Context) {
	ginx.Success(c, response.AIServiceStatusResponse{
		CanvasAIService:      h.canvasService.Status(),
		KnowledgeBaseService: h.searchService.Status(),
	})
}
