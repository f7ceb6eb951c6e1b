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

// Enhance 优化已有画布内容
// POST /api/v1/canvas/enhance
// 与 generate 不同，此接口依赖 AI 提供方，未配置时返回 503
func (h *CanvasHandler) Enhance(c *gin.Context) {
	var req request.EnhanceContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.canvasService.EnhanceContent(c.Request.Context(), req.Content, req.EnhancementType)
	if err != nil {
		if errors.Is(err, errorx.ErrLLMNotConfigured) {
			ginx.Error(c, http.StatusServiceUnavailable, "AI service not configured")
			return
		}
		log.Printf("[ERROR] enhance content failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
