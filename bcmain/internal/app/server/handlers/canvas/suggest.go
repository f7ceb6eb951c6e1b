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

// Suggest 针对画布块给出改进建议
// POST /api/v1/canvas/suggest
func (h *CanvasHandler) Suggest(c *gin.Context) {
	var req request.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.canvasService.GenerateSuggestions(c.Request.Context(), req.BlockID, req.CurrentContent, req.Context)
	if err != nil {
		if errors.Is(err, errorx.ErrLLMNotConfigured) {
			ginx.Error(c, http.StatusServiceUnavailable, "AI service not configured")
			return
		}
		log.Printf("[ERROR] generate suggestions failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
