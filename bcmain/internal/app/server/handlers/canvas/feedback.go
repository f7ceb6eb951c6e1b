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

// Feedback 按用户反馈改写画布内容
// POST /api/v1/canvas/feedback
func (h *CanvasHandler) Feedback(c *gin.Context) {
	var req request.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	result, err := h.canvasService.ProcessFeedback(c.Request.Context(), req.BlockID, req.CurrentContent, req.Feedback, req.Context)
	if err != nil {
		if errors.Is(err, errorx.ErrLLMNotConfigured) {
			ginx.Error(c, http.StatusServiceUnavailable, "AI service not configured")
			return
		}
		log.Printf("[ERROR] process feedback failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, result)
}
