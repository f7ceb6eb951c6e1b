package canvas

import (
	"log"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// GenerateAll 一次性生成全部画布块
// POST /api/v1/canvas/generate-all
// 单个块失败不会中断整体流程，失败信息随块返回
func (h *CanvasHandler) GenerateAll(c *gin.Context) {
	var req request.GenerateCanvasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	canvasResp, err := h.canvasService.GenerateFullCanvas(c.Request.Context(), req.Context)
	if err != nil {
		log.Printf("[ERROR] generate full canvas failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, canvasResp)
}
