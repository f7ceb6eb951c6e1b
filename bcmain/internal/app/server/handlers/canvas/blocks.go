package canvas

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/pkg/ginx"
)

// Blocks 返回画布块定义与七步路演框架
// GET /api/v1/canvas/building-blocks
func (h *CanvasHandler) Blocks(c *gin.Context) {
	ginx.Success(c, h.canvasService.BuildingBlocks())
}
