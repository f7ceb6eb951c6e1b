package export

import (
	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/pkg/ginx"
)

// Template 返回幻灯片模板结构
// GET /api/v1/export/template
func (h *ExportHandler) Template(c *gin.Context) {
	ginx.Success(c, h.exportService.Template())
}
