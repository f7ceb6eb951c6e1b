package export

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/domains/services/svexport"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Deck godoc
// @Summary      导出幻灯片
// @Description  将业务案例渲染为 12 页幻灯片并以附件形式下载
// @Description
// @Description  请求体携带 financial_data 时直接用内联数据渲染，
// @Description  否则按 project_name 加载已保存的案例
// @Tags         export
// @Accept       json
// @Produce      application/json
// @Param        request body request.ExportDeckRequest true "导出请求"
// @Success      200 {file} binary "幻灯片文件"
// @Failure      400 {object} ginx.Response "参数错误"
// @Failure      404 {object} ginx.Response "案例不存在"
// @Router       /export/deck [post]
func (h *ExportHandler) Deck(c *gin.Context) {
	var req request.ExportDeckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	var deck *svexport.RenderedDeck
	var err error
	if req.Inline() {
		deck, err = h.exportService.ExportDeck(req.ToBusinessCaseData())
	} else {
		deck, err = h.exportService.ExportStoredDeck(c.Request.Context(), req.ProjectName)
	}
	if err != nil {
		if errors.Is(err, errorx.ErrCaseNotFound) {
			ginx.NotFound(c, "Business case not found")
			return
		}
		log.Printf("[ERROR] export deck failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deck.Filename))
	c.Data(http.StatusOK, deck.ContentType, deck.Content)
}
