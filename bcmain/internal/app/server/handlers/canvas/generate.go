package canvas

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"bcp/bcmain/internal/app/domains/apimodel/request"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/ginx"
)

// Generate godoc
// @Summary      生成单个画布块内容
// @Description  按块 ID 生成对应的画布内容，可选携带案例上下文与知识库检索
// @Description
// @Description  未配置 AI 提供方时返回占位内容（is_placeholder=true），不报错
// @Tags         canvas
// @Accept       json
// @Produce      json
// @Param        request body request.GenerateBlockRequest true "生成请求"
// @Success      200 {object} ginx.Response{data=response.CanvasBlockContent} "生成成功"
// @Failure      400 {object} ginx.Response "未知的画布块"
// @Failure      500 {object} ginx.Response "AI 调用失败"
// @Router       /canvas/generate [post]
func (h *CanvasHandler) Generate(c *gin.Context) {
	var req request.GenerateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	content, err := h.canvasService.GenerateBlock(c.Request.Context(), req.BlockID, req.Context, req.KnowledgeBaseEnabled())
	if err != nil {
		if errors.Is(err, errorx.ErrUnknownCanvasBlock) {
			ginx.BadRequest(c, err.Error())
			return
		}
		log.Printf("[ERROR] generate canvas block failed: %v", err)
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, content)
}
