package canvas

import (
	"bcp/bcmain/internal/app/domains/services/svcanvas"
	"bcp/bcmain/internal/app/domains/services/svsearch"
)

// CanvasHandler 画布与知识库 HTTP 处理器
type CanvasHandler struct {
	canvasService *svcanvas.CanvasService
	searchService *svsearch.SearchService
}

// NewCanvasHandler 创建画布处理器实例
func NewCanvasHandler(canvasService *svcanvas.CanvasService, searchService *svsearch.SearchService) *CanvasHandler {
	return &CanvasHandler{
		canvasService: canvasService,
		searchService: searchService,
	}
}
