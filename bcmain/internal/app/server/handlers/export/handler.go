package export

import "bcp/bcmain/internal/app/domains/services/svexport"

// ExportHandler 幻灯片导出 HTTP 处理器
type ExportHandler struct {
	exportService *svexport.ExportService
}

// NewExportHandler 创建导出处理器实例
func NewExportHandler(exportService *svexport.ExportService) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}
