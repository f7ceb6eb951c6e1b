package domains

import (
	"bcp/bcsync/internal/domains/common"
	"bcp/bcsync/internal/domains/handlers/case/audit"
)

// HandlerMap 路由表（ActionType → Handler 映射）
var HandlerMap = map[string]common.HandlerServProc{
	"case_audit": audit.NewAuditHandler,

	// 未来扩展示例：
	// "case_export": export.NewExportHandler,
}
