package audit

import "bcp/bcmain/internal/app/domains/services/svaudit"

// AuditHandler 审计 HTTP 处理器
type AuditHandler struct {
	auditService *svaudit.AuditService
}

// NewAuditHandler 创建审计处理器实例
func NewAuditHandler(auditService *svaudit.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}
