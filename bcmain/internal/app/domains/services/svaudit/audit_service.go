package svaudit

import (
	"bcp/common/auditor"
	"bcp/common/model"
)

// AuditService 同步审计服务（引擎进程内执行，不落库、不走队列）
type AuditService struct {
	engine *auditor.Auditor
}

// NewAuditService 创建同步审计服务实例
func NewAuditService() *AuditService {
	return &AuditService{
		engine: auditor.New(),
	}
}

// AuditCase 对内联案例数据执行一次完整规则审计
func (s *AuditService) AuditCase(data *model.BusinessCaseData) *model.AuditResult {
	return s.engine.Audit(data)
}

// ValidateFormula 校验单条公式关系
func (s *AuditService) ValidateFormula(left, right float64, operator string, tolerance float64) auditor.FormulaResult {
	return auditor.ValidateFormula(left, right, operator, tolerance)
}

// Rules 返回固定的审计规则目录
func (s *AuditService) Rules() []auditor.Rule {
	return auditor.Rules()
}
