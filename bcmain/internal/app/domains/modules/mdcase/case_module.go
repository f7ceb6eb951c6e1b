package mdcase

import (
	"context"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/domains/repo/rpcase"
	"bcp/common/model"
)

// CaseModule 案例模块（业务编排层）
type CaseModule struct {
	caseRepo rpcase.CaseRepository
}

// NewCaseModule 创建案例模块
func NewCaseModule(caseRepo rpcase.CaseRepository) *CaseModule {
	return &CaseModule{
		caseRepo: caseRepo,
	}
}

// CreateCase 创建商业案例（数据操作）
func (m *CaseModule) CreateCase(ctx context.Context, businessCase *etcase.BusinessCase) error {
	return m.caseRepo.Create(ctx, businessCase)
}

// GetCase 根据 ID 查询案例
func (m *CaseModule) GetCase(ctx context.Context, caseID int64) (*etcase.BusinessCase, error) {
	return m.caseRepo.GetByID(ctx, caseID)
}

// GetCaseByProjectName 根据项目名查询案例（upsert 判断，不存在返回 nil）
func (m *CaseModule) GetCaseByProjectName(ctx context.Context, projectName string) (*etcase.BusinessCase, error) {
	return m.caseRepo.GetByProjectName(ctx, projectName)
}

// UpdateCase 整行更新案例
func (m *CaseModule) UpdateCase(ctx context.Context, businessCase *etcase.BusinessCase) error {
	return m.caseRepo.Update(ctx, businessCase)
}

// UpdateAuditResult 更新审计结果与状态
func (m *CaseModule) UpdateAuditResult(ctx context.Context, caseID int64, result *model.AuditResult, status string, errorMsg string) error {
	return m.caseRepo.UpdateAuditResult(ctx, caseID, result, status, errorMsg)
}

// DeleteCase 根据项目名删除案例，返回是否存在
func (m *CaseModule) DeleteCase(ctx context.Context, projectName string) (bool, error) {
	return m.caseRepo.Delete(ctx, projectName)
}

// ListCases 分页查询案例列表
func (m *CaseModule) ListCases(ctx context.Context, page, limit int) ([]*etcase.BusinessCase, int64, error) {
	return m.caseRepo.List(ctx, page, limit)
}
