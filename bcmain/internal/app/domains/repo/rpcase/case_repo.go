package rpcase

import (
	"context"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/common/model"
)

// CaseRepository 商业案例仓储接口
type CaseRepository interface {
	// Create 创建商业案例
	Create(ctx context.Context, businessCase *etcase.BusinessCase) error

	// GetByID 根据 ID 获取案例，不存在时返回错误
	GetByID(ctx context.Context, caseID int64) (*etcase.BusinessCase, error)

	// GetByProjectName 根据项目名获取案例，不存在时返回 nil（用于 upsert 判断）
	GetByProjectName(ctx context.Context, projectName string) (*etcase.BusinessCase, error)

	// Update 整行更新案例（覆盖财务数据、假设与审计结果）
	Update(ctx context.Context, businessCase *etcase.BusinessCase) error

	// UpdateAuditResult 更新审计结果与状态（bcsync 回调落库）
	UpdateAuditResult(ctx context.Context, caseID int64, result *model.AuditResult, status string, errorMsg string) error

	// Delete 根据项目名删除案例，返回是否存在
	Delete(ctx context.Context, projectName string) (bool, error)

	// List 分页查询案例列表
	List(ctx context.Context, page, limit int) ([]*etcase.BusinessCase, int64, error)
}
