package svcase

import (
	"context"
	"fmt"
	"log"
	"time"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/domains/modules/mdaudit"
	"bcp/bcmain/internal/app/domains/modules/mdcase"
	"bcp/bcmain/internal/app/pkg/errorx"
	"bcp/bcmain/internal/app/pkg/idgen"
	"bcp/common/entity"
	"bcp/common/model"
)

// CaseService 商业案例服务，负责案例业务编排
type CaseService struct {
	caseModule  *mdcase.CaseModule
	auditModule *mdaudit.AuditModule
}

// NewCaseService 创建案例服务实例
func NewCaseService(caseModule *mdcase.CaseModule, auditModule *mdaudit.AuditModule) *CaseService {
	return &CaseService{
		caseModule:  caseModule,
		auditModule: auditModule,
	}
}

// CreateOrUpdateCase 创建或覆盖商业案例（完整业务流程）
// 1. 按 project_name 查询是否已存在
// 2. 不存在：生成雪花 ID 创建聚合并落库
// 3. 已存在：覆盖案例数据并重置审计状态（upsert 语义）
// 4. 发布到审计队列
// 5. Smart Wait（等待审计结果）
func (s *CaseService) CreateOrUpdateCase(ctx context.Context, data *model.BusinessCaseData, waitSeconds int) (*etcase.BusinessCase, error) {
	existing, err := s.caseModule.GetCaseByProjectName(ctx, data.ProjectName)
	if err != nil {
		return nil, fmt.Errorf("check case exists failed: %w", err)
	}

	var businessCase *etcase.BusinessCase
	if existing == nil {
		businessCase, err = etcase.NewBusinessCase(idgen.GenerateID(), data.ProjectName, data.Description, data.FinancialData, data.Assumptions)
		if err != nil {
			return nil, fmt.Errorf("create case entity failed: %w", err)
		}
		if err := s.caseModule.CreateCase(ctx, businessCase); err != nil {
			return nil, fmt.Errorf("save business case failed: %w", err)
		}
	} else {
		businessCase = existing
		if err := businessCase.ReplaceData(data.Description, data.FinancialData, data.Assumptions); err != nil {
			return nil, fmt.Errorf("replace case data failed: %w", err)
		}
		if err := s.caseModule.UpdateCase(ctx, businessCase); err != nil {
			return nil, fmt.Errorf("save business case failed: %w", err)
		}
	}

	// 4. 发布到审计队列
	if err := s.auditModule.PublishAuditJob(ctx, businessCase); err != nil {
		// 发布失败只记录日志，案例保持 AUDITING，可重新提交触发
		log.Printf("[WARN] publish audit job failed: case_id=%d, error=%v", businessCase.ID, err)
	}

	// 5. Smart Wait（等待审计结果）
	if waitSeconds > 0 {
		timeout := time.Duration(waitSeconds) * time.Second
		result, err := s.auditModule.WaitForAuditResult(ctx, businessCase.ID, timeout)
		if err != nil {
			// 超时或订阅失败，只记录日志
			log.Printf("[WARN] wait for audit result failed: case_id=%d, error=%v", businessCase.ID, err)
			return businessCase, nil // 返回案例，状态仍为 AUDITING
		}

		if result != nil {
			if result.Status != model.AuditStatusCompleted {
				// 审计失败：FAILED 状态由回调消费者落库，这里不覆盖
				log.Printf("[WARN] audit did not complete: case_id=%d, status=%s", businessCase.ID, result.Status)
				return businessCase, nil
			}

			// 更新内存中的案例聚合
			if err := businessCase.UpdateAuditResult(result); err != nil {
				return nil, fmt.Errorf("update case entity failed: %w", err)
			}

			// 持久化到 DB
			if err := s.caseModule.UpdateAuditResult(ctx, businessCase.ID, result, entity.CaseStatusAudited, ""); err != nil {
				// 严重问题：内存已更新，DB 更新失败
				log.Printf("[ERROR] persist audit result failed: case_id=%d, error=%v", businessCase.ID, err)
				return nil, fmt.Errorf("persist audit result failed: %w", err)
			}
		}
	}

	return businessCase, nil
}

// GetCaseByProjectName 根据项目名查询案例
func (s *CaseService) GetCaseByProjectName(ctx context.Context, projectName string) (*etcase.BusinessCase, error) {
	businessCase, err := s.caseModule.GetCaseByProjectName(ctx, projectName)
	if err != nil {
		return nil, fmt.Errorf("get business case failed: %w", err)
	}
	if businessCase == nil {
		return nil, errorx.ErrCaseNotFound
	}
	return businessCase, nil
}

// ListCases 分页查询案例列表
func (s *CaseService) ListCases(ctx context.Context, page, limit int) ([]*etcase.BusinessCase, int64, error) {
	return s.caseModule.ListCases(ctx, page, limit)
}

// UpdateFinancialData 替换案例的财务数据并重新触发审计
// 1. 查询案例（不存在返回 ErrCaseNotFound）
// 2. 替换财务数据，重置审计状态为 AUDITING
// 3. 落库并重新发布审计任务
func (s *CaseService) UpdateFinancialData(ctx context.Context, projectName string, records []model.FinancialRecord) (*etcase.BusinessCase, error) {
	businessCase, err := s.GetCaseByProjectName(ctx, projectName)
	if err != nil {
		return nil, err
	}

	if err := businessCase.ReplaceFinancialData(records); err != nil {
		return nil, fmt.Errorf("replace financial data failed: %w", err)
	}

	if err := s.caseModule.UpdateCase(ctx, businessCase); err != nil {
		return nil, fmt.Errorf("save business case failed: %w", err)
	}

	if err := s.auditModule.PublishAuditJob(ctx, businessCase); err != nil {
		log.Printf("[WARN] publish audit job failed: case_id=%d, error=%v", businessCase.ID, err)
	}

	return businessCase, nil
}

// DeleteCase 根据项目名删除案例
func (s *CaseService) DeleteCase(ctx context.Context, projectName string) error {
	deleted, err := s.caseModule.DeleteCase(ctx, projectName)
	if err != nil {
		return fmt.Errorf("delete business case failed: %w", err)
	}
	if !deleted {
		return errorx.ErrCaseNotFound
	}
	return nil
}
