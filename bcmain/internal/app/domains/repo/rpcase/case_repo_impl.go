package rpcase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/common/entity"
	"bcp/common/model"
)

// caseRepositoryImpl 商业案例仓储的 GORM 实现
type caseRepositoryImpl struct {
	db *gorm.DB
}

// NewCaseRepository 创建案例仓储实例
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepositoryImpl{db: db}
}

// Create 创建商业案例
func (r *caseRepositoryImpl) Create(ctx context.Context, businessCase *etcase.BusinessCase) error {
	gormCase, err := r.toGormModel(businessCase)
	if err != nil {
		return fmt.Errorf("failed to convert business case: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(gormCase).Error; err != nil {
		return fmt.Errorf("failed to create business case: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取案例
func (r *caseRepositoryImpl) GetByID(ctx context.Context, caseID int64) (*etcase.BusinessCase, error) {
	var gormCase entity.BusinessCase
	if err := r.db.WithContext(ctx).First(&gormCase, caseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("business case not found: %d", caseID)
		}
		return nil, fmt.Errorf("failed to get business case: %w", err)
	}
	return r.toDomainModel(&gormCase)
}

// GetByProjectName 根据项目名获取案例，不存在时返回 nil
func (r *caseRepositoryImpl) GetByProjectName(ctx context.Context, projectName string) (*etcase.BusinessCase, error) {
	var gormCase entity.BusinessCase
	err := r.db.WithContext(ctx).Where("project_name = ?", projectName).First(&gormCase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get business case by project name: %w", err)
	}
	return r.toDomainModel(&gormCase)
}

// Update 整行更新案例
func (r *caseRepositoryImpl) Update(ctx context.Context, businessCase *etcase.BusinessCase) error {
	gormCase, err := r.toGormModel(businessCase)
	if err != nil {
		return fmt.Errorf("failed to convert business case: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&entity.BusinessCase{}).
		Where("id = ?", gormCase.ID).
		Updates(map[string]interface{}{
			"description":    gormCase.Description,
			"financial_data": gormCase.FinancialData,
			"assumptions":    gormCase.Assumptions,
			"status":         gormCase.Status,
			"audit_result":   gormCase.AuditResult,
			"updated_at":     gormCase.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update business case: %w", result.Error)
	}
	return nil
}

// UpdateAuditResult 更新审计结果与状态
func (r *caseRepositoryImpl) UpdateAuditResult(ctx context.Context, caseID int64, result *model.AuditResult, status string, errorMsg string) error {
	updates := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}

	if result != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal audit result: %w", err)
		}
		updates["audit_result"] = resultJSON
	}

	// 失败原因暂不落库，记录在 bcsync 日志中（errorMsg 仅用于追踪）
	_ = errorMsg

	if err := r.db.WithContext(ctx).Model(&entity.BusinessCase{}).
		Where("id = ?", caseID).
		Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update audit result: %w", err)
	}
	return nil
}

// Delete 根据项目名删除案例，返回是否存在
func (r *caseRepositoryImpl) Delete(ctx context.Context, projectName string) (bool, error) {
	result := r.db.WithContext(ctx).Where("project_name = ?", projectName).Delete(&entity.BusinessCase{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to delete business case: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// List 分页查询案例列表
func (r *caseRepositoryImpl) List(ctx context.Context, page, limit int) ([]*etcase.BusinessCase, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entity.BusinessCase{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count business cases: %w", err)
	}

	var gormCases []entity.BusinessCase
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&gormCases).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list business cases: %w", err)
	}

	cases := make([]*etcase.BusinessCase, 0, len(gormCases))
	for i := range gormCases {
		domainCase, err := r.toDomainModel(&gormCases[i])
		if err != nil {
			return nil, 0, err
		}
		cases = append(cases, domainCase)
	}
	return cases, total, nil
}

// toGormModel 领域模型转换为数据库模型
func (r *caseRepositoryImpl) toGormModel(businessCase *etcase.BusinessCase) (*entity.BusinessCase, error) {
	financialJSON, err := json.Marshal(businessCase.FinancialData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal financial data: %w", err)
	}

	gormCase := &entity.BusinessCase{
		ID:            businessCase.ID,
		ProjectName:   businessCase.ProjectName,
		Description:   businessCase.Description,
		FinancialData: financialJSON,
		Status:        string(businessCase.Status),
		CreatedAt:     businessCase.CreatedAt,
		UpdatedAt:     businessCase.UpdatedAt,
	}

	if businessCase.Assumptions != nil {
		assumptionsJSON, err := json.Marshal(businessCase.Assumptions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal assumptions: %w", err)
		}
		gormCase.Assumptions = assumptionsJSON
	}

	if businessCase.AuditResult != nil {
		resultJSON, err := json.Marshal(businessCase.AuditResult)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal audit result: %w", err)
		}
		gormCase.AuditResult = resultJSON
	}

	return gormCase, nil
}

// toDomainModel 数据库模型转换为领域模型
func (r *caseRepositoryImpl) toDomainModel(gormCase *entity.BusinessCase) (*etcase.BusinessCase, error) {
	var financialData []model.FinancialRecord
	if len(gormCase.FinancialData) > 0 {
		if err := json.Unmarshal(gormCase.FinancialData, &financialData); err != nil {
			return nil, fmt.Errorf("failed to unmarshal financial data: %w", err)
		}
	}

	var assumptions map[string]string
	if len(gormCase.Assumptions) > 0 {
		if err := json.Unmarshal(gormCase.Assumptions, &assumptions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assumptions: %w", err)
		}
	}

	var auditResult *model.AuditResult
	if len(gormCase.AuditResult) > 0 {
		auditResult = &model.AuditResult{}
		if err := json.Unmarshal(gormCase.AuditResult, auditResult); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit result: %w", err)
		}
	}

	return &etcase.BusinessCase{
		ID:            gormCase.ID,
		ProjectName:   gormCase.ProjectName,
		Description:   gormCase.Description,
		FinancialData: financialData,
		Assumptions:   assumptions,
		Status:        etcase.CaseStatus(gormCase.Status),
		AuditResult:   auditResult,
		CreatedAt:     gormCase.CreatedAt,
		UpdatedAt:     gormCase.UpdatedAt,
	}, nil
}
