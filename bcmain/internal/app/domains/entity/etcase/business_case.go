package etcase

import (
	"errors"
	"time"

	"bcp/common/model"
)

// 错误定义
var (
	ErrInvalidCaseID      = errors.New("invalid case ID")
	ErrInvalidProjectName = errors.New("project name cannot be empty")
	ErrNilFinancialData   = errors.New("financial data cannot be nil")
	ErrNilAuditResult     = errors.New("audit result cannot be nil")
)

// BusinessCase 业务案例聚合根（领域对象）
// 财务数据与审计结果复用 common/model 的共享类型，
// 聚合根在其上补充身份、状态与生命周期
type BusinessCase struct {
	ID            int64                   // 案例ID（雪花ID）
	ProjectName   string                  // 项目名（全局唯一）
	Description   string                  // 项目描述
	FinancialData []model.FinancialRecord // 多年财务预测
	Assumptions   map[string]string       // 关键假设
	Status        CaseStatus              // 审计状态
	AuditResult   *model.AuditResult      // 审计结果
	CreatedAt     time.Time               // 创建时间
	UpdatedAt     time.Time               // 更新时间
}

// CaseStatus 案例状态
type CaseStatus string

const (
	CaseStatusAuditing CaseStatus = "AUDITING"
	CaseStatusAudited  CaseStatus = "AUDITED"
	CaseStatusFailed   CaseStatus = "FAILED"
)

// NewBusinessCase 创建业务案例（工厂方法）
func NewBusinessCase(id int64, projectName, description string, financialData []model.FinancialRecord, assumptions map[string]string) (*BusinessCase, error) {
	// 业务规则校验
	if id <= 0 {
		return nil, ErrInvalidCaseID
	}
	if projectName == "" {
		return nil, ErrInvalidProjectName
	}
	if financialData == nil {
		return nil, ErrNilFinancialData
	}

	return &BusinessCase{
		ID:            id,
		ProjectName:   projectName,
		Description:   description,
		FinancialData: financialData,
		Assumptions:   assumptions,
		Status:        CaseStatusAuditing,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

// UpdateAuditResult 更新审计结果（领域行为）
func (b *BusinessCase) UpdateAuditResult(result *model.AuditResult) error {
	if result == nil {
		return ErrNilAuditResult
	}
	b.AuditResult = result
	b.Status = CaseStatusAudited
	b.UpdatedAt = time.Now()
	return nil
}

// ReplaceData 整体替换案例数据并重置审计状态（领域行为）
// 用于按项目名 upsert：同名案例提交即覆盖
func (b *BusinessCase) ReplaceData(description string, financialData []model.FinancialRecord, assumptions map[string]string) error {
	if financialData == nil {
		return ErrNilFinancialData
	}
	b.Description = description
	b.FinancialData = financialData
	b.Assumptions = assumptions
	b.AuditResult = nil
	b.Status = CaseStatusAuditing
	b.UpdatedAt = time.Now()
	return nil
}

// ReplaceFinancialData 替换财务数据并重置审计状态（领域行为）
func (b *BusinessCase) ReplaceFinancialData(financialData []model.FinancialRecord) error {
	if financialData == nil {
		return ErrNilFinancialData
	}
	b.FinancialData = financialData
	b.AuditResult = nil
	b.Status = CaseStatusAuditing
	b.UpdatedAt = time.Now()
	return nil
}

// MarkAsFailed 标记为失败（领域行为）
func (b *BusinessCase) MarkAsFailed() {
	b.Status = CaseStatusFailed
	b.UpdatedAt = time.Now()
}

// Data 转为共享数据模型（发布审计任务与导出时使用）
func (b *BusinessCase) Data() *model.BusinessCaseData {
	return &model.BusinessCaseData{
		ProjectName:   b.ProjectName,
		Description:   b.Description,
		FinancialData: b.FinancialData,
		Assumptions:   b.Assumptions,
	}
}
