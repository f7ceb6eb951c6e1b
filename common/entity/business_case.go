package entity

import (
	"time"

	"gorm.io/datatypes"
)

// BusinessCase 业务案例实体（包含审计结果）
type BusinessCase struct {
	// 基础字段
	ID          int64  `gorm:"column:id;primaryKey"`
	ProjectName string `gorm:"column:project_name;type:varchar(128);not null;uniqueIndex:uk_project_name"`
	Description string `gorm:"column:description;type:varchar(512)"`

	// 案例数据
	FinancialData datatypes.JSON `gorm:"column:financial_data;type:json;not null"`
	Assumptions   datatypes.JSON `gorm:"column:assumptions;type:json"`

	// 审计状态与结果
	Status      string         `gorm:"column:status;type:varchar(16);not null;default:'AUDITING';index:idx_status"`
	AuditResult datatypes.JSON `gorm:"column:audit_result;type:json"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (BusinessCase) TableName() string {
	return "business_cases"
}

// 案例状态常量
const (
	CaseStatusAuditing = "AUDITING"
	CaseStatusAudited  = "AUDITED"
	CaseStatusFailed   = "FAILED"
)
