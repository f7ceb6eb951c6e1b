package mysql

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bcp/common/entity"
	"bcp/common/model"
)

// CaseDAO 业务案例数据访问对象
// 供 fasttest 工具的完整模式直接落库（不经过 bcmain 的回调链路）
type CaseDAO struct {
	db *gorm.DB
}

// NewCaseDAO 创建 CaseDAO 实例
func NewCaseDAO(dsn string) (*CaseDAO, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &CaseDAO{
		db: db,
	}, nil
}

// UpdateAuditResult 更新案例的审计结果与状态
// status 取 entity.CaseStatusAudited / entity.CaseStatusFailed
func (dao *CaseDAO) UpdateAuditResult(
	ctx context.Context,
	caseID int64,
	result *model.AuditResult,
	status string,
) error {
	updates := map[string]interface{}{
		"status": status,
	}

	if result != nil {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to marshal audit result: %w", err)
		}
		updates["audit_result"] = resultJSON
	}

	dbResult := dao.db.WithContext(ctx).
		Model(&entity.BusinessCase{}).
		Where("id = ?", caseID).
		Updates(updates)

	if dbResult.Error != nil {
		return fmt.Errorf("failed to update business case: %w", dbResult.Error)
	}

	if dbResult.RowsAffected == 0 {
		return fmt.Errorf("business case not found: %d", caseID)
	}

	return nil
}

// GetCaseByID 根据案例 ID 获取案例
func (dao *CaseDAO) GetCaseByID(ctx context.Context, caseID int64) (*entity.BusinessCase, error) {
	var businessCase entity.BusinessCase
	result := dao.db.WithContext(ctx).Where("id = ?", caseID).First(&businessCase)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get business case: %w", result.Error)
	}
	return &businessCase, nil
}

// Close 关闭数据库连接
func (dao *CaseDAO) Close() error {
	sqlDB, err := dao.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
