package response

import (
	"time"

	"bcp/bcmain/internal/app/domains/entity/etprimitive"
	"bcp/common/model"
)

// CaseResponse 商业案例响应（DTO）
type CaseResponse struct {
	ID            int64                   `json:"id"`
	ProjectName   string                  `json:"project_name"`
	Description   string                  `json:"description,omitempty"`
	FinancialData []model.FinancialRecord `json:"financial_data"`
	Assumptions   map[string]string       `json:"assumptions,omitempty"`
	Status        string                  `json:"status"`
	AuditResult   *model.AuditResult      `json:"audit_result,omitempty"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

// CaseSummary 案例列表项（DTO）
type CaseSummary struct {
	ID          int64     `json:"id"`
	ProjectName string    `json:"project_name"`
	Status      string    `json:"status"`
	Years       int       `json:"years"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CaseListResponse 案例列表响应（DTO）
type CaseListResponse struct {
	Cases      []*CaseSummary          `json:"cases"`
	Pagination *etprimitive.Pagination `json:"pagination"`
}

// UpdateFinancialsResponse 财务数据替换响应（DTO）
type UpdateFinancialsResponse struct {
	ProjectName string `json:"project_name"`
	UpdatedRows int    `json:"updated_rows"`
	Status      string `json:"status"`
}

// DeleteCaseResponse 案例删除响应（DTO）
type DeleteCaseResponse struct {
	Deleted string `json:"deleted"`
}
