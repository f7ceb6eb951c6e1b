package response

import (
	"bcp/bcsync/internal/domains/common/job"
	"bcp/bcsync/pkg/errorutil"
)

// AuditResult 审计任务结果（实现 ResultI 接口）
// Data 字段承载引擎输出的审计结果（common/model.AuditResult）
type AuditResult struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Data   interface{}      `json:"data"`
	Error  *errorutil.Error `json:"error,omitempty"`
}

const (
	AuditStatusSuccess = "SUCCESS"
	AuditStatusFailed  = "FAILED"
)

// NewAuditResult 创建审计任务结果
func NewAuditResult() *AuditResult {
	return &AuditResult{}
}

// Set 实现 ResultI 接口
func (r *AuditResult) Set(meta *job.Meta, err error) {
	r.ID = meta.ID
	if err != nil {
		r.Status = AuditStatusFailed
		r.Error = errorutil.Wrap(err)
	} else {
		r.Status = AuditStatusSuccess
	}
}

// GetStatus 实现 ResultI 接口
func (r *AuditResult) GetStatus() string {
	return r.Status
}
