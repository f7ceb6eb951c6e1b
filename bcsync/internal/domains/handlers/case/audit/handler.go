package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"bcp/bcsync/internal/business"
	"bcp/bcsync/internal/domains/common"
	"bcp/bcsync/internal/domains/common/job"
	"bcp/bcsync/internal/domains/common/response"
	"bcp/bcsync/pkg/errorutil"
	"bcp/common/model"
)

// AuditHandler 案例审计 Handler
type AuditHandler struct {
	ctx     context.Context
	meta    *job.Meta
	jobData *model.CaseAuditBusinessData
}

// NewAuditHandler 创建审计 Handler
// 解析标准化 Job 消息的业务数据段
func NewAuditHandler(ctx context.Context, meta *job.Meta, payload interface{}) (common.HandlerServ, error) {
	// 解析 payload（业务数据）
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload failed: %w", err)
	}

	var bizData model.CaseAuditBusinessData
	if err := json.Unmarshal(payloadBytes, &bizData); err != nil {
		// 数值字段类型错误在这里暴露（字段名随 UnmarshalTypeError 带出）
		return nil, fmt.Errorf("unmarshal business data failed: %w", err)
	}

	// 校验必填字段
	if bizData.CaseID == 0 {
		return nil, fmt.Errorf("case_id is required")
	}
	if bizData.ProjectName == "" {
		return nil, fmt.Errorf("project_name is required")
	}

	return &AuditHandler{
		ctx:     ctx,
		meta:    meta,
		jobData: &bizData,
	}, nil
}

// GetProcess 处理审计请求
func (h *AuditHandler) GetProcess() *response.Response {
	// 创建结果
	result := response.NewAuditResult()

	// 处理业务逻辑
	auditResult, err := h.process()
	if err == nil {
		result.Data = auditResult
	}

	// 包装响应
	resp := &response.Response{}
	resp.WrapResponse(result, h.meta, err)

	return resp
}

// process 业务处理逻辑
func (h *AuditHandler) process() (*model.AuditResult, error) {
	// 从 Context 获取 AuditService
	auditService, ok := h.ctx.Value("audit_service").(*business.AuditService)
	if !ok || auditService == nil {
		return nil, errorutil.NonRetriable("AuditService not found in context")
	}

	// 构造审计输入（payload 自带完整案例数据，不回查 DB）
	input := &business.AuditInput{
		RequestID:   h.meta.RequestID,
		CaseID:      h.jobData.CaseID,
		ProjectName: h.jobData.ProjectName,
		Case:        h.jobData.Case,
	}

	// 执行审计并发送通知与回调
	return auditService.ExecuteAudit(h.ctx, input)
}
