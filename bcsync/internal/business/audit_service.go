package business

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bcp/bcsync/pkg/errorutil"
	"bcp/bcsync/pkg/infra/redis"
	"bcp/bcsync/pkg/lmstfy"
	"bcp/common/auditor"
	"bcp/common/model"
)

// AuditInput 一次案例审计所需的全部输入
type AuditInput struct {
	RequestID   string
	CaseID      int64
	ProjectName string
	Case        model.BusinessCaseData
}

// AuditService 案例审计服务（仅负责审计逻辑，不涉及 DB 操作）
// 职责：执行规则审计 → 发送 Smart Wait 通知 → 发送回调到 callback 队列
type AuditService struct {
	engine        *auditor.Auditor
	lmstfyClient  *lmstfy.Client
	notifier      *redis.PubSub
	callbackQueue string
}

// NewAuditService 创建审计服务实例
func NewAuditService(
	lmstfyClient *lmstfy.Client,
	notifier *redis.PubSub,
	callbackQueue string,
) *AuditService {
	return &AuditService{
		engine:        auditor.New(),
		lmstfyClient:  lmstfyClient,
		notifier:      notifier,
		callbackQueue: callbackQueue,
	}
}

// ExecuteAudit 执行审计并发送通知与回调
// 审计引擎是纯函数（对任意输入总能给出结果），所以 FAILED 回调只在
// 输入本身非法时产生；基础设施失败返回可重试错误，等待消息重新投递
func (s *AuditService) ExecuteAudit(ctx context.Context, input *AuditInput) (*model.AuditResult, error) {
	// 1. 输入校验（Handler 已查过 envelope，这里守住业务数据底线）
	auditErr := validateInput(input)

	// 2. 执行规则审计
	var result *model.AuditResult
	if auditErr == nil {
		result = s.engine.Audit(&input.Case)
	}

	// 3. 构造回调消息
	callback := model.CaseAuditCallback{
		RequestID:   input.RequestID,
		CaseID:      input.CaseID,
		ProjectName: input.ProjectName,
		ProcessedAt: time.Now().Unix(),
	}

	if auditErr != nil {
		callback.Status = model.CallbackStatusFailed
		callback.Error = auditErr.Error()
	} else {
		callback.Status = model.CallbackStatusSuccess
		callback.AuditResult = result
	}

	// 4. 发送 Smart Wait 通知（成功时；bcmain 回调落库后会重发，订阅端幂等）
	if auditErr == nil {
		if err := s.notifier.PublishAuditResult(ctx, input.CaseID, result); err != nil {
			return nil, errorutil.RetriableWithDetails("publish audit notification failed", err.Error())
		}
	}

	// 5. 序列化并发送回调到 callback 队列
	callbackJSON, err := json.Marshal(callback)
	if err != nil {
		return nil, errorutil.NonRetriableWithDetails("marshal callback failed", err.Error())
	}

	// ttl=0 表示永不过期, delay=0 表示立即可用
	if err := s.lmstfyClient.Publish(s.callbackQueue, callbackJSON, 0, 0); err != nil {
		return nil, errorutil.RetriableWithDetails("publish callback failed", err.Error())
	}

	if auditErr != nil {
		return nil, errorutil.NonRetriableWithDetails("invalid audit input", auditErr.Error())
	}

	return result, nil
}

// validateInput 校验审计输入
// 缺字段的任务重试也不会成功，直接走 FAILED 回调
func validateInput(input *AuditInput) error {
	if input.CaseID <= 0 {
		return fmt.Errorf("case_id is required")
	}
	if input.ProjectName == "" {
		return fmt.Errorf("project_name is required")
	}
	return nil
}
