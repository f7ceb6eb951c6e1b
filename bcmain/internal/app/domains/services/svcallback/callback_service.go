package svcallback

import (
	"context"
	"encoding/json"
	"fmt"

	"bcp/bcmain/internal/app/domains/repo/rpcase"
	"bcp/bcmain/internal/app/infra/persistence/redis"
	"bcp/bcmain/internal/app/pkg/logger"
	"bcp/common/entity"
	"bcp/common/model"
)

// CallbackService 回调处理服务
// 职责：
// 1. 处理 bcsync 发送的审计回调
// 2. 更新 DB 案例状态
// 3. 发送 Redis PubSub 通知（Smart Wait）
type CallbackService struct {
	caseRepo    rpcase.CaseRepository
	redisClient *redis.PubSubClient
	logger      logger.Logger
}

// NewCallbackService 创建回调服务实例
func NewCallbackService(
	caseRepo rpcase.CaseRepository,
	redisClient *redis.PubSubClient,
	logger logger.Logger,
) *CallbackService {
	return &CallbackService{
		caseRepo:    caseRepo,
		redisClient: redisClient,
		logger:      logger,
	}
}

// HandleCallback 处理审计回调
// 返回 error 表示处理失败（需要重试）
func (s *CallbackService) HandleCallback(ctx context.Context, callback *model.CaseAuditCallback) error {
	s.logger.InfoContext(ctx, "Processing callback: case_id=%d, status=%s, request_id=%s",
		callback.CaseID, callback.Status, callback.RequestID)

	// 1. 根据回调状态更新 DB
	if err := s.updateCaseStatus(ctx, callback); err != nil {
		s.logger.ErrorContext(ctx, "Failed to update case status: case_id=%d, error=%v",
			callback.CaseID, err)
		return fmt.Errorf("update case status failed: %w", err)
	}

	// 2. 发送 Redis PubSub 通知（用于 Smart Wait）
	if err := s.publishNotification(ctx, callback); err != nil {
		// 通知失败不影响整体流程（DB 已更新成功），只记录日志
		s.logger.WarnContext(ctx, "Failed to publish Redis notification: case_id=%d, error=%v",
			callback.CaseID, err)
	}

	s.logger.InfoContext(ctx, "Callback processed successfully: case_id=%d", callback.CaseID)

	return nil
}

// updateCaseStatus 根据回调状态更新案例
func (s *CallbackService) updateCaseStatus(ctx context.Context, callback *model.CaseAuditCallback) error {
	if callback.Status == model.CallbackStatusSuccess {
		// 审计成功：更新状态为 AUDITED，保存审计结果
		return s.caseRepo.UpdateAuditResult(
			ctx,
			callback.CaseID,
			callback.AuditResult,
			entity.CaseStatusAudited,
			"",
		)
	}

	// 审计失败：更新状态为 FAILED，记录错误信息
	return s.caseRepo.UpdateAuditResult(
		ctx,
		callback.CaseID,
		nil,
		entity.CaseStatusFailed,
		callback.Error,
	)
}

// publishNotification 发送 Redis PubSub 通知（使用案例独立频道）
// bcsync 成功路径已先发过一次，这里重发保证回调落库后通知必达（订阅端幂等）
func (s *CallbackService) publishNotification(ctx context.Context, callback *model.CaseAuditCallback) error {
	// 频道命名规则与 Smart Wait 订阅一致
	channel := fmt.Sprintf("audit:result:%d", callback.CaseID)

	// 构造通知数据（与 Smart Wait 期望的 AuditResult 格式一致）
	var notificationData interface{}
	if callback.Status == model.CallbackStatusSuccess && callback.AuditResult != nil {
		notificationData = callback.AuditResult
	} else {
		notificationData = map[string]interface{}{
			"status": callback.Status,
			"error":  callback.Error,
		}
	}

	payload, err := json.Marshal(notificationData)
	if err != nil {
		return fmt.Errorf("marshal notification failed: %w", err)
	}

	if err := s.redisClient.Publish(ctx, channel, string(payload)); err != nil {
		return fmt.Errorf("publish to redis failed: %w", err)
	}

	s.logger.InfoContext(ctx, "Redis notification sent: case_id=%d, channel=%s",
		callback.CaseID, channel)

	return nil
}
