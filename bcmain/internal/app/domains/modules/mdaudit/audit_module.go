package mdaudit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"bcp/bcmain/internal/app/domains/entity/etcase"
	"bcp/bcmain/internal/app/infra/mq/lmstfy"
	"bcp/bcmain/internal/app/infra/persistence/redis"
	"bcp/common/model"
)

// AuditModule 审计模块
// 职责：
// 1. 组装 Lmstfy 和 Redis 客户端
// 2. 包含审计相关的业务逻辑（消息格式构造、频道命名规则）
type AuditModule struct {
	lmstfyClient *lmstfy.Client
	redisClient  *redis.PubSubClient
	queueName    string
}

// NewAuditModule 创建审计模块实例
func NewAuditModule(lmstfyClient *lmstfy.Client, redisClient *redis.PubSubClient, queueName string) *AuditModule {
	return &AuditModule{
		lmstfyClient: lmstfyClient,
		redisClient:  redisClient,
		queueName:    queueName,
	}
}

// PublishAuditJob 发布案例审计任务到队列
// 业务逻辑：
// 1. 构造标准化消息格式（包含 RequestID, ActionType, OrgID 等）
// 2. 携带完整案例数据（避免 bcsync 查询 DB）
func (m *AuditModule) PublishAuditJob(ctx context.Context, businessCase *etcase.BusinessCase) error {
	message := model.CaseAuditJob{
		Payload: model.CaseAuditPayload{
			Data: model.CaseAuditData{
				RequestID:  uuid.New().String(), // 生成请求 ID 用于全链路追踪
				OrgID:      "0",                 // MVP 固定值
				ActionType: "case_audit",
				ID:         strconv.FormatInt(businessCase.ID, 10),
				Data: model.CaseAuditBusinessData{
					CaseID:      businessCase.ID,
					ProjectName: businessCase.ProjectName,
					Case:        *businessCase.Data(),
				},
			},
		},
	}

	// 调用基础设施层
	return m.lmstfyClient.Publish(ctx, m.queueName, message)
}

// WaitForAuditResult 等待审计结果（Smart Wait）
// 业务逻辑：
// 1. 知道订阅哪个频道（业务约定：audit:result:{caseID}）
// 2. 解析审计结果为领域对象
func (m *AuditModule) WaitForAuditResult(ctx context.Context, caseID int64, timeout time.Duration) (*model.AuditResult, error) {
	// 业务逻辑：频道命名规则
	channel := fmt.Sprintf("audit:result:%d", caseID)

	// 调用基础设施层
	payload, err := m.redisClient.Subscribe(ctx, channel, timeout)
	if err != nil {
		return nil, err
	}

	// 业务逻辑：反序列化为领域对象
	var result model.AuditResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, err
	}

	return &result, nil
}
