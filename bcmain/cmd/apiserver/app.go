package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"bcp/bcmain/internal/app/config"
	"bcp/bcmain/internal/app/consumer"
	"bcp/bcmain/internal/app/domains/modules/mdaudit"
	"bcp/bcmain/internal/app/domains/modules/mdcase"
	"bcp/bcmain/internal/app/domains/repo/rpcase"
	"bcp/bcmain/internal/app/domains/services/svaudit"
	"bcp/bcmain/internal/app/domains/services/svcallback"
	"bcp/bcmain/internal/app/domains/services/svcanvas"
	"bcp/bcmain/internal/app/domains/services/svcase"
	"bcp/bcmain/internal/app/domains/services/svexport"
	"bcp/bcmain/internal/app/domains/services/svsearch"
	"bcp/bcmain/internal/app/infra/llm"
	"bcp/bcmain/internal/app/infra/mq/lmstfy"
	"bcp/bcmain/internal/app/infra/persistence/redis"
	"bcp/bcmain/internal/app/infra/search"
	"bcp/bcmain/internal/app/pkg/logger"
	"bcp/bcmain/internal/app/server/handlers/audit"
	"bcp/bcmain/internal/app/server/handlers/canvas"
	"bcp/bcmain/internal/app/server/handlers/cases"
	"bcp/bcmain/internal/app/server/handlers/export"
	"bcp/bcmain/internal/app/server/routers"
)

// App 应用依赖容器
type App struct {
	Engine           *gin.Engine
	CallbackConsumer *consumer.CallbackConsumer
}

// InitializeApp 按依赖顺序组装应用
// 返回的 cleanup 负责释放所有外部连接
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	ctx := context.Background()
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// 1. 基础设施：MySQL / Redis / lmstfy
	db, err := gorm.Open(mysql.Open(cfg.MySQL.DSN), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("init database failed: %w", err)
	}

	redisClient, err := redis.NewPubSubClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis failed: %w", err)
	}
	closers = append(closers, func() { _ = redisClient.Close() })

	lmstfyClient := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)

	// 2. 可选能力：画布 AI 与知识库
	chatClient, err := llm.New(ctx, cfg.LLM.Provider, cfg.LLM.APIKey, cfg.LLM.Model)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init llm client failed: %w", err)
	}
	if chatClient != nil {
		closers = append(closers, func() { _ = chatClient.Close() })
	}

	var vectorStore *search.VectorStore
	var embedder *search.Embedder
	if cfg.KB.Addr != "" && cfg.KB.OpenAIAPIKey != "" {
		vectorStore, err = search.NewVectorStore(cfg.KB.Addr, cfg.KB.Collection)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("init vector store failed: %w", err)
		}
		closers = append(closers, func() { _ = vectorStore.Close() })

		embedder, err = search.NewEmbedder(cfg.KB.OpenAIAPIKey, cfg.KB.EmbeddingModel)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("init embedder failed: %w", err)
		}

		if err := vectorStore.EnsureCollection(ctx, search.VectorSize); err != nil {
			// 集合创建失败不阻塞启动，检索时按未配置处理
			log.Printf("[WARN] ensure knowledge base collection failed: %v", err)
		}
	}

	// 3. 领域层：repo → module → service
	caseRepo := rpcase.NewCaseRepository(db)
	caseModule := mdcase.NewCaseModule(caseRepo)
	auditModule := mdaudit.NewAuditModule(lmstfyClient, redisClient, cfg.Lmstfy.Queue)

	caseService := svcase.NewCaseService(caseModule, auditModule)
	auditService := svaudit.NewAuditService()
	searchService := svsearch.NewSearchService(vectorStore, embedder, cfg.KB.Collection)
	canvasService := svcanvas.NewCanvasService(chatClient, searchService, cfg.LLM.Provider, cfg.LLM.Model)

	renderer, err := newRenderer(cfg.Export.Format)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	exportService := svexport.NewExportService(caseModule, renderer)

	// 4. HTTP 层
	caseHandler := cases.NewCaseHandler(caseService)
	auditHandler := audit.NewAuditHandler(auditService)
	exportHandler := export.NewExportHandler(exportService)
	canvasHandler := canvas.NewCanvasHandler(canvasService, searchService)

	engine := routers.SetupRoutes(caseHandler, auditHandler, exportHandler, canvasHandler)

	// 5. 回调消费者
	appLogger := logger.NewDefaultLogger()
	callbackService := svcallback.NewCallbackService(caseRepo, redisClient, appLogger)
	callbackConsumer := consumer.NewCallbackConsumer(
		lmstfyClient,
		callbackService,
		&consumer.Config{
			QueueName:    cfg.Lmstfy.CallbackQueue,
			Timeout:      3,  // 拉取消息超时 3 秒
			TTR:          30, // 消息处理超时 30 秒
			PollInterval: 100 * time.Millisecond,
		},
		appLogger,
	)

	return &App{
		Engine:           engine,
		CallbackConsumer: callbackConsumer,
	}, cleanup, nil
}

// newRenderer 按配置选择幻灯片渲染器
func newRenderer(format string) (svexport.DeckRenderer, error) {
	switch format {
	case "", "json":
		return svexport.NewJSONRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}
