package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"bcp/bcsync/internal/business"
	"bcp/bcsync/pkg/config"
	"bcp/bcsync/pkg/infra/mysql"
	"bcp/bcsync/pkg/infra/redis"
	"bcp/bcsync/pkg/lmstfy"
	"bcp/common/auditor"
	"bcp/common/entity"
	"bcp/common/model"
)

var (
	configPath   = flag.String("config", "./config/worker.yaml", "配置文件路径")
	testcasePath = flag.String("testcase", "./tools/fasttest/testcase/audit.json", "测试用例路径")
	skipInfra    = flag.Bool("skip-infra", false, "跳过基础设施（仅运行审计引擎）")
)

// TestCase 测试用例结构
type TestCase struct {
	CaseID      int64                  `json:"case_id"`
	ProjectName string                 `json:"project_name"`
	Case        model.BusinessCaseData `json:"case"`
}

func main() {
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("  FastTest - BCSYNC Worker 快速测试工具")
	fmt.Println("========================================")

	// 1. 加载配置
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Config loaded: %s\n", cfg.App.Name)

	// 2. 加载测试用例
	testCases, err := loadTestCases(*testcasePath)
	if err != nil {
		fmt.Printf("❌ Failed to load test cases: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Loaded %d test cases from %s\n", len(testCases), *testcasePath)

	// 3. 初始化依赖（根据 skip-infra 参数决定）
	var auditService *business.AuditService
	var caseDAO *mysql.CaseDAO
	if *skipInfra {
		fmt.Println("⚠️  Skip-infra mode: lmstfy/Redis/MySQL operations disabled")
	} else {
		// 完整模式：初始化 lmstfy、Redis、MySQL
		lmstfyClient, err := lmstfy.NewClient(cfg.Lmstfy.Host, cfg.Lmstfy.Port, cfg.Lmstfy.Namespace, cfg.Lmstfy.Token)
		if err != nil {
			fmt.Printf("❌ Failed to create lmstfy client: %v\n", err)
			os.Exit(1)
		}

		notifier, err := redis.NewPubSub(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			fmt.Printf("❌ Failed to create Redis PubSub: %v\n", err)
			os.Exit(1)
		}
		defer notifier.Close()

		caseDAO, err = mysql.NewCaseDAO(cfg.MySQL.DSN)
		if err != nil {
			fmt.Printf("❌ Failed to create CaseDAO: %v\n", err)
			os.Exit(1)
		}
		defer caseDAO.Close()

		var callbackQueue string
		if len(cfg.Workers) > 0 {
			callbackQueue = cfg.Workers[0].CallbackQueue
		}

		auditService = business.NewAuditService(lmstfyClient, notifier, callbackQueue)
		fmt.Println("✅ lmstfy, Redis and MySQL initialized")
	}

	// 4. 执行测试用例
	fmt.Println("\n========================================")
	fmt.Println("  Running Test Cases")
	fmt.Println("========================================")

	successCount := 0
	failureCount := 0

	for i, tc := range testCases {
		fmt.Printf("\n[Test %d/%d] CaseID=%d, ProjectName=%s\n", i+1, len(testCases), tc.CaseID, tc.ProjectName)
		fmt.Println("----------------------------------------")

		startTime := time.Now()

		if *skipInfra {
			// Skip-infra 模式：只运行审计引擎
			err = runTestCaseSkipInfra(tc)
		} else {
			// 完整模式：审计 + 通知 + 回调 + 落库
			err = runTestCaseFull(auditService, caseDAO, tc)
		}

		duration := time.Since(startTime)

		if err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
			fmt.Printf("⏱️  Duration: %v\n", duration)
			failureCount++
		} else {
			fmt.Printf("✅ PASSED\n")
			fmt.Printf("⏱️  Duration: %v\n", duration)
			successCount++
		}
	}

	// 5. 输出测试汇总
	fmt.Println("\n========================================")
	fmt.Println("  Test Summary")
	fmt.Println("========================================")
	fmt.Printf("Total: %d\n", len(testCases))
	fmt.Printf("Passed: %d ✅\n", successCount)
	fmt.Printf("Failed: %d ❌\n", failureCount)

	if failureCount > 0 {
		os.Exit(1)
	}
}

// loadTestCases 从 JSON 文件加载测试用例
func loadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read testcase file: %w", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal testcase: %w", err)
	}

	return testCases, nil
}

// runTestCaseSkipInfra 运行测试用例（跳过基础设施，仅运行审计引擎）
func runTestCaseSkipInfra(tc TestCase) error {
	engine := auditor.New()
	result := engine.Audit(&tc.Case)

	printAuditResult(result)
	return nil
}

// runTestCaseFull 运行测试用例（完整模式：审计 + 通知 + 回调 + 落库）
func runTestCaseFull(auditService *business.AuditService, caseDAO *mysql.CaseDAO, tc TestCase) error {
	ctx := context.Background()

	input := &business.AuditInput{
		RequestID:   fmt.Sprintf("fasttest-%d", time.Now().UnixNano()),
		CaseID:      tc.CaseID,
		ProjectName: tc.ProjectName,
		Case:        tc.Case,
	}

	result, err := auditService.ExecuteAudit(ctx, input)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	printAuditResult(result)
	fmt.Println("  ✓ Redis notification sent")
	fmt.Println("  ✓ Callback published")

	// 直接落库（不经过 bcmain 的回调链路）
	if err := caseDAO.UpdateAuditResult(ctx, tc.CaseID, result, entity.CaseStatusAudited); err != nil {
		return fmt.Errorf("update audit result failed: %w", err)
	}
	fmt.Println("  ✓ Database updated")

	return nil
}

// printAuditResult 打印审计结果
func printAuditResult(result *model.AuditResult) {
	fmt.Printf("  Findings: %d, RiskScore: %.3f\n", len(result.Findings), result.RiskScore)
	for _, f := range result.Findings {
		fmt.Printf("    - [%s/%s] year=%d field=%s: %s\n", f.Type, f.Severity, f.Year, f.Field, f.Message)
	}
	for _, s := range result.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}
