package svcanvas

import (
	"context"
	"fmt"
	"log"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/domains/entity/etcanvas"
	"bcp/bcmain/internal/app/domains/services/svsearch"
	"bcp/bcmain/internal/app/infra/llm"
	"bcp/bcmain/internal/app/pkg/errorx"
)

// PlaceholderMessage 未配置 AI 时生成接口的提示信息
const PlaceholderMessage = "AI service not configured. Using placeholder content."

// CanvasService 画布 AI 服务
// chatClient 为 nil 表示未配置 AI 能力：
// 生成接口降级为占位内容，增强/建议/反馈接口返回未配置错误
type CanvasService struct {
	chatClient    llm.ChatClient
	searchService *svsearch.SearchService
	provider      string
	model         string
}

// NewCanvasService 创建画布服务实例
func NewCanvasService(chatClient llm.ChatClient, searchService *svsearch.SearchService, provider, model string) *CanvasService {
	return &CanvasService{
		chatClient:    chatClient,
		searchService: searchService,
		provider:      provider,
		model:         model,
	}
}

// Available AI 能力是否已配置
func (s *CanvasService) Available() bool {
	return s.chatClient != nil
}

// GenerateBlock 生成单个画布块内容
// 1. 校验画布块存在
// 2. 可选：检索知识库上下文
// 3. 未配置 AI 时降级为占位内容；否则调用 LLM 生成
func (s *CanvasService) GenerateBlock(ctx context.Context, blockID string, caseContext map[string]interface{}, useKnowledgeBase bool) (*response.CanvasBlockContent, error) {
	block, ok := etcanvas.BlockByID(blockID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", errorx.ErrUnknownCanvasBlock, blockID)
	}

	knowledgeContext := ""
	if useKnowledgeBase {
		knowledgeContext = s.searchService.ContextForBlock(ctx, blockID, contextString(caseContext, "project_name", ""))
	}

	if !s.Available() {
		return &response.CanvasBlockContent{
			BlockID:       blockID,
			BlockName:     block.Name,
			PitchStep:     block.PitchStep,
			Content:       placeholderContent(block, caseContext),
			IsPlaceholder: true,
			Message:       PlaceholderMessage,
		}, nil
	}

	prompt := buildGenerationPrompt(block, caseContext, knowledgeContext)
	content, err := s.chatClient.Chat(ctx, systemGenerate, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate canvas content failed: %w", err)
	}

	return &response.CanvasBlockContent{
		BlockID:       blockID,
		BlockName:     block.Name,
		PitchStep:     block.PitchStep,
		Content:       content,
		IsPlaceholder: false,
	}, nil
}

// GenerateFullCanvas 按固定顺序生成全部画布块
// 单块失败不中断整体生成，失败信息随对应块返回
func (s *CanvasService) GenerateFullCanvas(ctx context.Context, caseContext map[string]interface{}) (*response.CanvasResponse, error) {
	blocks := make(map[string]*response.CanvasBlockContent, len(etcanvas.BlockIDs()))
	for _, blockID := range etcanvas.BlockIDs() {
		content, err := s.GenerateBlock(ctx, blockID, caseContext, false)
		if err != nil {
			log.Printf("[WARN] generate canvas block failed: block_id=%s, error=%v", blockID, err)
			blocks[blockID] = &response.CanvasBlockContent{
				BlockID: blockID,
				Error:   err.Error(),
			}
			continue
		}
		blocks[blockID] = content
	}

	return &response.CanvasResponse{
		CanvasBlocks:     blocks,
		BlockDefinitions: etcanvas.Blocks(),
	}, nil
}

// EnhanceContent 增强既有内容（clarity/impact/concise/data_driven/action_oriented）
func (s *CanvasService) EnhanceContent(ctx context.Context, content, enhancementType string) (*response.EnhanceContentResponse, error) {
	if !s.Available() {
		return nil, errorx.ErrLLMNotConfigured
	}
	if enhancementType == "" {
		enhancementType = EnhancementTypeDefault
	}

	prompt := buildEnhancePrompt(content, enhancementType)
	enhanced, err := s.chatClient.Chat(ctx, systemEnhance, prompt)
	if err != nil {
		return nil, fmt.Errorf("enhance content failed: %w", err)
	}

	return &response.EnhanceContentResponse{
		EnhancementType: enhancementType,
		OriginalContent: content,
		EnhancedContent: enhanced,
	}, nil
}

// GenerateSuggestions 生成改进建议、行业数据与质询问题
func (s *CanvasService) GenerateSuggestions(ctx context.Context, blockID, currentContent string, caseContext map[string]interface{}) (*response.SuggestResponse, error) {
	if !s.Available() {
		return nil, errorx.ErrLLMNotConfigured
	}

	prompt := buildSuggestionsPrompt(blockID, currentContent, caseContext)
	suggestions, err := s.chatClient.Chat(ctx, systemSuggest, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate suggestions failed: %w", err)
	}

	return &response.SuggestResponse{
		BlockID:            blockID,
		SuggestionsContent: suggestions,
	}, nil
}

// ProcessFeedback 根据用户反馈修订内容
func (s *CanvasService) ProcessFeedback(ctx context.Context, blockID, currentContent, userFeedback string, caseContext map[string]interface{}) (*response.FeedbackResponse, error) {
	if !s.Available() {
		return nil, errorx.ErrLLMNotConfigured
	}

	prompt := buildFeedbackPrompt(blockID, currentContent, userFeedback, caseContext)
	revised, err := s.chatClient.Chat(ctx, systemFeedback, prompt)
	if err != nil {
		return nil, fmt.Errorf("process feedback failed: %w", err)
	}

	return &response.FeedbackResponse{
		BlockID:         blockID,
		OriginalContent: currentContent,
		UserFeedback:    userFeedback,
		RevisedContent:  revised,
	}, nil
}

// BuildingBlocks 画布块定义目录与七步法框架文本
func (s *CanvasService) BuildingBlocks() *response.BuildingBlocksResponse {
	return &response.BuildingBlocksResponse{
		BuildingBlocks: etcanvas.Blocks(),
		PitchFramework: etcanvas.SevenStepPitchFramework,
	}
}

// Status 画布 AI 服务状态
func (s *CanvasService) Status() response.CanvasAIStatus {
	status := response.CanvasAIStatus{Available: s.Available()}
	if status.Available {
		status.Provider = s.provider
		status.Model = s.model
	}
	return status
}
