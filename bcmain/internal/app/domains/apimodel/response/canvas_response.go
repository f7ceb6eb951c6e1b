package response

import "bcp/bcmain/internal/app/domains/entity/etcanvas"

// CanvasBlockContent 单个画布块生成结果（DTO）
// Error 仅在 generate-all 的部分失败场景出现（单块失败不中断整体生成）
type CanvasBlockContent struct {
	BlockID       string `json:"block_id"`
	BlockName     string `json:"block_name,omitempty"`
	PitchStep     int    `json:"pitch_step,omitempty"`
	Content       string `json:"content"`
	IsPlaceholder bool   `json:"is_placeholder"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CanvasResponse 全量画布生成结果（DTO）
type CanvasResponse struct {
	CanvasBlocks     map[string]*CanvasBlockContent    `json:"canvas_blocks"`
	BlockDefinitions map[string]etcanvas.BuildingBlock `json:"block_definitions"`
}

// BuildingBlocksResponse 画布块定义目录响应（DTO）
type BuildingBlocksResponse struct {
	BuildingBlocks map[string]etcanvas.BuildingBlock `json:"building_blocks"`
	PitchFramework string                            `json:"pitch_framework"`
}

// EnhanceContentResponse 内容增强响应（DTO）
type EnhanceContentResponse struct {
	EnhancementType string `json:"enhancement_type"`
	OriginalContent string `json:"original_content"`
	EnhancedContent string `json:"enhanced_content"`
}

// SuggestResponse 画布块建议响应（DTO）
type SuggestResponse struct {
	BlockID            string `json:"block_id"`
	SuggestionsContent string `json:"suggestions_content"`
}

// FeedbackResponse 反馈修订响应（DTO）
type FeedbackResponse struct {
	BlockID         string `json:"block_id"`
	OriginalContent string `json:"original_content"`
	UserFeedback    string `json:"user_feedback"`
	RevisedContent  string `json:"revised_content"`
}

// SearchResult 知识库单条检索结果（DTO）
type SearchResult struct {
	ID      string  `json:"id"`
	Score   float32 `json:"score"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Source  string  `json:"source,omitempty"`
}

// SearchResponse 知识库搜索响应（DTO）
type SearchResponse struct {
	Query       string          `json:"query"`
	Results     []*SearchResult `json:"results"`
	ResultCount int             `json:"result_count"`
	Context     string          `json:"context"`
}

// KnowledgeBaseStatus 知识库配置状态（DTO）
type KnowledgeBaseStatus struct {
	Configured bool   `json:"configured"`
	Collection string `json:"collection,omitempty"`
}

// CanvasAIStatus 画布 AI 服务状态（DTO）
type CanvasAIStatus struct {
	Available bool   `json:"available"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
}

// AIServiceStatusResponse AI 能力总体状态响应（DTO）
type AIServiceStatusResponse struct {
	CanvasAIService      CanvasAIStatus      `json:"canvas_ai_service"`
	KnowledgeBaseService KnowledgeBaseStatus `json:"knowledge_base_service"`
}
