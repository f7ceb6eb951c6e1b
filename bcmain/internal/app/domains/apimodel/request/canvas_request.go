package request

// GenerateBlockRequest 生成单个画布块内容请求
type GenerateBlockRequest struct {
	BlockID          string                 `json:"block_id" binding:"required" example:"problem_statement"`
	Context          map[string]interface{} `json:"context"`
	UseKnowledgeBase *bool                  `json:"use_knowledge_base"` // 缺省 true
}

// GenerateCanvasRequest 生成全部画布块请求
type GenerateCanvasRequest struct {
	Context map[string]interface{} `json:"context"`
}

// EnhanceContentRequest 内容增强请求
type EnhanceContentRequest struct {
	Content         string `json:"content" binding:"required"`
	EnhancementType string `json:"enhancement_type" example:"clarity"`
}

// SuggestRequest 画布块建议请求
type SuggestRequest struct {
	BlockID        string                 `json:"block_id" binding:"required" example:"problem_statement"`
	CurrentContent string                 `json:"current_content"`
	Context        map[string]interface{} `json:"context"`
}

// FeedbackRequest 根据用户反馈修订内容请求
type FeedbackRequest struct {
	BlockID        string                 `json:"block_id" binding:"required" example:"problem_statement"`
	CurrentContent string                 `json:"current_content"`
	Feedback       string                 `json:"feedback" binding:"required"`
	Context        map[string]interface{} `json:"context"`
}

// SearchKnowledgeBaseRequest 知识库搜索请求
type SearchKnowledgeBaseRequest struct {
	Query    string `json:"query" binding:"required" example:"market size TAM"`
	PageSize int    `json:"page_size" example:"5"` // 缺省 5
}

// KnowledgeBaseEnabled use_knowledge_base 缺省开启
func (r *GenerateBlockRequest) KnowledgeBaseEnabled() bool {
	return r.UseKnowledgeBase == nil || *r.UseKnowledgeBase
}
