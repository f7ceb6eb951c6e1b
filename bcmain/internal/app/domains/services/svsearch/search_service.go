package svsearch

import (
	"context"
	"log"

	"bcp/bcmain/internal/app/domains/apimodel/response"
	"bcp/bcmain/internal/app/infra/search"
	"bcp/bcmain/internal/app/pkg/errorx"
)

// DefaultPageSize 搜索结果默认条数
const DefaultPageSize = 5

// blockContextPageSize 画布块上下文检索条数
const blockContextPageSize = 3

// contextSnippetLimit 每条结果拼入上下文的最大字符数
const contextSnippetLimit = 500

// blockQueries 画布块 ID → 知识库检索词
var blockQueries = map[string]string{
	"problem_statement":     "problem statement market pain points challenges",
	"solution_overview":     "solution approach methodology implementation",
	"value_proposition":     "value proposition benefits ROI advantages",
	"market_opportunity":    "market size TAM growth trends industry analysis",
	"financial_projections": "financial projections revenue forecasting metrics",
	"risk_analysis":         "risk assessment mitigation strategies challenges",
	"implementation_plan":   "implementation roadmap timeline milestones",
	"traction_validation":   "traction validation proof points success metrics",
	"team_resources":        "team capabilities resources requirements expertise",
	"call_to_action":        "investment ask funding requirements next steps",
	"executive_summary":     "executive summary overview highlights",
	"conclusion":            "conclusion recommendations outcomes",
}

// SearchService 知识库搜索服务（向量检索）
type SearchService struct {
	store      *search.VectorStore
	embedder   *search.Embedder
	collection string
}

// NewSearchService 创建搜索服务实例
// store 或 embedder 为 nil 表示知识库未配置，相关接口返回未配置错误
func NewSearchService(store *search.VectorStore, embedder *search.Embedder, collection string) *SearchService {
	return &SearchService{
		store:      store,
		embedder:   embedder,
		collection: collection,
	}
}

// Configured 知识库是否已配置
func (s *SearchService) Configured() bool {
	return s.store != nil && s.embedder != nil
}

// Search 检索知识库
// 1. 查询文本向量化
// 2. 向量相似度检索
// 3. 汇总拼接检索上下文（每条截断 500 字符）
func (s *SearchService) Search(ctx context.Context, query string, pageSize int) (*response.SearchResponse, error) {
	if !s.Configured() {
		return nil, errorx.ErrKBNotConfigured
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	documents, err := s.store.Search(ctx, vector, pageSize)
	if err != nil {
		return nil, err
	}

	results := make([]*response.SearchResult, 0, len(documents))
	contextText := ""
	for _, doc := range documents {
		results = append(results, &response.SearchResult{
			ID:      doc.ID,
			Score:   doc.Score,
			Title:   doc.Title,
			Content: doc.Content,
			Source:  doc.Source,
		})
		if doc.Content != "" {
			if contextText != "" {
				contextText += "\n\n"
			}
			contextText += truncateRunes(doc.Content, contextSnippetLimit)
		}
	}

	return &response.SearchResponse{
		Query:       query,
		Results:     results,
		ResultCount: len(results),
		Context:     contextText,
	}, nil
}

// ContextForBlock 为画布块检索相关上下文
// 检索词 = 项目名 + 画布块固定检索词；未配置或检索失败时返回空串（生成降级继续）
func (s *SearchService) ContextForBlock(ctx context.Context, blockID, projectName string) string {
	if !s.Configured() {
		return ""
	}

	query, ok := blockQueries[blockID]
	if !ok {
		query = blockID
	}
	if projectName != "" {
		query = projectName + " " + query
	}

	result, err := s.Search(ctx, query, blockContextPageSize)
	if err != nil {
		log.Printf("[WARN] knowledge base context lookup failed: block_id=%s, error=%v", blockID, err)
		return ""
	}
	return result.Context
}

// Status 知识库配置状态
func (s *SearchService) Status() response.KnowledgeBaseStatus {
	return response.KnowledgeBaseStatus{
		Configured: s.Configured(),
		Collection: s.collection,
	}
}

// truncateRunes 按字符截断（不截断多字节字符）
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
