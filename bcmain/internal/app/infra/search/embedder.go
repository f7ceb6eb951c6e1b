package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// VectorSize text-embedding-3-small 向量维度
const VectorSize = 1536

// Embedder 文本向量化客户端（OpenAI Embeddings）
type Embedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
}

// NewEmbedder 创建 Embedder
func NewEmbedder(apiKey, model string) (*Embedder, error) {
	if apiKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	embeddingModel := openai.SmallEmbedding3
	if model != "" {
		embeddingModel = openai.EmbeddingModel(model)
	}

	return &Embedder{
		client: openai.NewClient(apiKey),
		model:  embeddingModel,
	}, nil
}

// Embed 生成单条文本的向量
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("creating embeddings: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, errors.New("no embeddings returned")
	}

	return resp.Data[0].Embedding, nil
}
