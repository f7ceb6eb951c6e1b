package llm

import (
	"context"
	"fmt"
)

// ChatClient 对话式 LLM 客户端抽象
// 画布服务只依赖这一接口，不关心具体厂商
type ChatClient interface {
	// Chat 发送一轮对话（system + user），返回模型文本
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Close() error
}

// 支持的 provider 常量
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// New 根据 provider 创建客户端
// provider 为空返回 (nil, nil)，调用方按"未配置"降级处理
func New(ctx context.Context, provider, apiKey, model string) (ChatClient, error) {
	switch provider {
	case "":
		return nil, nil
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model)
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
