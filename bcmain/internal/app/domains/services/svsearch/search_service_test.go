package svsearch

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bcp/bcmain/internal/app/domains/entity/etcanvas"
	"bcp/bcmain/internal/app/pkg/errorx"
)

func TestSearch_NotConfigured(t *testing.T) {
	service := NewSearchService(nil, nil, "")

	_, err := service.Search(context.Background(), "market size", 5)

	assert.ErrorIs(t, err, errorx.ErrKBNotConfigured)
}

func TestContextForBlock_NotConfiguredReturnsEmpty(t *testing.T) {
	service := NewSearchService(nil, nil, "")

	// 未配置知识库时静默返回空串，画布生成照常进行
	assert.Empty(t, service.ContextForBlock(context.Background(), "market_opportunity", "Harbor Logistics"))
}

func TestStatus(t *testing.T) {
	service := NewSearchService(nil, nil, "business_cases")

	status := service.Status()

	assert.False(t, status.Configured)
	assert.Equal(t, "business_cases", status.Collection)
}

func TestBlockQueriesCoverAllCanvasBlocks(t *testing.T) {
	// 每个画布块都有对应的固定检索词
	for _, blockID := range etcanvas.BlockIDs() {
		_, ok := blockQueries[blockID]
		assert.True(t, ok, "missing knowledge base query for block %s", blockID)
	}
	assert.Len(t, blockQueries, len(etcanvas.BlockIDs()))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 500))
	assert.Equal(t, strings.Repeat("a", 500), truncateRunes(strings.Repeat("a", 600), 500))

	// 多字节字符按字符数截断，不产生残缺编码
	assert.Equal(t, "市场规", truncateRunes("市场规模分析", 3))
	assert.Equal(t, "", truncateRunes("", 10))
}
