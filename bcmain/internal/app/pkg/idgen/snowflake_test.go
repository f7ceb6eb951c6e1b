package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeIDGenerator_Unique(t *testing.T) {
	g := NewSnowflakeIDGenerator(1)

	seen := make(map[int64]struct{}, 2000)
	for i := 0; i < 2000; i++ {
		id := g.NextID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id: %d", id)
		seen[id] = struct{}{}
	}
}

func TestSnowflakeIDGenerator_MachineIDEmbedded(t *testing.T) {
	g := NewSnowflakeIDGenerator(42)

	id := g.NextID()
	// ID 结构: 时间戳*100000 + 机器ID*1000 + 序列号
	assert.Equal(t, int64(42), id/1000%100)
}

func TestSnowflakeIDGenerator_InvalidMachineIDFallsBack(t *testing.T) {
	g := NewSnowflakeIDGenerator(500)

	id := g.NextID()
	assert.Equal(t, int64(0), id/1000%100)
}

func TestGenerateID_Monotonic(t *testing.T) {
	prev := GenerateID()
	for i := 0; i < 100; i++ {
		next := GenerateID()
		assert.Greater(t, next, prev)
		prev = next
	}
}
