package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClockedStore(ttl time.Duration, maxSize int) (*MemoryStore, *time.Time) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(ttl, maxSize)
	m.nowFn = func() time.Time { return now }
	return m, &now
}

func TestMemoryStoreRoundtrip(t *testing.T) {
	m, _ := newClockedStore(time.Hour, 10)
	ctx := context.Background()

	m.Set(ctx, "recipe_pad thai", `{"name":"Pad Thai"}`)

	value, ok := m.Get(ctx, "recipe_pad thai")
	require.True(t, ok)
	assert.Equal(t, `{"name":"Pad Thai"}`, value)
}

func TestMemoryStoreMiss(t *testing.T) {
	m, _ := newClockedStore(time.Hour, 10)

	value, ok := m.Get(context.Background(), "recipe_unknown")
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestMemoryStoreTTLExpiry(t *testing.T) {
	m, now := newClockedStore(time.Hour, 10)
	ctx := context.Background()

	m.Set(ctx, "recipe_curry", "v1")

	// 剛好達到 TTL 即視為過期
	*now = now.Add(time.Hour)
	value, ok := m.Get(ctx, "recipe_curry")
	assert.False(t, ok)
	assert.Empty(t, value)

	// 過期與不存在的未命中外觀一致
	missValue, missOK := m.Get(ctx, "recipe_never_set")
	assert.Equal(t, missOK, ok)
	assert.Equal(t, missValue, value)
}

func TestMemoryStoreExpiredEntryLeftInPlace(t *testing.T) {
	m, now := newClockedStore(time.Hour, 10)
	ctx := context.Background()

	m.Set(ctx, "recipe_curry", "v1")
	*now = now.Add(2 * time.Hour)

	_, ok := m.Get(ctx, "recipe_curry")
	require.False(t, ok)

	// 惰性檢查不刪除條目
	m.mu.RLock()
	_, exists := m.store["recipe_curry"]
	m.mu.RUnlock()
	assert.True(t, exists)
}

func TestMemoryStoreOverwriteResetsTTL(t *testing.T) {
	m, now := newClockedStore(time.Hour, 10)
	ctx := context.Background()

	m.Set(ctx, "recipe_curry", "v1")
	*now = now.Add(50 * time.Minute)
	m.Set(ctx, "recipe_curry", "v2")
	*now = now.Add(50 * time.Minute)

	value, ok := m.Get(ctx, "recipe_curry")
	require.True(t, ok)
	assert.Equal(t, "v2", value)
}

func TestMemoryStoreCapacityEviction(t *testing.T) {
	m, now := newClockedStore(time.Hour, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		m.Set(ctx, fmt.Sprintf("key-%d", i), "v")
		*now = now.Add(time.Minute)
	}

	// key-0 最久未訪問，容量滿時被淘汰
	m.Set(ctx, "key-3", "v")

	_, ok := m.Get(ctx, "key-0")
	assert.False(t, ok)
	_, ok = m.Get(ctx, "key-3")
	assert.True(t, ok)
}

func TestMemoryStoreCapacityDropsExpiredFirst(t *testing.T) {
	m, now := newClockedStore(time.Hour, 2)
	ctx := context.Background()

	m.Set(ctx, "old-1", "v")
	m.Set(ctx, "old-2", "v")
	*now = now.Add(2 * time.Hour)

	// 兩個舊條目皆已過期，插入時全數清除而非走 LRU
	m.Set(ctx, "fresh", "v")

	m.mu.RLock()
	size := len(m.store)
	m.mu.RUnlock()
	assert.Equal(t, 1, size)

	_, ok := m.Get(ctx, "fresh")
	assert.True(t, ok)
}

func TestMemoryStoreStats(t *testing.T) {
	m, _ := newClockedStore(time.Hour, 10)
	ctx := context.Background()

	m.Set(ctx, "k", "v")
	m.Get(ctx, "k")
	m.Get(ctx, "missing")

	stats := m.Stats()
	assert.Equal(t, "memory", stats["backend"])
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
	assert.InDelta(t, 0.5, stats["hit_ratio"], 0.001)
}

func TestCacheKeys(t *testing.T) {
	assert.Equal(t, "recipe_pad thai", RecipeKey("  Pad Thai "))
	assert.Equal(t, "image_pad thai", ImageKey("Pad Thai"))
}
