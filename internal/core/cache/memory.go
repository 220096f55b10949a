package cache

import (
	"context"
	"sync"
	"time"

	"ai-kitchen/internal/pkg/common"

	"go.uber.org/zap"
)

// MemoryStore 行程內快取
// 過期僅在 Get 時惰性檢查，不啟動背景清理協程；
// 過期條目視同不存在，留在儲存區直到被覆寫或容量清理
type MemoryStore struct {
	mu      sync.RWMutex
	store   map[string]cacheEntry
	ttl     time.Duration
	maxSize int
	stats   cacheStats
	nowFn   func() time.Time
}

// cacheEntry 緩存條目，插入後不再部分更新，只會整個覆寫
type cacheEntry struct {
	value      string
	insertedAt time.Time
	lastAccess time.Time
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewMemoryStore 創建行程內快取
func NewMemoryStore(ttl time.Duration, maxSize int) *MemoryStore {
	m := &MemoryStore{
		store:   make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
		nowFn:   time.Now,
	}

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", maxSize),
		zap.Duration("存活時間", ttl),
	)

	return m
}

// Get 獲取快取值；不存在與已過期一律視為未命中
func (m *MemoryStore) Get(ctx context.Context, key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", false
	}

	// age >= TTL 視同不存在，條目留在原地
	if m.nowFn().Sub(entry.insertedAt) >= m.ttl {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", false
	}

	entry.lastAccess = m.nowFn()
	m.store[key] = entry
	m.stats.hits++
	common.LogCacheHit("memory", key)
	return entry.value, true
}

// Set 設置快取值，覆寫並重置存活時間
func (m *MemoryStore) Set(ctx context.Context, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// 容量已滿時先清過期條目，仍滿則淘汰最久未使用的
	if _, exists := m.store[key]; !exists && len(m.store) >= m.maxSize {
		evicted := m.dropExpired()
		if evicted > 0 {
			common.LogInfo("快取清理執行", zap.Int("清理數量", evicted))
		}
		if len(m.store) >= m.maxSize {
			m.evictLRU()
		}
	}

	now := m.nowFn()
	m.store[key] = cacheEntry{
		value:      value,
		insertedAt: now,
		lastAccess: now,
	}

	common.LogInfo("快取已儲存", zap.String("鍵", key))
}

// dropExpired 移除已過期的條目，回傳移除數量
func (m *MemoryStore) dropExpired() int {
	now := m.nowFn()
	count := 0
	for key, entry := range m.store {
		if now.Sub(entry.insertedAt) >= m.ttl {
			delete(m.store, key)
			m.stats.evictions++
			count++
		}
	}
	return count
}

// evictLRU 淘汰最久未訪問的條目
func (m *MemoryStore) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time

	for key, entry := range m.store {
		if oldestKey == "" || entry.lastAccess.Before(oldestAccess) {
			oldestKey = key
			oldestAccess = entry.lastAccess
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)", zap.String("鍵", oldestKey))
	}
}

// Stats 獲取緩存統計信息
func (m *MemoryStore) Stats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"backend":   "memory",
		"size":      len(m.store),
		"max_size":  m.maxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉快取儲存
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
