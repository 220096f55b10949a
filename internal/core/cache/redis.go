package cache

import (
	"context"
	"fmt"
	"time"

	"ai-kitchen/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore Redis 快取後端
// 過期交由 Redis 的鍵 TTL 處理，語意與 MemoryStore 一致
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 創建 Redis 快取儲存
func NewRedisStore(addr string, ttl time.Duration) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", addr),
		zap.Duration("存活時間", ttl),
	)

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get 獲取快取值
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			common.LogWarn("Redis 讀取失敗", zap.String("鍵", key), zap.Error(err))
		}
		common.LogCacheMiss("redis", key)
		return "", false
	}
	common.LogCacheHit("redis", key)
	return val, true
}

// Set 設置快取值
func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		// 快取寫入失敗不影響請求結果
		common.LogWarn("Redis 寫入失敗", zap.String("鍵", key), zap.Error(err))
		return
	}
	common.LogInfo("快取已儲存", zap.String("鍵", key))
}

// Stats 獲取快取統計信息
func (s *RedisStore) Stats() map[string]interface{} {
	return map[string]interface{}{
		"backend": "redis",
		"ttl":     s.ttl.String(),
	}
}

// Close 關閉快取儲存
func (s *RedisStore) Close() error {
	return s.client.Close()
}
