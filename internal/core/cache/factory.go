package cache

import (
	"context"
	"fmt"

	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"
)

// NewStore 依設定建立快取儲存
// 行程啟動時建立一次，由外部注入給各服務，不使用全域狀態
func NewStore(cfg *config.CacheConfig) (Store, error) {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return noopStore{}, nil
	}

	switch cfg.Backend {
	case "memory":
		return NewMemoryStore(cfg.TTL, cfg.MaxSize), nil
	case "redis":
		return NewRedisStore(cfg.RedisAddr, cfg.TTL)
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// noopStore 快取停用時的空實作，所有查詢皆未命中
type noopStore struct{}

func (noopStore) Get(ctx context.Context, key string) (string, bool) { return "", false }
func (noopStore) Set(ctx context.Context, key, value string)         {}
func (noopStore) Stats() map[string]interface{} {
	return map[string]interface{}{"backend": "disabled"}
}
func (noopStore) Close() error { return nil }
