package image

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ai-kitchen/internal/core/cache"
	"ai-kitchen/internal/infrastructure/config"
)

func newTestService(t *testing.T) (*Service, cache.Store) {
	t.Helper()
	store := cache.NewMemoryStore(time.Hour, 100)
	cfg := &config.ImageConfig{
		BaseURL: "https://image.pollinations.ai",
		Width:   800,
		Height:  600,
	}
	return NewService(store, cfg), store
}

func TestResolvePrefersMealThumb(t *testing.T) {
	s, _ := newTestService(t)

	got := s.Resolve(context.Background(), "Pad Thai", "https://example.com/thumb.jpg")
	assert.Equal(t, "https://example.com/thumb.jpg", got)
}

func TestResolveSynthesizedURL(t *testing.T) {
	s, _ := newTestService(t)

	got := s.Resolve(context.Background(), "Pad Thai", "")
	assert.Equal(t,
		"https://image.pollinations.ai/prompt/professional%20food%20photography%20plated%20Pad%20Thai%20dish%20on%20white%20plate%20garnished%20restaurant%20style%20high%20resolution%20appetizing%20detailed%204k%20culinary%20art?width=800&height=600&nologo=true&enhance=true",
		got)
}

func TestResolveDeterministic(t *testing.T) {
	s, _ := newTestService(t)

	first := s.Resolve(context.Background(), "Biryani", "")
	second := s.Resolve(context.Background(), "Biryani", "")
	assert.Equal(t, first, second)
}

func TestResolveCachesResult(t *testing.T) {
	s, store := newTestService(t)
	ctx := context.Background()

	url := s.Resolve(ctx, "Biryani", "")

	cached, ok := store.Get(ctx, cache.ImageKey("Biryani"))
	assert.True(t, ok)
	assert.Equal(t, url, cached)
}

func TestResolveCacheHitShortCircuits(t *testing.T) {
	s, store := newTestService(t)
	ctx := context.Background()

	store.Set(ctx, cache.ImageKey("Biryani"), "https://example.com/cached.jpg")

	got := s.Resolve(ctx, "Biryani", "https://example.com/other.jpg")
	assert.Equal(t, "https://example.com/cached.jpg", got)
}
