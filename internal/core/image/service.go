package image

import (
	"context"
	"fmt"
	"strings"

	"ai-kitchen/internal/core/cache"
	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"

	"go.uber.org/zap"
)

// promptTemplate 固定的食物攝影提示詞模板，%s 為經過編碼的菜名
const promptTemplate = "professional%%20food%%20photography%%20plated%%20%s%%20dish%%20on%%20white%%20plate%%20garnished%%20restaurant%%20style%%20high%%20resolution%%20appetizing%%20detailed%%204k%%20culinary%%20art"

// Service 菜色圖片解析服務
// 不發出網路請求：優先採用來源提供的縮圖，否則合成決定性的提示詞 URL
type Service struct {
	store   cache.Store
	baseURL string
	width   int
	height  int
}

// NewService 創建圖片解析服務
func NewService(store cache.Store, cfg *config.ImageConfig) *Service {
	return &Service{
		store:   store,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

// Resolve 解析菜色圖片 URL；mealThumb 為來源已提供的縮圖（可為空）
// 永不失敗：合成 URL 在結構上必定合法
func (s *Service) Resolve(ctx context.Context, dishName, mealThumb string) string {
	key := cache.ImageKey(dishName)
	if cached, ok := s.store.Get(ctx, key); ok {
		return cached
	}

	// 來源縮圖最快也最可靠，直接採用
	if thumb := strings.TrimSpace(mealThumb); thumb != "" {
		s.store.Set(ctx, key, thumb)
		return thumb
	}

	formatted := strings.ReplaceAll(dishName, " ", "%20")
	prompt := fmt.Sprintf(promptTemplate, formatted)
	imageURL := fmt.Sprintf("%s/prompt/%s?width=%d&height=%d&nologo=true&enhance=true",
		s.baseURL, prompt, s.width, s.height)

	common.LogDebug("合成菜色圖片 URL",
		zap.String("菜名", dishName),
		zap.String("image_url", imageURL),
	)

	s.store.Set(ctx, key, imageURL)
	return imageURL
}
