package cache

import (
	"context"

	"ai-kitchen/internal/pkg/common"
)

// 快取鍵前綴：單一共用儲存區，以前綴劃分命名空間
const (
	recipePrefix = "recipe_"
	imagePrefix  = "image_"
)

// RecipeKey 產生食譜結果的快取鍵
func RecipeKey(dishName string) string {
	return recipePrefix + common.NormalizeName(dishName)
}

// ImageKey 產生圖片結果的快取鍵
func ImageKey(dishName string) string {
	return imagePrefix + common.NormalizeName(dishName)
}

// Store 定義快取儲存介面
// Get 對不存在與已過期的鍵回傳相同的未命中結果，呼叫端無從區分
type Store interface {
	// Get 獲取快取值；第二個回傳值表示是否命中
	Get(ctx context.Context, key string) (string, bool)

	// Set 設置快取值，無條件覆寫並重置存活時間
	Set(ctx context.Context, key, value string)

	// Stats 獲取快取統計信息
	Stats() map[string]interface{}

	// Close 關閉快取儲存
	Close() error
}
