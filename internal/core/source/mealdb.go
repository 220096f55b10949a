package source

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-kitchen/internal/core/cache"
	"ai-kitchen/internal/core/image"
	"ai-kitchen/internal/core/nutrition"
	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	mealDBSourceTag = "themealdb"

	// maxIngredientSlots 回應固定提供 20 組 strIngredientN / strMeasureN 欄位
	maxIngredientSlots = 20

	defaultPrepTime = "20 mins"
	defaultCookTime = "30 mins"
)

// vegCategories / nonVegCategories 類別到飲食類型的固定對照
var (
	vegCategories    = []string{"vegetarian", "vegan", "dessert", "pasta", "side", "starter"}
	nonVegCategories = []string{"chicken", "beef", "pork", "lamb", "seafood", "goat"}
)

// mealDBResponse search.php 回應外殼；查無資料時 meals 為 null
type mealDBResponse struct {
	Meals []map[string]string `json:"meals"`
}

// MealDBAdapter 食譜資料庫查詢來源
// 超時刻意壓短：這條路要比生成式回退便宜得多，
// 網路錯誤與格式錯誤一律記錄後視為查無資料，不得中止整個請求
type MealDBAdapter struct {
	client     *resty.Client
	store      cache.Store
	aggregator *nutrition.Aggregator
	images     *image.Service
}

// NewMealDBAdapter 創建食譜資料庫查詢來源
func NewMealDBAdapter(cfg *config.MealDBConfig, store cache.Store, aggregator *nutrition.Aggregator, images *image.Service) *MealDBAdapter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &MealDBAdapter{
		client:     client,
		store:      store,
		aggregator: aggregator,
		images:     images,
	}
}

// Name 來源標籤
func (a *MealDBAdapter) Name() string {
	return mealDBSourceTag
}

// Fetch 以菜名查詢食譜資料庫
func (a *MealDBAdapter) Fetch(ctx context.Context, dishName string) (*common.RecipeRecord, Outcome, error) {
	// 先查快取
	cacheKey := cache.RecipeKey(dishName)
	if cached, ok := a.store.Get(ctx, cacheKey); ok {
		var record common.RecipeRecord
		if err := common.ParseJSON(cached, &record); err == nil {
			return &record, OutcomeFound, nil
		}
		// 快取內容損毀時當作未命中重新查詢
		common.LogWarn("快取內容解析失敗，重新查詢來源", zap.String("鍵", cacheKey))
	}

	start := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("s", dishName).
		Get("/search.php")
	common.LogUpstreamCall(mealDBSourceTag, time.Since(start), err)
	if err != nil {
		// 網路或超時失敗只記錄，讓協調器換下一個來源
		return nil, OutcomeNotFound, nil
	}
	if resp.StatusCode() != 200 {
		common.LogWarn("食譜資料庫回應異常狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("菜名", dishName),
		)
		return nil, OutcomeNotFound, nil
	}

	var parsed mealDBResponse
	if err := common.ParseJSONBytes(resp.Body(), &parsed); err != nil {
		common.LogWarn("食譜資料庫回應解析失敗",
			zap.Error(err),
			zap.String("回應片段", common.TruncateForLog(string(resp.Body()), 200)),
		)
		return nil, OutcomeNotFound, nil
	}
	if len(parsed.Meals) == 0 {
		return nil, OutcomeNotFound, nil
	}

	meal := parsed.Meals[0]
	record := a.buildRecord(ctx, meal)

	// 快取完整記錄，鍵由使用者輸入的菜名正規化而來
	if data, err := common.ToJSON(record); err == nil {
		a.store.Set(ctx, cacheKey, data)
	}

	return record, OutcomeFound, nil
}

// buildRecord 將原始欄位映射組裝為完整食譜記錄
func (a *MealDBAdapter) buildRecord(ctx context.Context, meal map[string]string) *common.RecipeRecord {
	name := strings.TrimSpace(meal["strMeal"])

	// 依序掃描編號欄位，遇到第一個空位即停止
	var ingredients []common.Ingredient
	for i := 1; i <= maxIngredientSlots; i++ {
		ingName := strings.TrimSpace(meal[fmt.Sprintf("strIngredient%d", i)])
		if ingName == "" {
			break
		}
		measure := strings.TrimSpace(meal[fmt.Sprintf("strMeasure%d", i)])
		if measure == "" {
			measure = "to taste"
		}
		ingredients = append(ingredients, common.Ingredient{Name: ingName, Measure: measure})
	}

	// 營養計算與圖片解析互不依賴，平行執行後會合
	var (
		facts    common.NutritionFacts
		imageURL string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		facts = a.aggregator.Aggregate(gctx, ingredients, nutrition.DefaultServings)
		return nil
	})
	g.Go(func() error {
		imageURL = a.images.Resolve(gctx, name, meal["strMealThumb"])
		return nil
	})
	_ = g.Wait()

	return &common.RecipeRecord{
		ID:            fmt.Sprintf("%s-%s", mealDBSourceTag, common.Slugify(name)),
		Name:          name,
		Category:      meal["strCategory"],
		Area:          meal["strArea"],
		Instructions:  splitInstructions(meal["strInstructions"]),
		Ingredients:   ingredients,
		ImageURL:      imageURL,
		PrepTime:      defaultPrepTime,
		CookTime:      defaultCookTime,
		Servings:      nutrition.DefaultServings,
		Nutrition:     facts,
		YoutubeURL:    meal["strYoutube"],
		RelatedDishes: []string{},
		DietaryType:   classifyDietaryType(meal["strCategory"]),
	}
}

// splitInstructions 將說明文字依換行切成步驟，丟棄空行
func splitInstructions(blob string) []string {
	normalized := strings.ReplaceAll(blob, "\r\n", "\n")
	steps := []string{}
	for _, line := range strings.Split(normalized, "\n") {
		if step := strings.TrimSpace(line); step != "" {
			steps = append(steps, step)
		}
	}
	return steps
}

// classifyDietaryType 以類別推斷飲食類型，未知類別預設 Non-Veg
func classifyDietaryType(category string) string {
	c := common.NormalizeName(category)
	for _, veg := range vegCategories {
		if c == veg {
			return common.DietaryVeg
		}
	}
	for _, nonVeg := range nonVegCategories {
		if c == nonVeg {
			return common.DietaryNonVeg
		}
	}
	return common.DietaryNonVeg
}
