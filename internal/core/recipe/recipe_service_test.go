package recipe

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-kitchen/internal/core/cache"
	"ai-kitchen/internal/core/image"
	"ai-kitchen/internal/core/nutrition"
	"ai-kitchen/internal/core/source"
	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"
)

// fakeSource 固定回應的測試來源
type fakeSource struct {
	name    string
	record  *common.RecipeRecord
	outcome source.Outcome
	err     error
	calls   int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch(ctx context.Context, dishName string) (*common.RecipeRecord, source.Outcome, error) {
	f.calls++
	return f.record, f.outcome, f.err
}

func newTestImageService() *image.Service {
	store := cache.NewMemoryStore(time.Hour, 100)
	return image.NewService(store, &config.ImageConfig{
		BaseURL: "https://image.pollinations.ai",
		Width:   800,
		Height:  600,
	})
}

func newTestRecipeService(db, generative source.Source) *RecipeService {
	aggregator := nutrition.NewAggregator(nutrition.NewResolver(nil))
	return NewRecipeService(db, generative, aggregator, newTestImageService())
}

func dbRecord() *common.RecipeRecord {
	return &common.RecipeRecord{
		ID:       "themealdb-butter-chicken",
		Name:     "Butter Chicken",
		Servings: 4,
		ImageURL: "https://example.com/thumb.jpg",
		Ingredients: []common.Ingredient{
			{Name: "chicken", Measure: "500g"},
		},
		Nutrition: common.NutritionFacts{Calories: 206},
	}
}

func generatedRecord() *common.RecipeRecord {
	return &common.RecipeRecord{
		ID:   "gemini-butter-chicken",
		Name: "Butter Chicken",
		Ingredients: []common.Ingredient{
			{Name: "chicken", Measure: "500g"},
			{Name: "butter", Measure: "2 tbsp"},
		},
	}
}

func TestGetRecipeEmptyDishName(t *testing.T) {
	db := &fakeSource{name: "db"}
	gen := &fakeSource{name: "gen"}
	s := newTestRecipeService(db, gen)

	for _, input := range []string{"", "   "} {
		_, err := s.GetRecipe(context.Background(), input)
		require.Error(t, err)

		ce := common.AsCustomError(err)
		require.NotNil(t, ce)
		assert.Equal(t, common.ErrCodeInvalidInput, ce.Code)
	}

	// 輸入驗證失敗不應觸碰任何來源
	assert.Zero(t, db.calls)
	assert.Zero(t, gen.calls)
}

func TestGetRecipeDBHitShortCircuits(t *testing.T) {
	db := &fakeSource{name: "db", record: dbRecord(), outcome: source.OutcomeFound}
	gen := &fakeSource{name: "gen"}
	s := newTestRecipeService(db, gen)

	record, err := s.GetRecipe(context.Background(), "Butter Chicken")
	require.NoError(t, err)

	assert.Equal(t, "themealdb-butter-chicken", record.ID)
	assert.Equal(t, 1, db.calls)
	assert.Zero(t, gen.calls)
}

func TestGetRecipeFallsBackToGenerative(t *testing.T) {
	db := &fakeSource{name: "db", outcome: source.OutcomeNotFound}
	gen := &fakeSource{name: "gen", record: generatedRecord(), outcome: source.OutcomeFound}
	s := newTestRecipeService(db, gen)

	record, err := s.GetRecipe(context.Background(), "Butter Chicken")
	require.NoError(t, err)

	assert.Equal(t, "gemini-butter-chicken", record.ID)
	assert.Equal(t, 1, db.calls)
	assert.Equal(t, 1, gen.calls)

	// 生成結果由協調器補齊份數、營養與圖片
	assert.Equal(t, nutrition.DefaultServings, record.Servings)
	assert.NotZero(t, record.Nutrition.Calories)
	assert.NotEmpty(t, record.ImageURL)
}

func TestGetRecipeDBFailureStillFallsBack(t *testing.T) {
	db := &fakeSource{name: "db", outcome: source.OutcomeFailed, err: assert.AnError}
	gen := &fakeSource{name: "gen", record: generatedRecord(), outcome: source.OutcomeFound}
	s := newTestRecipeService(db, gen)

	record, err := s.GetRecipe(context.Background(), "Butter Chicken")
	require.NoError(t, err)
	assert.Equal(t, "gemini-butter-chicken", record.ID)
}

func TestGetRecipeBothMiss(t *testing.T) {
	db := &fakeSource{name: "db", outcome: source.OutcomeNotFound}
	gen := &fakeSource{name: "gen", outcome: source.OutcomeNotFound}
	s := newTestRecipeService(db, gen)

	_, err := s.GetRecipe(context.Background(), "Imaginary Dish")
	require.Error(t, err)

	ce := common.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, common.ErrCodeNotFound, ce.Code)
	assert.Equal(t, http.StatusNotFound, ce.Status)
	assert.Contains(t, ce.Message, "Imaginary Dish")
}

func TestGetRecipeGenerativeFailurePropagates(t *testing.T) {
	parseErr := common.NewUpstreamParseError(assert.AnError)
	db := &fakeSource{name: "db", outcome: source.OutcomeNotFound}
	gen := &fakeSource{name: "gen", outcome: source.OutcomeFailed, err: parseErr}
	s := newTestRecipeService(db, gen)

	_, err := s.GetRecipe(context.Background(), "Butter Chicken")
	require.Error(t, err)

	ce := common.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, common.ErrCodeUpstreamParseError, ce.Code)
}

func TestGetDishImage(t *testing.T) {
	s := newTestRecipeService(&fakeSource{name: "db"}, &fakeSource{name: "gen"})

	t.Run("空菜名", func(t *testing.T) {
		_, err := s.GetDishImage(context.Background(), "  ")
		require.Error(t, err)
		ce := common.AsCustomError(err)
		require.NotNil(t, ce)
		assert.Equal(t, common.ErrCodeInvalidInput, ce.Code)
	})

	t.Run("合成 URL", func(t *testing.T) {
		url, err := s.GetDishImage(context.Background(), "Pad Thai")
		require.NoError(t, err)
		assert.Contains(t, url, "https://image.pollinations.ai/prompt/")
		assert.Contains(t, url, "Pad%20Thai")
	})
}
