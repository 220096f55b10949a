package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-kitchen/internal/core/nutrition"
	"ai-kitchen/internal/pkg/common"
)

// fakeGenerator 固定回應的測試生成後端
type fakeGenerator struct {
	enabled    bool
	text       string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Enabled() bool { return f.enabled }

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.text, f.err
}

const generatedRecipeText = `{
	"name": "Chicken Rice Bowl",
	"category": "Chicken",
	"area": "Asian",
	"instructions": ["Cook the rice.", "Stir-fry the chicken.", "Combine and serve."],
	"ingredients": [{"name": "chicken", "measure": "300g"}, {"name": "rice", "measure": "2 cups"}],
	"prep_time": "10 mins",
	"cook_time": "20 mins",
	"dietary_type": "Non-Veg"
}`

func newTestIngredientService(gen *fakeGenerator) *IngredientService {
	aggregator := nutrition.NewAggregator(nutrition.NewResolver(nil))
	return NewIngredientService(gen, aggregator, newTestImageService())
}

func TestGenerateFromIngredientsEmptyInput(t *testing.T) {
	s := newTestIngredientService(&fakeGenerator{enabled: true})

	_, err := s.GenerateFromIngredients(context.Background(), "  ", FilterTasty)
	require.Error(t, err)

	ce := common.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, common.ErrCodeInvalidInput, ce.Code)
}

func TestGenerateFromIngredientsNotConfigured(t *testing.T) {
	s := newTestIngredientService(&fakeGenerator{enabled: false})

	_, err := s.GenerateFromIngredients(context.Background(), "chicken, rice", FilterTasty)
	require.Error(t, err)

	ce := common.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, common.ErrCodeNotConfigured, ce.Code)
}

func TestGenerateFromIngredientsSuccess(t *testing.T) {
	gen := &fakeGenerator{enabled: true, text: generatedRecipeText}
	s := newTestIngredientService(gen)

	record, err := s.GenerateFromIngredients(context.Background(), "chicken, rice", FilterHealthy)
	require.NoError(t, err)

	assert.Equal(t, "gemini-ingredient-chicken-rice-bowl", record.ID)
	assert.Equal(t, "Chicken Rice Bowl", record.Name)
	assert.Equal(t, nutrition.DefaultServings, record.Servings)
	assert.NotZero(t, record.Nutrition.Calories)
	assert.NotEmpty(t, record.ImageURL)
	assert.Contains(t, record.YoutubeURL, "Chicken+Rice+Bowl+recipe")

	// 提示詞帶入食材與過濾器指令
	assert.Contains(t, gen.lastPrompt, "chicken, rice")
	assert.Contains(t, gen.lastPrompt, "Focus on HEALTH and NUTRITION")
}

func TestGenerateFromIngredientsUnknownFilterDefaultsToTasty(t *testing.T) {
	gen := &fakeGenerator{enabled: true, text: generatedRecipeText}
	s := newTestIngredientService(gen)

	_, err := s.GenerateFromIngredients(context.Background(), "chicken", "spicy")
	require.NoError(t, err)

	assert.Contains(t, gen.lastPrompt, "Focus on FLAVOR and INDULGENCE")
}

func TestGenerateFromIngredientsDefaultsCategoryAndArea(t *testing.T) {
	gen := &fakeGenerator{enabled: true, text: `{
		"name": "Mystery Bowl",
		"instructions": ["Cook."],
		"ingredients": [{"name": "thing", "measure": "1 cup"}]
	}`}
	s := newTestIngredientService(gen)

	record, err := s.GenerateFromIngredients(context.Background(), "thing", FilterQuick)
	require.NoError(t, err)

	assert.Equal(t, "Main Course", record.Category)
	assert.Equal(t, "Fusion", record.Area)
}

func TestGenerateFromIngredientsGeneratorError(t *testing.T) {
	gen := &fakeGenerator{enabled: true, err: assert.AnError}
	s := newTestIngredientService(gen)

	_, err := s.GenerateFromIngredients(context.Background(), "chicken", FilterTasty)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestGenerateFromIngredientsParseFailure(t *testing.T) {
	gen := &fakeGenerator{enabled: true, text: "sorry, I cannot help with that"}
	s := newTestIngredientService(gen)

	_, err := s.GenerateFromIngredients(context.Background(), "chicken", FilterTasty)
	require.Error(t, err)

	ce := common.AsCustomError(err)
	require.NotNil(t, ce)
	assert.Equal(t, common.ErrCodeUpstreamParseError, ce.Code)
}

func TestSearchByIngredients(t *testing.T) {
	s := newTestIngredientService(&fakeGenerator{enabled: true})

	t.Run("空輸入", func(t *testing.T) {
		_, err := s.SearchByIngredients(context.Background(), "   ")
		require.Error(t, err)
		ce := common.AsCustomError(err)
		require.NotNil(t, ce)
		assert.Equal(t, common.ErrCodeInvalidInput, ce.Code)
	})

	t.Run("只有分隔符", func(t *testing.T) {
		_, err := s.SearchByIngredients(context.Background(), " , , ")
		require.Error(t, err)
	})

	t.Run("合法輸入回空清單", func(t *testing.T) {
		got, err := s.SearchByIngredients(context.Background(), "chicken, rice")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
