package recipe

import (
	"context"
	"fmt"
	"strings"

	"ai-kitchen/internal/core/image"
	"ai-kitchen/internal/core/nutrition"
	"ai-kitchen/internal/core/source"
	"ai-kitchen/internal/pkg/common"

	"golang.org/x/sync/errgroup"
)

// Generator 生成後端介面
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Enabled() bool
}

// 依食材生成的偏好過濾器
const (
	FilterTasty   = "tasty"
	FilterHealthy = "healthy"
	FilterQuick   = "quick"
)

// filterInstructions 過濾器對應的固定提示詞段落，未知值退回 tasty
var filterInstructions = map[string]string{
	FilterTasty:   "Focus on FLAVOR and INDULGENCE. Prioritize delicious, comforting, rich flavors. Include butter, cream, cheese, or flavorful spices. No dietary restrictions.",
	FilterHealthy: "Focus on HEALTH and NUTRITION. Prioritize low-calorie, high-protein, nutrient-dense ingredients. Minimize oil/butter. Include vegetables, lean proteins, whole grains.",
	FilterQuick:   "Focus on SPEED and SIMPLICITY. Total time (prep + cook) must be under 20 minutes. Use minimal ingredients (5-7 max). Simple cooking methods. No complex techniques.",
}

// fromIngredientsPromptTemplate 依食材生成的提示詞：過濾器、食材清單
const fromIngredientsPromptTemplate = `Create a realistic %s recipe using these ingredients: %s

%s

IMPORTANT: Return ONLY valid JSON with this exact schema. Be REALISTIC with cooking times:
{
    "name": "Creative dish name based on ingredients",
    "category": "Category like Chicken, Vegetarian, Seafood, etc",
    "area": "Cuisine type like American, Italian, Asian",
    "instructions": ["Detailed step 1", "Detailed step 2", "..."],
    "ingredients": [{"name": "ingredient name", "measure": "realistic amount like 2 cups or 200g"}],
    "prep_time": "Actual prep time in mins (e.g., 10 mins, 15 mins)",
    "cook_time": "Actual cooking time in mins (e.g., 15 mins, 30 mins)",
    "dietary_type": "Veg or Non-Veg or Vegan"
}

Return ONLY the JSON, no markdown formatting, no explanations.`

// IngredientService 以食材為起點的食譜服務
type IngredientService struct {
	generator  Generator
	aggregator *nutrition.Aggregator
	images     *image.Service
}

// NewIngredientService 創建食材食譜服務
func NewIngredientService(generator Generator, aggregator *nutrition.Aggregator, images *image.Service) *IngredientService {
	return &IngredientService{
		generator:  generator,
		aggregator: aggregator,
		images:     images,
	}
}

// GenerateFromIngredients 依食材清單與偏好過濾器生成完整食譜
func (s *IngredientService) GenerateFromIngredients(ctx context.Context, ingredientsText, filterType string) (*common.RecipeRecord, error) {
	ingredientsText = strings.TrimSpace(ingredientsText)
	if ingredientsText == "" {
		return nil, common.NewInvalidInputError("Ingredients cannot be empty")
	}
	if !s.generator.Enabled() {
		return nil, common.NewNotConfiguredError("Gemini")
	}

	instruction, ok := filterInstructions[filterType]
	if !ok {
		filterType = FilterTasty
		instruction = filterInstructions[FilterTasty]
	}

	prompt := fmt.Sprintf(fromIngredientsPromptTemplate, filterType, ingredientsText, instruction)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := source.ParseGeneratedRecipe(text)
	if err != nil {
		return nil, common.NewUpstreamParseError(err)
	}
	if parsed.Category == "" {
		parsed.Category = "Main Course"
	}
	if parsed.Area == "" {
		parsed.Area = "Fusion"
	}

	// 營養與圖片平行補齊，菜名以生成結果為準
	var (
		facts    common.NutritionFacts
		imageURL string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		facts = s.aggregator.Aggregate(gctx, parsed.Ingredients, nutrition.DefaultServings)
		return nil
	})
	g.Go(func() error {
		imageURL = s.images.Resolve(gctx, parsed.Name, "")
		return nil
	})
	_ = g.Wait()

	return &common.RecipeRecord{
		ID:            "gemini-ingredient-" + common.Slugify(parsed.Name),
		Name:          parsed.Name,
		Category:      parsed.Category,
		Area:          parsed.Area,
		Instructions:  parsed.Instructions,
		Ingredients:   parsed.Ingredients,
		ImageURL:      imageURL,
		PrepTime:      parsed.PrepTime,
		CookTime:      parsed.CookTime,
		Servings:      nutrition.DefaultServings,
		Nutrition:     facts,
		YoutubeURL:    source.YoutubeSearchURL(parsed.Name),
		RelatedDishes: []string{},
		DietaryType:   parsed.DietaryType,
	}, nil
}

// SearchByIngredients 以逗號分隔的食材文字搜尋食譜
// 目前為占位實作：驗證輸入後回傳空清單
func (s *IngredientService) SearchByIngredients(ctx context.Context, ingredientsText string) ([]common.RecipeSuggestion, error) {
	if strings.TrimSpace(ingredientsText) == "" {
		return nil, common.NewInvalidInputError("Ingredients cannot be empty")
	}

	var ingredients []string
	for _, part := range strings.Split(ingredientsText, ",") {
		if p := strings.TrimSpace(part); p != "" {
			ingredients = append(ingredients, p)
		}
	}
	if len(ingredients) == 0 {
		return nil, common.NewInvalidInputError("Please provide at least one ingredient")
	}

	return []common.RecipeSuggestion{}, nil
}
