package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const geminiSourceTag = "gemini"

// 生成結果缺欄位時的預設值
const (
	geminiDefaultPrepTime = "15 mins"
	geminiDefaultCookTime = "30 mins"
)

// recipePromptTemplate 固定 JSON 結構的生成提示詞，%s 為菜名
const recipePromptTemplate = `Generate a detailed, authentic recipe for %s in JSON format.

Determine if the dish is "Veg", "Non-Veg", or "Vegan".

Use this exact schema:
{
    "name": "Exact dish name",
    "category": "Category like Vegetarian, Chicken, Seafood, Dessert",
    "area": "Cuisine origin like Indian, Italian, Mexican",
    "instructions": ["Step 1 with details", "Step 2 with details"],
    "ingredients": [{"name": "ingredient name", "measure": "amount like 2 cups"}],
    "prep_time": "15 mins",
    "cook_time": "30 mins",
    "dietary_type": "Veg or Non-Veg or Vegan"
}

Return ONLY valid JSON, no markdown formatting.`

// GeneratedRecipe 生成後端回傳的食譜結構
type GeneratedRecipe struct {
	Name         string              `json:"name"`
	Category     string              `json:"category"`
	Area         string              `json:"area"`
	Instructions []string            `json:"instructions"`
	Ingredients  []common.Ingredient `json:"ingredients"`
	PrepTime     string              `json:"prep_time"`
	CookTime     string              `json:"cook_time"`
	DietaryType  string              `json:"dietary_type"`
}

// geminiRequest generateContent 請求結構
type geminiRequest struct {
	Contents         []geminiContent       `json:"contents"`
	GenerationConfig *geminiGenerationConf `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConf struct {
	MaxOutputTokens int `json:"maxOutputTokens,omitempty"`
}

// geminiResponse generateContent 回應結構
type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiAdapter 生成式食譜來源
// 作為回退鏈的最後一段：覆蓋面廣但昂貴，永遠排在資料庫查詢之後
type GeminiAdapter struct {
	client *resty.Client
	cfg    *config.GeminiConfig
}

// NewGeminiAdapter 創建生成式食譜來源
func NewGeminiAdapter(cfg *config.GeminiConfig) *GeminiAdapter {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &GeminiAdapter{
		client: client,
		cfg:    cfg,
	}
}

// Name 來源標籤
func (a *GeminiAdapter) Name() string {
	return geminiSourceTag
}

// Enabled 是否已配置 API Key
func (a *GeminiAdapter) Enabled() bool {
	return a.cfg.Enabled()
}

// Generate 發送提示詞並回傳生成文字
// 提供給依食材生成與替代建議等其他提示詞路徑重複使用
func (a *GeminiAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	if !a.cfg.Enabled() {
		return "", common.NewNotConfiguredError("Gemini")
	}

	req := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}
	if a.cfg.MaxTokens > 0 {
		req.GenerationConfig = &geminiGenerationConf{MaxOutputTokens: a.cfg.MaxTokens}
	}

	start := time.Now()
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParam("key", a.cfg.APIKey).
		SetBody(req).
		Post(fmt.Sprintf("/models/%s:generateContent", a.cfg.Model))
	common.LogUpstreamCall(geminiSourceTag, time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to send request to Gemini: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("Gemini API returned error (status %d): %s",
			resp.StatusCode(), common.TruncateForLog(resp.String(), 200))
	}

	var parsed geminiResponse
	if err := common.ParseJSONBytes(resp.Body(), &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// ParseGeneratedRecipe 清理生成文字並解析為食譜結構
// 先剝除程式碼圍欄再裁出 JSON 物件；缺必要欄位視為解析失敗
func ParseGeneratedRecipe(text string) (*GeneratedRecipe, error) {
	content := common.ExtractJSONObject(common.StripCodeFences(text))

	var parsed GeneratedRecipe
	if err := common.ParseJSON(content, &parsed); err != nil {
		common.LogError("生成內容解析失敗",
			zap.Error(err),
			zap.String("回應片段", common.TruncateForLog(content, 500)),
		)
		return nil, fmt.Errorf("failed to parse generated recipe: %w", err)
	}

	if parsed.Name == "" || len(parsed.Instructions) == 0 || len(parsed.Ingredients) == 0 {
		common.LogError("生成內容缺少必要欄位",
			zap.String("name", parsed.Name),
			zap.Int("instructions", len(parsed.Instructions)),
			zap.Int("ingredients", len(parsed.Ingredients)),
		)
		return nil, fmt.Errorf("generated recipe is missing required fields")
	}

	// 補上可省略欄位的預設值
	if parsed.PrepTime == "" {
		parsed.PrepTime = geminiDefaultPrepTime
	}
	if parsed.CookTime == "" {
		parsed.CookTime = geminiDefaultCookTime
	}
	if parsed.DietaryType == "" {
		parsed.DietaryType = common.DietaryNonVeg
	}

	return &parsed, nil
}

// Fetch 以菜名向生成後端取得候選食譜
// 回傳的記錄不含營養與圖片，由協調器另行平行補齊；
// 生成內容每次可能不同，因此這條路的結果不進快取
func (a *GeminiAdapter) Fetch(ctx context.Context, dishName string) (*common.RecipeRecord, Outcome, error) {
	if !a.cfg.Enabled() {
		// 未配置時讓回退鏈自然耗盡
		return nil, OutcomeNotFound, nil
	}

	text, err := a.Generate(ctx, fmt.Sprintf(recipePromptTemplate, dishName))
	if err != nil {
		// 網路層失敗視為查無資料，交由協調器決定整體結果
		common.LogWarn("生成後端請求失敗", zap.Error(err), zap.String("菜名", dishName))
		return nil, OutcomeNotFound, nil
	}

	parsed, err := ParseGeneratedRecipe(text)
	if err != nil {
		// 解析失敗是硬錯誤，與查無資料不同，須讓呼叫端看見
		return nil, OutcomeFailed, common.NewUpstreamParseError(err)
	}

	return &common.RecipeRecord{
		ID:            fmt.Sprintf("%s-%s", geminiSourceTag, common.Slugify(dishName)),
		Name:          parsed.Name,
		Category:      parsed.Category,
		Area:          parsed.Area,
		Instructions:  parsed.Instructions,
		Ingredients:   parsed.Ingredients,
		PrepTime:      parsed.PrepTime,
		CookTime:      parsed.CookTime,
		Servings:      0, // 由協調器定為預設份數
		YoutubeURL:    YoutubeSearchURL(dishName),
		RelatedDishes: []string{},
		DietaryType:   parsed.DietaryType,
	}, OutcomeFound, nil
}

// YoutubeSearchURL 由菜名組出決定性的搜尋連結
func YoutubeSearchURL(dishName string) string {
	return "https://www.youtube.com/results?search_query=" +
		strings.ReplaceAll(dishName, " ", "+") + "+recipe"
}
