package recipe

import (
	"context"
	"fmt"

	"ai-kitchen/internal/pkg/common"

	"go.uber.org/zap"
)

// replacementPromptTemplate 食材替代建議提示詞：食材、菜名、食材
const replacementPromptTemplate = `Suggest 4-5 practical alternatives for the ingredient "%s" in the recipe "%s".

Consider:
- Similar flavor profile
- Similar texture/function in cooking
- Common availability
- Dietary alternatives (if applicable)

Return ONLY valid JSON with this exact schema:
{
    "original": "%s",
    "alternatives": ["alternative 1", "alternative 2", "alternative 3", "alternative 4"],
    "notes": "Brief note about when to use these alternatives"
}

Return ONLY the JSON, no markdown formatting.`

// ReplacementService 食材替代建議服務
// 以可用性換準確性：任何失敗都退化為通用建議，絕不把錯誤傳給呼叫端
type ReplacementService struct {
	generator Generator
}

// NewReplacementService 創建食材替代建議服務
func NewReplacementService(generator Generator) *ReplacementService {
	return &ReplacementService{generator: generator}
}

// SuggestReplacement 為指定食譜中的食材建議替代品
func (s *ReplacementService) SuggestReplacement(ctx context.Context, ingredient, recipeName string) *common.ReplacementSuggestion {
	if !s.generator.Enabled() {
		return fallbackSuggestion(ingredient)
	}

	prompt := fmt.Sprintf(replacementPromptTemplate, ingredient, recipeName, ingredient)
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		common.LogWarn("替代建議生成失敗，改用通用建議",
			zap.Error(err),
			zap.String("食材", ingredient),
		)
		return fallbackSuggestion(ingredient)
	}

	content := common.ExtractJSONObject(common.StripCodeFences(text))
	var parsed common.ReplacementSuggestion
	if err := common.ParseJSON(content, &parsed); err != nil || len(parsed.Alternatives) == 0 {
		common.LogWarn("替代建議解析失敗，改用通用建議",
			zap.Error(err),
			zap.String("回應片段", common.TruncateForLog(content, 200)),
		)
		return fallbackSuggestion(ingredient)
	}

	if parsed.Original == "" {
		parsed.Original = ingredient
	}
	if parsed.Notes == "" {
		parsed.Notes = "These are common substitutes."
	}
	return &parsed
}

// fallbackSuggestion 固定的單項通用建議
func fallbackSuggestion(ingredient string) *common.ReplacementSuggestion {
	return &common.ReplacementSuggestion{
		Original:     ingredient,
		Alternatives: []string{"Check recipe for alternatives"},
		Notes:        "Unable to generate suggestions at this time.",
	}
}
