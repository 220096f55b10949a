package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-kitchen/internal/pkg/common"
)

// IngredientSearchRequest 以食材清單為輸入的請求
type IngredientSearchRequest struct {
	Ingredients string `json:"ingredients" binding:"required"` // 逗號分隔的食材清單
	FilterType  string `json:"filter_type,omitempty"`          // tasty、healthy 或 quick
}

// RecipeSuggestionsResponse 依食材搜尋的結果清單
type RecipeSuggestionsResponse struct {
	Recipes []common.RecipeSuggestion `json:"recipes"`
	Count   int                       `json:"count"`
}

// IngredientReplacementRequest 食材替代建議請求
type IngredientReplacementRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`  // 欲替換的食材
	RecipeName string `json:"recipe_name" binding:"required"` // 所屬食譜名稱
}

// HandleSearchByIngredients 依食材搜尋食譜
func (h *Handler) HandleSearchByIngredients(c *gin.Context) {
	reqID := requestID(c)

	var req IngredientSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	suggestions, err := h.ingredientService.SearchByIngredients(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondError(c, reqID, err)
		return
	}

	c.JSON(http.StatusOK, RecipeSuggestionsResponse{
		Recipes: suggestions,
		Count:   len(suggestions),
	})
}

// HandleGenerateFromIngredients 依食材清單生成完整食譜
func (h *Handler) HandleGenerateFromIngredients(c *gin.Context) {
	reqID := requestID(c)

	var req IngredientSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("開始處理依食材生成食譜請求",
		zap.String("request_id", reqID),
		zap.String("filter_type", req.FilterType),
		zap.String("client_ip", c.ClientIP()),
	)

	record, err := h.ingredientService.GenerateFromIngredients(c.Request.Context(), req.Ingredients, req.FilterType)
	if err != nil {
		respondError(c, reqID, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// HandleSuggestReplacement 取得食材替代建議
func (h *Handler) HandleSuggestReplacement(c *gin.Context) {
	reqID := requestID(c)

	var req IngredientReplacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	suggestion := h.replacementService.SuggestReplacement(c.Request.Context(), req.Ingredient, req.RecipeName)
	c.JSON(http.StatusOK, suggestion)
}
