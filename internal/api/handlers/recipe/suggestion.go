package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"

	recipeService "ai-kitchen/internal/core/recipe"
	"ai-kitchen/internal/pkg/common"
)

// SuggestionResponse 預設菜色建議清單
type SuggestionResponse struct {
	Suggestions []common.DishSuggestion `json:"suggestions"`
}

// HandleSuggestions 回傳預設菜色建議
func (h *Handler) HandleSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, SuggestionResponse{
		Suggestions: recipeService.DishSuggestions(),
	})
}
