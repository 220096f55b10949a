package recipe

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	recipeService "ai-kitchen/internal/core/recipe"
	"ai-kitchen/internal/pkg/common"
)

// RecipeRequest 以菜名為輸入的請求
type RecipeRequest struct {
	DishName string `json:"dish_name" binding:"required"` // 欲查詢或生成的菜名
}

// ImageResponse 菜色圖片響應
type ImageResponse struct {
	ImageURL string `json:"image_url"`
}

// Handler 食譜處理程序
type Handler struct {
	recipeService      *recipeService.RecipeService
	ingredientService  *recipeService.IngredientService
	replacementService *recipeService.ReplacementService
}

// NewHandler 創建新的食譜處理程序
func NewHandler(rs *recipeService.RecipeService, is *recipeService.IngredientService, rp *recipeService.ReplacementService) *Handler {
	return &Handler{
		recipeService:      rs,
		ingredientService:  is,
		replacementService: rp,
	}
}

// HandleGenerateRecipe 依菜名取得或生成食譜
func (h *Handler) HandleGenerateRecipe(c *gin.Context) {
	reqID := requestID(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	common.LogInfo("開始處理食譜請求",
		zap.String("request_id", reqID),
		zap.String("dish_name", req.DishName),
		zap.String("client_ip", c.ClientIP()),
	)

	record, err := h.recipeService.GetRecipe(c.Request.Context(), req.DishName)
	if err != nil {
		respondError(c, reqID, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// HandleGetDishImage 取得菜色圖片連結
func (h *Handler) HandleGetDishImage(c *gin.Context) {
	reqID := requestID(c)

	var req RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("請求格式無效",
			zap.Error(err),
			zap.String("request_id", reqID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	imageURL, err := h.recipeService.GetDishImage(c.Request.Context(), req.DishName)
	if err != nil {
		respondError(c, reqID, err)
		return
	}

	c.JSON(http.StatusOK, ImageResponse{ImageURL: imageURL})
}
