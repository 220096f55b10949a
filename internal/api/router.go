package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"ai-kitchen/internal/api/handlers/health"
	recipeHandler "ai-kitchen/internal/api/handlers/recipe"
	"ai-kitchen/internal/api/middleware"
	"ai-kitchen/internal/core/cache"
	"ai-kitchen/internal/core/image"
	"ai-kitchen/internal/core/nutrition"
	recipeService "ai-kitchen/internal/core/recipe"
	"ai-kitchen/internal/core/source"
	"ai-kitchen/internal/infrastructure/config"
	"ai-kitchen/internal/pkg/common"
)

const (
	// 超時設置
	timeoutDuration = 120 * time.Second
	// 請求體大小限制 (1MB，所有端點皆為純 JSON)
	maxBodySize = 1 << 20
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store cache.Store) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(maxBodySize))

	// 速率限制
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	common.LogInfo("Initializing services",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("gemini_enabled", cfg.Gemini.Enabled()),
		zap.Duration("timeout", timeoutDuration),
	)

	// 初始化營養計算鏈
	resolver := nutrition.NewResolver(nil)
	aggregator := nutrition.NewAggregator(resolver)

	// 初始化圖片服務
	imageService := image.NewService(store, &cfg.Image)

	// 初始化食譜來源
	mealDB := source.NewMealDBAdapter(&cfg.MealDB, store, aggregator, imageService)
	gemini := source.NewGeminiAdapter(&cfg.Gemini)

	// 初始化食譜服務
	recipeSvc := recipeService.NewRecipeService(mealDB, gemini, aggregator, imageService)
	ingredientSvc := recipeService.NewIngredientService(gemini, aggregator, imageService)
	replacementSvc := recipeService.NewReplacementService(gemini)

	common.LogInfo("Recipe services initialized successfully",
		zap.Bool("gemini_enabled", cfg.Gemini.Enabled()),
		zap.String("environment", cfg.App.Env),
	)

	// 全局中間件：設置超時和服務
	router.Use(func(c *gin.Context) {
		// 設置請求超時
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		// 設置配置與快取（供健康檢查使用）
		c.Set("config", cfg)
		c.Set("cache_store", store)

		// 處理請求
		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
				"details": gin.H{
					"timeout": timeoutDuration.String(),
				},
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 路由
	handler := recipeHandler.NewHandler(recipeSvc, ingredientSvc, replacementSvc)

	router.GET("/suggestions", handler.HandleSuggestions)
	router.POST("/generate-recipe", handler.HandleGenerateRecipe)
	router.POST("/get-dish-image", handler.HandleGetDishImage)
	router.POST("/search-by-ingredients", handler.HandleSearchByIngredients)
	router.POST("/generate-recipe-from-ingredients", handler.HandleGenerateFromIngredients)
	router.POST("/suggest-ingredient-replacement", handler.HandleSuggestReplacement)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
