package recipe

import (
	"context"
	"strings"

	"ai-kitchen/internal/core/image"
	"ai-kitchen/internal/core/nutrition"
	"ai-kitchen/internal/core/source"
	"ai-kitchen/internal/pkg/common"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RecipeService 食譜取得協調器
// 來源依固定順序嘗試：資料庫查詢快而便宜放最前，生成式覆蓋面廣放最後，
// 絕不平行——便宜的來源一旦命中就不該再付生成的成本
type RecipeService struct {
	db         source.Source
	generative source.Source
	aggregator *nutrition.Aggregator
	images     *image.Service
}

// NewRecipeService 創建食譜取得協調器
func NewRecipeService(db, generative source.Source, aggregator *nutrition.Aggregator, images *image.Service) *RecipeService {
	return &RecipeService{
		db:         db,
		generative: generative,
		aggregator: aggregator,
		images:     images,
	}
}

// GetRecipe 以菜名取得完整食譜記錄
func (s *RecipeService) GetRecipe(ctx context.Context, dishName string) (*common.RecipeRecord, error) {
	dishName = strings.TrimSpace(dishName)
	if dishName == "" {
		return nil, common.NewInvalidInputError("Dish name cannot be empty")
	}

	// 第一順位：資料庫查詢（結果已含營養與圖片，並已由配接器快取）
	record, outcome, err := s.db.Fetch(ctx, dishName)
	switch outcome {
	case source.OutcomeFound:
		common.LogInfo("食譜來源命中",
			zap.String("來源", s.db.Name()),
			zap.String("菜名", dishName),
		)
		return record, nil
	case source.OutcomeFailed:
		// 單一來源失敗不中止請求，生成式回退仍可能成功
		common.LogWarn("資料庫來源失敗，改試生成式回退",
			zap.Error(err),
			zap.String("菜名", dishName),
		)
	}

	// 第二順位：生成式回退
	record, outcome, err = s.generative.Fetch(ctx, dishName)
	switch outcome {
	case source.OutcomeFailed:
		return nil, err
	case source.OutcomeNotFound:
		return nil, common.NewNotFoundError(dishName)
	}

	// 生成結果不含營養與圖片，平行補齊後組裝；
	// 生成內容每次可能不同，這條路不做快取
	s.completeRecord(ctx, record, dishName)

	common.LogInfo("食譜來源命中",
		zap.String("來源", s.generative.Name()),
		zap.String("菜名", dishName),
	)
	return record, nil
}

// completeRecord 補齊生成結果缺少的營養與圖片，兩者互不依賴
func (s *RecipeService) completeRecord(ctx context.Context, record *common.RecipeRecord, dishName string) {
	if record.Servings < 1 {
		record.Servings = nutrition.DefaultServings
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		record.Nutrition = s.aggregator.Aggregate(gctx, record.Ingredients, record.Servings)
		return nil
	})
	g.Go(func() error {
		record.ImageURL = s.images.Resolve(gctx, dishName, "")
		return nil
	})
	_ = g.Wait()
}

// GetDishImage 只解析菜色圖片 URL
func (s *RecipeService) GetDishImage(ctx context.Context, dishName string) (string, error) {
	dishName = strings.TrimSpace(dishName)
	if dishName == "" {
		return "", common.NewInvalidInputError("Dish name cannot be empty")
	}
	return s.images.Resolve(ctx, dishName, ""), nil
}
