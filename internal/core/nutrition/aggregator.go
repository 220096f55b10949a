package nutrition

import (
	"context"
	"fmt"

	"ai-kitchen/internal/pkg/common"

	"golang.org/x/sync/errgroup"
)

// DefaultServings 份數未知時的預設值
const DefaultServings = 4

// Aggregator 營養彙總器
type Aggregator struct {
	resolver *Resolver
}

// NewAggregator 創建營養彙總器
func NewAggregator(resolver *Resolver) *Aggregator {
	return &Aggregator{resolver: resolver}
}

// Aggregate 彙總整份食譜的每份營養資訊
// 各食材解析彼此獨立，平行展開後等全部完成再加總；
// 份數小於 1 時以預設值代入，彙總本身永不失敗
func (a *Aggregator) Aggregate(ctx context.Context, ingredients []common.Ingredient, servings int) common.NutritionFacts {
	if servings < 1 {
		servings = DefaultServings
	}

	contributions := make([]Contribution, len(ingredients))

	// 解析本身不會失敗，errgroup 在此僅作為等全部完成的結構化屏障
	g, gctx := errgroup.WithContext(ctx)
	for i := range ingredients {
		g.Go(func() error {
			contributions[i] = a.resolver.Resolve(gctx, ingredients[i])
			return nil
		})
	}
	_ = g.Wait()

	var (
		calories            int
		protein, carbs, fat float64
		fiber, sugar        float64
		sodium              int
	)
	for _, c := range contributions {
		calories += c.Calories
		protein += c.Protein
		carbs += c.Carbs
		fat += c.Fat
		fiber += c.Fiber
		sugar += c.Sugar
		sodium += c.Sodium
	}

	div := float64(servings)
	perFat := fat / div

	return common.NutritionFacts{
		Calories:     int(float64(calories) / div),
		Protein:      fmt.Sprintf("%.1fg", protein/div),
		Carbs:        fmt.Sprintf("%.1fg", carbs/div),
		Fat:          fmt.Sprintf("%.1fg", perFat),
		Fiber:        fmt.Sprintf("%.1fg", fiber/div),
		Sugar:        fmt.Sprintf("%.1fg", sugar/div),
		Sodium:       fmt.Sprintf("%dmg", int(float64(sodium)/div)),
		SaturatedFat: fmt.Sprintf("%.1fg", perFat*0.3), // 固定比例推估，非實測值
	}
}
