package nutrition

import (
	"context"
	"math"

	"ai-kitchen/internal/pkg/common"

	"go.uber.org/zap"
)

// genericRow 查無參考資料時的泛用預設列（每 100 克）
// 寧可給出粗略估計也不讓解析失敗
var genericRow = ReferenceRow{
	Calories: 50,
	Protein:  2,
	Carbs:    10,
	Fat:      1,
	Fiber:    1,
	Sugar:    1,
	Sodium:   50,
}

// Contribution 單一食材的絕對營養貢獻（未除以份數）
type Contribution struct {
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   int
}

// EnrichmentSource 外部營養查詢擴充點
// 核心流程不依賴它；查詢失敗時一律退回泛用預設列
type EnrichmentSource interface {
	Lookup(ctx context.Context, ingredientName string) (*ReferenceRow, error)
}

// Resolver 食材營養解析器
type Resolver struct {
	enrichment EnrichmentSource
}

// NewResolver 創建食材營養解析器；enrichment 可為 nil
func NewResolver(enrichment EnrichmentSource) *Resolver {
	return &Resolver{enrichment: enrichment}
}

// Resolve 解析單一食材的營養貢獻
// 永不失敗：查無參考資料時退化為泛用預設列
func (r *Resolver) Resolve(ctx context.Context, ing common.Ingredient) Contribution {
	row, found := LookupReference(ing.Name)
	if !found {
		if r.enrichment != nil {
			if external, err := r.enrichment.Lookup(ctx, ing.Name); err == nil && external != nil {
				row = *external
				found = true
			} else if err != nil {
				common.LogDebug("外部營養查詢失敗，改用泛用預設值",
					zap.String("食材", ing.Name),
					zap.Error(err),
				)
			}
		}
		if !found {
			row = genericRow
		}
	}

	grams := EstimateWeight(ing.Measure)
	multiplier := grams / 100.0

	// calories 與 sodium 直接截斷為整數，其餘取到小數一位
	return Contribution{
		Calories: int(row.Calories * multiplier),
		Protein:  round1(row.Protein * multiplier),
		Carbs:    round1(row.Carbs * multiplier),
		Fat:      round1(row.Fat * multiplier),
		Fiber:    round1(row.Fiber * multiplier),
		Sugar:    round1(row.Sugar * multiplier),
		Sodium:   int(row.Sodium * multiplier),
	}
}

// round1 取到小數一位
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
