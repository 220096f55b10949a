package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateWeight(t *testing.T) {
	tests := []struct {
		name    string
		measure string
		want    float64
	}{
		{"數量乘杯", "2 cups", 400},
		{"單一湯匙", "1 tbsp", 15},
		{"完整單位名", "2 tablespoons", 30},
		{"茶匙", "1 tsp", 5},
		{"磅", "1 lb", 453.592},
		{"盎司", "4 oz", 113.4},
		{"公斤", "1.5 kg", 1500},
		{"克直接取數量", "500g", 500},
		{"毫升視為克", "250 ml", 250},
		{"蒜瓣", "3 cloves", 9},
		{"中型個體", "2 medium", 300},
		{"大型個體", "1 large", 150},
		{"適量", "to taste", 2},
		{"少許", "pinch", 2},
		{"空字串", "", 2},
		{"裸數字視為個數", "2", 200},
		{"無數字單位取一", "cup", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateWeight(tt.measure), 0.001)
		})
	}
}

func TestEstimateWeightNeverNegative(t *testing.T) {
	for _, measure := range []string{"unknown stuff", "???", "half", "a few sprigs"} {
		got := EstimateWeight(measure)
		assert.GreaterOrEqual(t, got, 0.0, "measure %q", measure)
	}
}

func TestEstimateWeightFluidOunceFallsThrough(t *testing.T) {
	// "fl oz" 不走盎司分支，最終落到裸數字規則
	assert.InDelta(t, 400.0, EstimateWeight("4 fl oz"), 0.001)
}
