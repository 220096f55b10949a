package nutrition

import (
	"regexp"
	"strconv"
	"strings"
)

// numberPattern 擷取份量文字中第一個十進位數字
var numberPattern = regexp.MustCompile(`(\d+\.?\d*)`)

// 每單位估計克數
// 刻意不分液體與固體，單位關鍵字依固定優先序比對，先中先贏
const (
	gramsPerCup      = 200
	gramsPerTbsp     = 15
	gramsPerTsp      = 5
	gramsPerPound    = 453.592
	gramsPerOunce    = 28.35
	gramsPerKilogram = 1000
	gramsPerClove    = 3
	gramsPerPiece    = 150 // medium / large / small
	gramsQualitative = 2   // to taste / pinch / dash / 空字串
	gramsPerUnit     = 100 // 無單位時，每「個」以約 100g 估
)

// EstimateWeight 將自由文字份量轉為估計克數
// 永不失敗，一律回傳有限非負值
func EstimateWeight(measure string) float64 {
	m := strings.ToLower(measure)

	quantity := 1.0
	if match := numberPattern.FindString(m); match != "" {
		if parsed, err := strconv.ParseFloat(match, 64); err == nil {
			quantity = parsed
		}
	}

	switch {
	case strings.Contains(m, "cup"):
		return quantity * gramsPerCup
	case strings.Contains(m, "tablespoon") || strings.Contains(m, "tbsp"):
		return quantity * gramsPerTbsp
	case strings.Contains(m, "teaspoon") || strings.Contains(m, "tsp"):
		return quantity * gramsPerTsp
	case strings.Contains(m, "lb") || strings.Contains(m, "pound"):
		return quantity * gramsPerPound
	case strings.Contains(m, "oz") && !strings.Contains(m, "fl"):
		return quantity * gramsPerOunce
	case strings.Contains(m, "kg"):
		return quantity * gramsPerKilogram
	case strings.Contains(m, "g"):
		return quantity
	case strings.Contains(m, "ml") || strings.Contains(m, "fluid"):
		return quantity
	case strings.Contains(m, "clove"):
		return quantity * gramsPerClove
	case strings.Contains(m, "medium") || strings.Contains(m, "large") || strings.Contains(m, "small"):
		return quantity * gramsPerPiece
	}

	switch strings.TrimSpace(m) {
	case "to taste", "pinch", "dash", "":
		return gramsQualitative
	}

	// 無單位關鍵字：把數字當成「約 100g 的個數」
	return quantity * gramsPerUnit
}
