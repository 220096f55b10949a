package nutrition

import (
	"strings"

	"ai-kitchen/internal/pkg/common"
)

// ReferenceRow 每 100 克的營養參考值
// 熱量為大卡、鈉為毫克，其餘為克
type ReferenceRow struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
}

// tableEntry 參考表條目，宣告順序即比對順序
type tableEntry struct {
	key string
	row ReferenceRow
}

// referenceTable 內建營養參考表
// 順序有意義："chicken breast" 必須排在 "chicken" 之前，
// 否則泛用條目會遮蔽特定條目
var referenceTable = []tableEntry{
	// 蛋白質
	{"chicken breast", ReferenceRow{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74}},
	{"chicken", ReferenceRow{Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74}},
	{"beef", ReferenceRow{Calories: 250, Protein: 26, Carbs: 0, Fat: 15, Fiber: 0, Sugar: 0, Sodium: 72}},
	{"pork", ReferenceRow{Calories: 242, Protein: 27, Carbs: 0, Fat: 14, Fiber: 0, Sugar: 0, Sodium: 62}},
	{"salmon", ReferenceRow{Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0, Sugar: 0, Sodium: 59}},
	{"tuna", ReferenceRow{Calories: 132, Protein: 28, Carbs: 0, Fat: 1.3, Fiber: 0, Sugar: 0, Sodium: 47}},
	{"egg", ReferenceRow{Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1, Sodium: 124}},
	{"tofu", ReferenceRow{Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sugar: 0.7, Sodium: 7}},
	// 澱粉主食
	{"rice", ReferenceRow{Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0.1, Sodium: 1}},
	{"pasta", ReferenceRow{Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, Fiber: 1.8, Sugar: 0.8, Sodium: 1}},
	{"bread", ReferenceRow{Calories: 265, Protein: 9, Carbs: 49, Fat: 3.2, Fiber: 2.7, Sugar: 5, Sodium: 491}},
	{"potato", ReferenceRow{Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, Fiber: 2.2, Sugar: 0.8, Sodium: 6}},
	{"sweet potato", ReferenceRow{Calories: 86, Protein: 1.6, Carbs: 20, Fat: 0.1, Fiber: 3, Sugar: 4.2, Sodium: 55}},
	// 蔬菜
	{"tomato", ReferenceRow{Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, Fiber: 1.2, Sugar: 2.6, Sodium: 5}},
	{"onion", ReferenceRow{Calories: 40, Protein: 1.1, Carbs: 9.3, Fat: 0.1, Fiber: 1.7, Sugar: 4.2, Sodium: 4}},
	{"garlic", ReferenceRow{Calories: 149, Protein: 6.4, Carbs: 33, Fat: 0.5, Fiber: 2.1, Sugar: 1, Sodium: 17}},
	{"carrot", ReferenceRow{Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sugar: 4.7, Sodium: 69}},
	{"broccoli", ReferenceRow{Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6, Sugar: 1.7, Sodium: 33}},
	{"spinach", ReferenceRow{Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4, Sodium: 79}},
	{"bell pepper", ReferenceRow{Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3, Fiber: 2.1, Sugar: 4.2, Sodium: 4}},
	{"mushroom", ReferenceRow{Calories: 22, Protein: 3.1, Carbs: 3.3, Fat: 0.3, Fiber: 1, Sugar: 2, Sodium: 5}},
	{"lettuce", ReferenceRow{Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, Fiber: 1.3, Sugar: 0.8, Sodium: 28}},
	// 乳製品
	{"milk", ReferenceRow{Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Fiber: 0, Sugar: 5.1, Sodium: 43}},
	{"cheese", ReferenceRow{Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33, Fiber: 0, Sugar: 0.5, Sodium: 621}},
	{"yogurt", ReferenceRow{Calories: 59, Protein: 3.5, Carbs: 3.6, Fat: 3.3, Fiber: 0, Sugar: 3.2, Sodium: 46}},
	{"butter", ReferenceRow{Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81, Fiber: 0, Sugar: 0.1, Sodium: 11}},
	{"cream", ReferenceRow{Calories: 340, Protein: 2.1, Carbs: 2.8, Fat: 36, Fiber: 0, Sugar: 2.8, Sodium: 38}},
	// 油脂
	{"olive oil", ReferenceRow{Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0, Sodium: 2}},
	{"coconut oil", ReferenceRow{Calories: 862, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0, Sodium: 0}},
	// 調味料
	{"salt", ReferenceRow{Calories: 0, Protein: 0, Carbs: 0, Fat: 0, Fiber: 0, Sugar: 0, Sodium: 38758}},
	{"pepper", ReferenceRow{Calories: 251, Protein: 10, Carbs: 64, Fat: 3.3, Fiber: 25, Sugar: 0.6, Sodium: 20}},
	{"sugar", ReferenceRow{Calories: 387, Protein: 0, Carbs: 100, Fat: 0, Fiber: 0, Sugar: 100, Sodium: 1}},
	{"honey", ReferenceRow{Calories: 304, Protein: 0.3, Carbs: 82, Fat: 0, Fiber: 0.2, Sugar: 82, Sodium: 4}},
	{"soy sauce", ReferenceRow{Calories: 53, Protein: 8, Carbs: 4.9, Fat: 0.1, Fiber: 0.8, Sugar: 1.7, Sodium: 5637}},
	// 水果
	{"apple", ReferenceRow{Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10, Sodium: 1}},
	{"banana", ReferenceRow{Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12, Sodium: 1}},
	{"orange", ReferenceRow{Calories: 47, Protein: 0.9, Carbs: 12, Fat: 0.1, Fiber: 2.4, Sugar: 9, Sodium: 0}},
	{"lemon", ReferenceRow{Calories: 29, Protein: 1.1, Carbs: 9.3, Fat: 0.3, Fiber: 2.8, Sugar: 2.5, Sodium: 2}},
	{"avocado", ReferenceRow{Calories: 160, Protein: 2, Carbs: 8.5, Fat: 15, Fiber: 6.7, Sugar: 0.7, Sodium: 7}},
	// 堅果種子
	{"almond", ReferenceRow{Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 12, Sugar: 4.4, Sodium: 1}},
	{"peanut", ReferenceRow{Calories: 567, Protein: 26, Carbs: 16, Fat: 49, Fiber: 8.5, Sugar: 4, Sodium: 18}},
	{"cashew", ReferenceRow{Calories: 553, Protein: 18, Carbs: 30, Fat: 44, Fiber: 3.3, Sugar: 6, Sodium: 12}},
}

// LookupReference 以正規化後的名稱查詢參考表
// 比對規則：表鍵為輸入的子字串，或輸入為表鍵的子字串，
// 大小寫不敏感，依宣告順序先中先贏
func LookupReference(ingredientName string) (ReferenceRow, bool) {
	name := common.NormalizeName(ingredientName)
	for _, entry := range referenceTable {
		if strings.Contains(name, entry.key) || strings.Contains(entry.key, name) {
			return entry.row, true
		}
	}
	return ReferenceRow{}, false
}
