package common

// Ingredient 食材：名稱與份量皆為自由文字，解析後不再修改
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// NutritionFacts 每份營養資訊（皆為推導值，非使用者輸入）
// 除 calories 外的欄位皆為帶單位的定精度字串（"12.3g"、"150mg"）
type NutritionFacts struct {
	Calories     int    `json:"calories"`
	Protein      string `json:"protein"`
	Carbs        string `json:"carbs"`
	Fat          string `json:"fat"`
	Fiber        string `json:"fiber"`
	Sugar        string `json:"sugar"`
	Sodium       string `json:"sodium"`
	SaturatedFat string `json:"saturated_fat"`
}

// 飲食類型
const (
	DietaryVeg    = "Veg"
	DietaryNonVeg = "Non-Veg"
	DietaryVegan  = "Vegan"
)

// RecipeRecord 完整食譜記錄
// ID 為合成鍵，格式 {source-tag}-{slug(菜名)}，同一來源同一菜名必定相同
type RecipeRecord struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Category     string         `json:"category"`
	Area         string         `json:"area"`
	Instructions []string       `json:"instructions"`
	Ingredients  []Ingredient   `json:"ingredients"`
	ImageURL     string         `json:"image_url"`
	PrepTime     string         `json:"prep_time"`
	CookTime     string         `json:"cook_time"`
	Servings     int            `json:"servings"`
	Nutrition    NutritionFacts `json:"nutrition"`
	YoutubeURL   string         `json:"youtube_url,omitempty"`
	RelatedDishes []string      `json:"related_dishes"`
	DietaryType  string         `json:"dietary_type"`
}

// RecipeSuggestion 依食材搜尋的精簡食譜結果
type RecipeSuggestion struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Thumbnail    string   `json:"thumbnail"`
	Category     string   `json:"category,omitempty"`
	Ingredients  []string `json:"ingredients,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
}

// ReplacementSuggestion 食材替代建議
type ReplacementSuggestion struct {
	Original     string   `json:"original"`
	Alternatives []string `json:"alternatives"`
	Notes        string   `json:"notes"`
}

// DishSuggestion 預設菜色建議
type DishSuggestion struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category,omitempty"`
}
