package recipe

import "ai-kitchen/internal/pkg/common"

// dishSuggestions 固定的菜色建議清單，依菜系分組
var dishSuggestions = []common.DishSuggestion{
	// 印度
	{Name: "Butter Chicken", Icon: "🥘", Category: "Indian"},
	{Name: "Biryani", Icon: "🍚", Category: "Indian"},
	{Name: "Masala Dosa", Icon: "🥞", Category: "Indian"},
	{Name: "Palak Paneer", Icon: "🥬", Category: "Indian"},
	{Name: "Chole Bhature", Icon: "🍛", Category: "Indian"},
	{Name: "Samosa", Icon: "🥟", Category: "Indian"},
	{Name: "Tandoori Chicken", Icon: "🍗", Category: "Indian"},
	{Name: "Dal Makhani", Icon: "🥣", Category: "Indian"},
	{Name: "Rogan Josh", Icon: "🍖", Category: "Indian"},
	{Name: "Vada Pav", Icon: "🍔", Category: "Indian"},

	// 義大利
	{Name: "Pasta Carbonara", Icon: "🍝", Category: "Italian"},
	{Name: "Pizza Margherita", Icon: "🍕", Category: "Italian"},
	{Name: "Lasagna", Icon: "🧀", Category: "Italian"},
	{Name: "Risotto", Icon: "🍚", Category: "Italian"},
	{Name: "Tiramisu", Icon: "🍰", Category: "Italian"},
	{Name: "Ravioli", Icon: "🥟", Category: "Italian"},
	{Name: "Focaccia", Icon: "🍞", Category: "Italian"},
	{Name: "Gnocchi", Icon: "🥔", Category: "Italian"},

	// 墨西哥
	{Name: "Tacos", Icon: "🌮", Category: "Mexican"},
	{Name: "Burrito", Icon: "🌯", Category: "Mexican"},
	{Name: "Guacamole", Icon: "🥑", Category: "Mexican"},
	{Name: "Quesadilla", Icon: "🧀", Category: "Mexican"},
	{Name: "Enchiladas", Icon: "🌶️", Category: "Mexican"},
	{Name: "Nachos", Icon: "🌽", Category: "Mexican"},

	// 美式
	{Name: "Burger", Icon: "🍔", Category: "American"},
	{Name: "Mac and Cheese", Icon: "🧀", Category: "American"},
	{Name: "Hot Dog", Icon: "🌭", Category: "American"},
	{Name: "BBQ Ribs", Icon: "🍖", Category: "American"},
	{Name: "Fried Chicken", Icon: "🍗", Category: "American"},
	{Name: "Apple Pie", Icon: "🥧", Category: "American"},
	{Name: "Pancakes", Icon: "🥞", Category: "American"},

	// 亞洲（泰、日、中）
	{Name: "Pad Thai", Icon: "🍜", Category: "Thai"},
	{Name: "Tom Yum Soup", Icon: "🍲", Category: "Thai"},
	{Name: "Green Curry", Icon: "🍛", Category: "Thai"},
	{Name: "Sushi Roll", Icon: "🍣", Category: "Japanese"},
	{Name: "Ramen", Icon: "🍜", Category: "Japanese"},
	{Name: "Tempura", Icon: "🍤", Category: "Japanese"},
	{Name: "Kung Pao Chicken", Icon: "🍗", Category: "Chinese"},
	{Name: "Dim Sum", Icon: "🥟", Category: "Chinese"},
	{Name: "Spring Rolls", Icon: "🌯", Category: "Chinese"},
	{Name: "Peking Duck", Icon: "🦆", Category: "Chinese"},

	// 歐洲
	{Name: "Croissant", Icon: "🥐", Category: "French"},
	{Name: "Ratatouille", Icon: "🍆", Category: "French"},
	{Name: "Paella", Icon: "🥘", Category: "Spanish"},
	{Name: "Fish and Chips", Icon: "🐟", Category: "British"},
	{Name: "Beef Wellington", Icon: "🥩", Category: "British"},
	{Name: "Goulash", Icon: "🍲", Category: "Hungarian"},
	{Name: "Schnitzel", Icon: "🥩", Category: "German"},

	// 中東與其他
	{Name: "Falafel", Icon: "🧆", Category: "Middle Eastern"},
	{Name: "Hummus", Icon: "🥣", Category: "Middle Eastern"},
	{Name: "Shakshuka", Icon: "🍳", Category: "Middle Eastern"},
	{Name: "Kebab", Icon: "🍢", Category: "Middle Eastern"},
}

// DishSuggestions 取得菜色建議清單
func DishSuggestions() []common.DishSuggestion {
	return dishSuggestions
}
