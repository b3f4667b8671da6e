package planner

import (
	"math"

	"github.com/panpal-app/backend/internal/types"
)

// fallbackRecipe is the synthetic meal used when no catalog recipe
// survives filtering. It carries the slot's calorie target exactly, with
// macros split 25/30/45 (protein/fat/carbs) by calorie weight.
func fallbackRecipe(targetCalories float64) types.Recipe {
	return types.Recipe{
		ID:       "fallback-recipe",
		Name:     "Balanced Meal",
		ImageURL: "",
		Ingredients: []types.Ingredient{
			{Name: "Protein source", Amount: "100", Unit: "g"},
			{Name: "Vegetables", Amount: "1", Unit: "cup"},
			{Name: "Grains", Amount: "1/2", Unit: "cup"},
		},
		Steps: []string{"Cook protein", "Prepare vegetables", "Serve with grains"},
		Nutrition: types.NutritionInfo{
			Calories: targetCalories,
			Protein:  math.Round(targetCalories * 0.25 / 4),
			Fat:      math.Round(targetCalories * 0.30 / 9),
			Carbs:    math.Round(targetCalories * 0.45 / 4),
		},
		CookingTime: 20,
		Difficulty:  "easy",
		Tags:        []string{"balanced", "healthy"},
		Cuisine:     "International",
		Budget:      types.BudgetStandard,
	}
}

// builtinRecipes is the reference pool used when the recipe catalog is
// unreachable, so plan generation always succeeds. One breakfast-type and
// one lunch-type recipe with fixed nutrition values.
func builtinRecipes() []types.Recipe {
	return []types.Recipe{
		{
			ID:   "fallback-1",
			Name: "Oatmeal with Berries",
			Ingredients: []types.Ingredient{
				{Name: "Oats", Amount: "1/2", Unit: "cup"},
				{Name: "Berries", Amount: "1/2", Unit: "cup"},
				{Name: "Almonds", Amount: "2", Unit: "tbsp"},
			},
			Steps:       []string{"Cook oats with water or milk", "Top with berries and almonds"},
			Nutrition:   types.NutritionInfo{Calories: 320, Protein: 12, Fat: 8, Carbs: 55},
			CookingTime: 10,
			Difficulty:  "easy",
			Tags:        []string{"breakfast", "healthy", "quick"},
			Cuisine:     "International",
			Budget:      types.BudgetEconomic,
		},
		{
			ID:   "fallback-2",
			Name: "Chicken Breast with Vegetables",
			Ingredients: []types.Ingredient{
				{Name: "Chicken breast", Amount: "150", Unit: "g"},
				{Name: "Broccoli", Amount: "1", Unit: "cup"},
				{Name: "Garlic", Amount: "3", Unit: "cloves"},
			},
			Steps:       []string{"Season and cook chicken", "Steam vegetables", "Combine and serve"},
			Nutrition:   types.NutritionInfo{Calories: 450, Protein: 35, Fat: 15, Carbs: 25},
			CookingTime: 25,
			Difficulty:  "medium",
			Tags:        []string{"lunch", "protein", "healthy"},
			Cuisine:     "International",
			Budget:      types.BudgetStandard,
		},
	}
}
