package shopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panpal-app/backend/internal/types"
)

func mealWith(ings ...types.Ingredient) types.Recipe {
	return types.Recipe{ID: "r", Name: "Meal", Ingredients: ings}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 150.0, parseAmount("150"))
	assert.Equal(t, 1.5, parseAmount("1.5"))
	assert.Equal(t, 1.0, parseAmount("1/2"), "leading digits only, like parseFloat")
	assert.Equal(t, 0.0, parseAmount("a pinch"))
	assert.Equal(t, 0.0, parseAmount(""))
	assert.Equal(t, 2.0, parseAmount(" 2 tbsp"))
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, "Meat & Seafood", Categorize("Chicken breast"))
	assert.Equal(t, "Dairy", Categorize("Greek Yogurt"))
	assert.Equal(t, "Fruits", Categorize("Blueberry"))
	assert.Equal(t, "Vegetables", Categorize("Cherry tomato"))
	assert.Equal(t, "Grains & Bread", Categorize("Basmati Rice"))
	assert.Equal(t, "Pantry", Categorize("Olive oil"))
	assert.Equal(t, "Other", Categorize("Tofu"))
}

func TestEstimatePrice(t *testing.T) {
	assert.InDelta(t, 8.99*2, EstimatePrice("Chicken thigh", "2"), 1e-9)
	assert.InDelta(t, 3.99, EstimatePrice("Tofu", "a pinch"), 1e-9, "unparseable quantity defaults to 1")
	assert.InDelta(t, 3.99*3, EstimatePrice("Tofu", "3"), 1e-9, "unknown ingredient gets the default unit price")
	// Ordered table: "chicken" outranks later keywords in the same name.
	assert.InDelta(t, 8.99, EstimatePrice("Chicken and rice mix", "1"), 1e-9)
}

func TestBuildListMergesByNameAndUnit(t *testing.T) {
	plan := &types.MealPlan{
		Week: "2026-08-23",
		Meals: []types.DailyMeals{
			{
				Date:      "2026-08-23",
				Breakfast: mealWith(types.Ingredient{Name: "Chicken breast", Amount: "120", Unit: "g"}),
				Lunch:     mealWith(types.Ingredient{Name: "chicken Breast", Amount: "30", Unit: "g"}),
				Dinner:    mealWith(types.Ingredient{Name: "Chicken breast", Amount: "1", Unit: "lb"}),
			},
		},
	}

	list := BuildList(plan)
	require.Len(t, list.Items, 2, "same name with a different unit stays separate")

	merged := list.Items[0]
	assert.Equal(t, "Chicken breast", merged.Name, "first occurrence fixes the display name")
	assert.Equal(t, "150", merged.Amount)
	assert.Equal(t, "g", merged.Unit)
	assert.Equal(t, "Meat & Seafood", merged.Category)
	assert.False(t, merged.IsChecked)
	assert.InDelta(t, 8.99*120, merged.EstimatedPrice, 1e-9, "price is fixed at first insertion, merges do not re-price")

	assert.Equal(t, "lb", list.Items[1].Unit)
	assert.InDelta(t, merged.EstimatedPrice+8.99, list.TotalEstimatedCost, 1e-9)
}

func TestBuildListEmptyPlan(t *testing.T) {
	list := BuildList(&types.MealPlan{Week: "2026-08-23"})
	assert.Equal(t, "2026-08-23", list.WeekStartDate)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.TotalEstimatedCost)
}

func TestBuildListPreservesEncounterOrder(t *testing.T) {
	plan := &types.MealPlan{
		Week: "2026-08-23",
		Meals: []types.DailyMeals{
			{
				Breakfast: mealWith(
					types.Ingredient{Name: "Oats", Amount: "1", Unit: "cup"},
					types.Ingredient{Name: "Milk", Amount: "1", Unit: "cup"},
				),
				Lunch: mealWith(types.Ingredient{Name: "Rice", Amount: "1", Unit: "cup"}),
			},
		},
	}

	list := BuildList(plan)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Oats", list.Items[0].Name)
	assert.Equal(t, "Milk", list.Items[1].Name)
	assert.Equal(t, "Rice", list.Items[2].Name)
}
