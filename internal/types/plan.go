package types

import "time"

// Goal values accepted on a health profile.
const (
	GoalLoseFat      = "lose_fat"
	GoalGainMuscle   = "gain_muscle"
	GoalControlSugar = "control_sugar"
	GoalMaintain     = "maintain"
)

// Budget tiers shared by profiles and recipes.
const (
	BudgetEconomic = "economic"
	BudgetStandard = "standard"
	BudgetPremium  = "premium"
)

// Cooking-time buckets on a health profile.
const (
	CookingTimeQuick  = "<15"
	CookingTimeMedium = "15-30"
	CookingTimeLong   = ">30"
)

// Meal slot identifiers within a day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// Ingredient is a single recipe ingredient. Amount is kept as the decimal
// string the catalog supplies ("120", "1/2", "to taste").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// NutritionInfo holds per-recipe macros in grams plus calories.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// Recipe is the wire shape of a candidate recipe. Meal plans embed full
// snapshots of the selected recipes, so this is also the shape stored
// inside a plan document.
type Recipe struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	ImageURL    string        `json:"image_url"`
	Ingredients []Ingredient  `json:"ingredients"`
	Steps       []string      `json:"steps"`
	Nutrition   NutritionInfo `json:"nutrition"`
	CookingTime int           `json:"cooking_time"`
	Difficulty  string        `json:"difficulty"`
	Tags        []string      `json:"tags"`
	Cuisine     string        `json:"cuisine"`
	Budget      string        `json:"budget"`
}

// DailyMeals is one calendar day of a plan: one recipe per slot plus
// derived macro totals across the three meals.
type DailyMeals struct {
	Date          string  `json:"date"`
	Breakfast     Recipe  `json:"breakfast"`
	Lunch         Recipe  `json:"lunch"`
	Dinner        Recipe  `json:"dinner"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalFat      float64 `json:"total_fat"`
	TotalCarbs    float64 `json:"total_carbs"`
}

// MealPlan is a full week of meals. Week is the ISO date (YYYY-MM-DD) of
// the Sunday the plan starts on.
type MealPlan struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Week      string       `json:"week"`
	Meals     []DailyMeals `json:"meals"`
	CreatedAt time.Time    `json:"created_at"`
}

// HealthProfile is the planner's view of a user: everything the composer
// needs to compute targets and filter candidates, nothing else.
type HealthProfile struct {
	UserID             string   `json:"user_id"`
	Age                int      `json:"age"`
	Gender             string   `json:"gender"`
	HeightCm           float64  `json:"height_cm"`
	WeightKg           float64  `json:"weight_kg"`
	BodyFat            *float64 `json:"body_fat,omitempty"`
	Goal               string   `json:"goal"`
	CuisinePreferences []string `json:"cuisine_preferences"`
	Allergies          []string `json:"allergies"`
	Dislikes           []string `json:"dislikes"`
	CookingTime        string   `json:"cooking_time"`
	Budget             string   `json:"budget"`
}

// ShoppingItem is one merged ingredient line on a shopping list.
type ShoppingItem struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Amount         string  `json:"amount"`
	Unit           string  `json:"unit"`
	Category       string  `json:"category"`
	IsChecked      bool    `json:"is_checked"`
	EstimatedPrice float64 `json:"estimated_price"`
}

// ShoppingList is the aggregated, price-estimated projection of a meal plan.
type ShoppingList struct {
	ID                 string         `json:"id"`
	WeekStartDate      string         `json:"week_start_date"`
	Items              []ShoppingItem `json:"items"`
	TotalEstimatedCost float64        `json:"total_estimated_cost"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}
