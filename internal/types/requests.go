package types

// RegisterRequest represents the request body for signing up. The full
// health profile is collected at registration so plan generation can run
// immediately afterwards.
type RegisterRequest struct {
	Email              string   `json:"email" binding:"required,email"`
	Password           string   `json:"password" binding:"required,min=8"`
	Name               string   `json:"name" binding:"required"`
	Age                int      `json:"age" binding:"required,gte=13,lte=120"`
	Gender             string   `json:"gender" binding:"required,oneof=male female"`
	HeightCm           float64  `json:"height_cm" binding:"required,gte=100,lte=250"`
	WeightKg           float64  `json:"weight_kg" binding:"required,gte=30,lte=300"`
	BodyFat            *float64 `json:"body_fat" binding:"omitempty,gte=0,lte=75"`
	Goal               string   `json:"goal" binding:"required,oneof=lose_fat gain_muscle control_sugar maintain"`
	CuisinePreferences []string `json:"cuisine_preferences" binding:"required,min=1"`
	Allergies          []string `json:"allergies"`
	Dislikes           []string `json:"dislikes"`
	CookingTime        string   `json:"cooking_time" binding:"required,oneof=<15 15-30 >30"`
	Budget             string   `json:"budget" binding:"required,oneof=economic standard premium"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a partial update to a health profile.
// Pointer fields distinguish "absent" from zero values.
type UpdateProfileRequest struct {
	Age                *int     `json:"age" binding:"omitempty,gte=13,lte=120"`
	Gender             *string  `json:"gender" binding:"omitempty,oneof=male female"`
	HeightCm           *float64 `json:"height_cm" binding:"omitempty,gte=100,lte=250"`
	WeightKg           *float64 `json:"weight_kg" binding:"omitempty,gte=30,lte=300"`
	BodyFat            *float64 `json:"body_fat" binding:"omitempty,gte=0,lte=75"`
	Goal               *string  `json:"goal" binding:"omitempty,oneof=lose_fat gain_muscle control_sugar maintain"`
	CuisinePreferences []string `json:"cuisine_preferences" binding:"omitempty,min=1"`
	Allergies          []string `json:"allergies"`
	Dislikes           []string `json:"dislikes"`
	CookingTime        *string  `json:"cooking_time" binding:"omitempty,oneof=<15 15-30 >30"`
	Budget             *string  `json:"budget" binding:"omitempty,oneof=economic standard premium"`
}

// CreateRecipeRequest represents the request body for adding a recipe to
// the catalog.
type CreateRecipeRequest struct {
	Name        string        `json:"name" binding:"required"`
	ImageURL    string        `json:"image_url"`
	Ingredients []Ingredient  `json:"ingredients" binding:"required,min=1"`
	Steps       []string      `json:"steps" binding:"required,min=1"`
	Nutrition   NutritionInfo `json:"nutrition" binding:"required"`
	CookingTime int           `json:"cooking_time" binding:"required,gte=1"`
	Difficulty  string        `json:"difficulty" binding:"required,oneof=easy medium hard"`
	Tags        []string      `json:"tags"`
	Cuisine     string        `json:"cuisine" binding:"required"`
	Budget      string        `json:"budget" binding:"required,oneof=economic standard premium"`
}

// UpdateRecipeRequest mirrors CreateRecipeRequest without the required
// bindings; zero fields are left untouched.
type UpdateRecipeRequest struct {
	Name        string        `json:"name"`
	ImageURL    string        `json:"image_url"`
	Ingredients []Ingredient  `json:"ingredients"`
	Steps       []string      `json:"steps"`
	Nutrition   NutritionInfo `json:"nutrition"`
	CookingTime int           `json:"cooking_time"`
	Difficulty  string        `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Tags        []string      `json:"tags"`
	Cuisine     string        `json:"cuisine"`
	Budget      string        `json:"budget" binding:"omitempty,oneof=economic standard premium"`
}

// RegenerateDayRequest asks the planner to rebuild a single slot.
type RegenerateDayRequest struct {
	Week     string `json:"week" binding:"required,isodate"`
	Date     string `json:"date" binding:"required,isodate"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner"`
}

// GenerateShoppingListRequest builds the shopping list for a stored plan.
type GenerateShoppingListRequest struct {
	Week string `json:"week" binding:"required,isodate"`
}

// ToggleItemRequest flips the checked state of one shopping list item.
type ToggleItemRequest struct {
	IsChecked *bool `json:"is_checked" binding:"required"`
}

// CreateCheckInRequest records that a planned meal was eaten.
type CreateCheckInRequest struct {
	Date     string `json:"date" binding:"required,isodate"`
	MealType string `json:"meal_type" binding:"required,oneof=breakfast lunch dinner"`
}
