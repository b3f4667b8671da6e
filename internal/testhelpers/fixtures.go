package testhelpers

import (
	"testing"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

// CreateUser inserts a user with the given credentials and returns it.
func CreateUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return &user
}

// CreateProfile inserts a permissive health profile for the user. Callers
// mutate the returned row and Save it when a test needs different fields.
func CreateProfile(t *testing.T, db *gorm.DB, userID uuid.UUID) *models.UserProfile {
	t.Helper()

	profile := models.UserProfile{
		ID:                 uuid.New(),
		UserID:             userID,
		Age:                30,
		Gender:             "male",
		HeightCm:           180,
		WeightKg:           80,
		Goal:               types.GoalMaintain,
		CuisinePreferences: models.JSONBStringArray{"Chinese", "Western"},
		Allergies:          models.JSONBStringArray{},
		Dislikes:           models.JSONBStringArray{},
		CookingTime:        types.CookingTimeLong,
		Budget:             types.BudgetStandard,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return &profile
}

// CreateRecipe inserts a catalog recipe with sensible defaults, applying
// any mutators first.
func CreateRecipe(t *testing.T, db *gorm.DB, name string, mutators ...func(*models.Recipe)) *models.Recipe {
	t.Helper()

	recipe := models.Recipe{
		ID:   uuid.New(),
		Name: name,
		Ingredients: models.JSONBIngredients{
			{Name: "Chicken breast", Amount: "150", Unit: "g"},
			{Name: "Rice", Amount: "1", Unit: "cup"},
		},
		Steps:       models.JSONBStringArray{"Cook the chicken", "Serve over rice"},
		Calories:    520,
		Protein:     35,
		Fat:         14,
		Carbs:       62,
		CookingTime: 25,
		Difficulty:  "easy",
		Tags:        models.JSONBStringArray{"lunch", "main"},
		Cuisine:     "Chinese",
		Budget:      types.BudgetStandard,
		Embedding:   pgvector.NewVector([]float32{float32(len(name)), 0, 0}),
	}
	for _, mutate := range mutators {
		mutate(&recipe)
	}
	if err := db.Create(&recipe).Error; err != nil {
		t.Fatalf("failed to create recipe: %v", err)
	}
	return &recipe
}
