// Package integration runs the service stack end to end against a
// containerized PostgreSQL with pgvector. These tests need docker and are
// skipped in -short runs.
package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/service"
	"github.com/panpal-app/backend/internal/shopping"
	"github.com/panpal-app/backend/internal/testhelpers"
	"github.com/panpal-app/backend/internal/types"
)

func TestPostgresEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()
	logger := zap.NewNop()

	authService := service.NewAuthService(db, "integration-secret")
	profileService := service.NewProfileService(db)
	catalogService := service.NewCatalogService(db, nil, logger)
	planStore := service.NewPlanRepository(db)
	listStore := service.NewShoppingListRepository(db)
	mealPlanner := planner.New(catalogService, planStore, profileService, logger)
	shoppingService := shopping.NewService(listStore, planStore, logger)

	user, token, err := authService.Register(ctx, &types.RegisterRequest{
		Email:              "integration@example.com",
		Password:           "password123",
		Name:               "Integration Tester",
		Age:                30,
		Gender:             "female",
		HeightCm:           168,
		WeightKg:           62,
		Goal:               types.GoalMaintain,
		CuisinePreferences: []string{"Chinese", "Western"},
		CookingTime:        types.CookingTimeLong,
		Budget:             types.BudgetStandard,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	seed := []struct {
		name string
		tags []string
	}{
		{"Veggie Omelette", []string{"breakfast", "eggs"}},
		{"Kung Pao Chicken", []string{"lunch", "main"}},
		{"Tomato Egg Soup", []string{"dinner", "soup"}},
	}
	for _, s := range seed {
		_, err := catalogService.CreateRecipe(ctx, &types.CreateRecipeRequest{
			Name: s.name,
			Ingredients: []types.Ingredient{
				{Name: "Chicken breast", Amount: "150", Unit: "g"},
				{Name: "Rice", Amount: "1", Unit: "cup"},
			},
			Steps:       []string{"Cook", "Serve"},
			Nutrition:   types.NutritionInfo{Calories: 480, Protein: 30, Fat: 14, Carbs: 55},
			CookingTime: 25,
			Difficulty:  "easy",
			Tags:        s.tags,
			Cuisine:     "Chinese",
			Budget:      types.BudgetStandard,
		})
		require.NoError(t, err)
	}

	// Vector search runs the pgvector nearest-neighbor path.
	results, err := catalogService.SearchRecipes(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Kung Pao Chicken", results[0].Name)

	profile, err := profileService.GetHealthProfile(ctx, user.ID)
	require.NoError(t, err)

	plan, err := mealPlanner.Generate(ctx, profile)
	require.NoError(t, err)
	require.Len(t, plan.Meals, 7)
	for _, day := range plan.Meals {
		assert.Equal(t, "Veggie Omelette", day.Breakfast.Name)
		assert.Equal(t, "Kung Pao Chicken", day.Lunch.Name)
		assert.Equal(t, "Tomato Egg Soup", day.Dinner.Name)
	}

	// The JSONB plan document round-trips through Postgres.
	stored, err := planStore.FindByUserWeek(ctx, user.ID, plan.Week)
	require.NoError(t, err)
	require.Len(t, stored.Meals, 7)
	assert.Equal(t, plan.Meals[0].Breakfast.ID, stored.Meals[0].Breakfast.ID)

	list, err := shoppingService.GenerateForWeek(ctx, user.ID, plan.Week)
	require.NoError(t, err)
	require.NotEmpty(t, list.Items)
	assert.Greater(t, list.TotalEstimatedCost, 0.0)

	// Check-ins and rewards against the same database.
	checkInService := service.NewCheckInService(db, nil, logger)
	today := time.Now().Format("2006-01-02")
	checkIn, err := checkInService.Create(ctx, user.ID, &types.CreateCheckInRequest{
		Date:     today,
		MealType: types.MealLunch,
	})
	require.NoError(t, err)
	assert.True(t, checkIn.Completed)

	rewards, err := checkInService.ListRewards(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 2)
}

func TestPostgresVectorOrdering(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()
	catalogService := service.NewCatalogService(db, nil, zap.NewNop())

	for _, name := range []string{"Chicken Soup", "Chicken and Mushroom Casserole"} {
		_, err := catalogService.CreateRecipe(ctx, &types.CreateRecipeRequest{
			Name:        name,
			Ingredients: []types.Ingredient{{Name: "Chicken", Amount: "1", Unit: "pcs"}},
			Steps:       []string{"Cook"},
			Nutrition:   types.NutritionInfo{Calories: 400, Protein: 30, Fat: 10, Carbs: 40},
			CookingTime: 30,
			Difficulty:  "easy",
			Tags:        []string{"dinner"},
			Cuisine:     "Western",
			Budget:      types.BudgetStandard,
		})
		require.NoError(t, err)
	}

	// Both names match the keyword; the shorter one embeds closer to the
	// query and sorts first.
	results, err := catalogService.SearchRecipes(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Chicken Soup", results[0].Name)

	var row models.Recipe
	require.NoError(t, db.First(&row, "name = ?", "Chicken Soup").Error)
	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.Equal(t, service.GenerateEmbedding("Chicken Soup").Slice(), row.Embedding.Slice())
}
