package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

type fakePool struct {
	recipes []types.Recipe
	err     error
}

func (f *fakePool) ListRecipes(ctx context.Context) ([]types.Recipe, error) {
	return f.recipes, f.err
}

type fakePlans struct {
	rows    map[string]*models.MealPlan
	saveErr error
}

func newFakePlans() *fakePlans {
	return &fakePlans{rows: make(map[string]*models.MealPlan)}
}

func (f *fakePlans) key(userID uuid.UUID, week string) string {
	return userID.String() + "/" + week
}

func (f *fakePlans) FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.MealPlan, error) {
	row, ok := f.rows[f.key(userID, week)]
	if !ok {
		return nil, ErrPlanNotFound
	}
	return row, nil
}

func (f *fakePlans) Save(ctx context.Context, plan *models.MealPlan) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rows[f.key(plan.UserID, plan.Week)] = plan
	return nil
}

type fakeProfiles struct {
	profile *types.HealthProfile
	err     error
}

func (f *fakeProfiles) GetHealthProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error) {
	return f.profile, f.err
}

// fullWeekPool has one eligible recipe per slot under a permissive
// standard-budget profile.
func fullWeekPool() []types.Recipe {
	breakfast := ruleRecipe()
	breakfast.ID = "pool-breakfast"
	breakfast.Name = "Veggie Omelette"
	breakfast.Tags = []string{"breakfast", "eggs"}
	breakfast.Ingredients = []types.Ingredient{{Name: "Eggs", Amount: "3", Unit: "pcs"}}
	breakfast.Nutrition = types.NutritionInfo{Calories: 380, Protein: 22, Fat: 18, Carbs: 10}

	lunch := ruleRecipe()
	lunch.ID = "pool-lunch"

	dinner := ruleRecipe()
	dinner.ID = "pool-dinner"
	dinner.Name = "Miso Soup with Tofu"
	dinner.Tags = []string{"dinner", "soup"}
	dinner.Ingredients = []types.Ingredient{{Name: "Tofu", Amount: "200", Unit: "g"}}
	dinner.Nutrition = types.NutritionInfo{Calories: 520, Protein: 25, Fat: 14, Carbs: 60}

	return []types.Recipe{breakfast, lunch, dinner}
}

func testPlanner(pool *fakePool, plans *fakePlans, profiles *fakeProfiles) *Planner {
	pl := New(pool, plans, profiles, zap.NewNop())
	pl.now = func() time.Time {
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // a Wednesday
	}
	return pl
}

func testWireProfile() *types.HealthProfile {
	p := permissiveProfile()
	p.UserID = uuid.NewString()
	return p
}

func TestGenerateSevenConsecutiveDays(t *testing.T) {
	profile := testWireProfile()
	plans := newFakePlans()
	pl := testPlanner(&fakePool{recipes: fullWeekPool()}, plans, &fakeProfiles{profile: profile})

	plan, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, "2026-08-23", plan.Week)
	require.Len(t, plan.Meals, 7)
	for i, day := range plan.Meals {
		assert.Equal(t, fmt.Sprintf("2026-08-%02d", 23+i), day.Date)
		assert.Equal(t, "pool-breakfast", day.Breakfast.ID)
		assert.Equal(t, "pool-lunch", day.Lunch.ID)
		assert.Equal(t, "pool-dinner", day.Dinner.ID)
		assert.InDelta(t, 380+420+520, day.TotalCalories, 1e-9)
	}

	// Plan was persisted under the computed week.
	stored, err := plans.FindByUserWeek(context.Background(), uuid.MustParse(profile.UserID), "2026-08-23")
	require.NoError(t, err)
	assert.Len(t, []types.DailyMeals(stored.Meals), 7)
}

func TestGenerateNeverViolatesAllergies(t *testing.T) {
	profile := testWireProfile()
	profile.Allergies = []string{"chicken", "egg"}

	pl := testPlanner(&fakePool{recipes: fullWeekPool()}, newFakePlans(), &fakeProfiles{profile: profile})

	plan, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	for _, day := range plan.Meals {
		for _, r := range []types.Recipe{day.Breakfast, day.Lunch, day.Dinner} {
			for _, ing := range r.Ingredients {
				name := strings.ToLower(ing.Name)
				assert.NotContains(t, name, "chicken")
				assert.NotContains(t, name, "egg")
			}
		}
	}
}

func TestGenerateFallbackCarriesSlotTarget(t *testing.T) {
	profile := testWireProfile() // target 2556, maintain
	pl := testPlanner(&fakePool{recipes: nil}, newFakePlans(), &fakeProfiles{profile: profile})

	plan, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	// Under a standard budget the built-in oatmeal is filtered out and
	// nothing carries a dinner tag, so both slots fall back. Fallback
	// meals carry the slot target exactly.
	day := plan.Meals[0]
	assert.Equal(t, "fallback-recipe", day.Breakfast.ID)
	assert.InDelta(t, 2556*0.25, day.Breakfast.Nutrition.Calories, 1e-9)
	assert.Equal(t, "fallback-recipe", day.Dinner.ID)
	assert.InDelta(t, 2556*0.40, day.Dinner.Nutrition.Calories, 1e-9)
}

func TestGeneratePoolErrorFallsBackToBuiltins(t *testing.T) {
	profile := testWireProfile()
	profile.Budget = types.BudgetEconomic
	profile.CookingTime = types.CookingTimeQuick

	pl := testPlanner(&fakePool{err: errors.New("catalog down")}, newFakePlans(), &fakeProfiles{profile: profile})

	plan, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, "fallback-1", plan.Meals[0].Breakfast.ID, "built-in oatmeal survives an economic quick profile")
}

func TestGenerateSurvivesPersistenceFailure(t *testing.T) {
	profile := testWireProfile()
	plans := newFakePlans()
	plans.saveErr = errors.New("db down")

	pl := testPlanner(&fakePool{recipes: fullWeekPool()}, plans, &fakeProfiles{profile: profile})

	plan, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)
	assert.Len(t, plan.Meals, 7)
}

func TestGenerateOverwritesExistingWeek(t *testing.T) {
	profile := testWireProfile()
	plans := newFakePlans()
	pl := testPlanner(&fakePool{recipes: fullWeekPool()}, plans, &fakeProfiles{profile: profile})

	first, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)
	second, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "regeneration reuses the week's row")
	assert.Len(t, plans.rows, 1)
}

func TestGetReturnsEmptyShellWhenMissing(t *testing.T) {
	userID := uuid.New()
	pl := testPlanner(&fakePool{}, newFakePlans(), &fakeProfiles{})

	plan, err := pl.Get(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), plan.UserID)
	assert.Equal(t, "2026-08-23", plan.Week)
	assert.Empty(t, plan.Meals)
	assert.Empty(t, plan.ID)
}

func TestRegenerateDayReplacesSingleSlot(t *testing.T) {
	profile := testWireProfile()
	plans := newFakePlans()
	pool := &fakePool{recipes: fullWeekPool()}
	pl := testPlanner(pool, plans, &fakeProfiles{profile: profile})

	before, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	// A new lunch recipe closer to the slot target wins the next pick.
	better := ruleRecipe()
	better.ID = "pool-lunch-2"
	better.Nutrition.Calories = 2556 * 0.35
	pool.recipes = append(pool.recipes, better)

	after, err := pl.RegenerateDay(context.Background(), uuid.MustParse(profile.UserID), "2026-08-23", "2026-08-25", types.MealLunch)
	require.NoError(t, err)

	for i := range after.Meals {
		if after.Meals[i].Date == "2026-08-25" {
			assert.Equal(t, "pool-lunch-2", after.Meals[i].Lunch.ID)
			assert.Equal(t, before.Meals[i].Breakfast, after.Meals[i].Breakfast)
			assert.Equal(t, before.Meals[i].Dinner, after.Meals[i].Dinner)
			expected := after.Meals[i].Breakfast.Nutrition.Calories +
				after.Meals[i].Lunch.Nutrition.Calories +
				after.Meals[i].Dinner.Nutrition.Calories
			assert.InDelta(t, expected, after.Meals[i].TotalCalories, 1e-9)
			continue
		}
		assert.Equal(t, before.Meals[i], after.Meals[i], "untouched days stay identical")
	}
}

func TestRegenerateDayUnknownDate(t *testing.T) {
	profile := testWireProfile()
	plans := newFakePlans()
	pl := testPlanner(&fakePool{recipes: fullWeekPool()}, plans, &fakeProfiles{profile: profile})

	_, err := pl.Generate(context.Background(), profile)
	require.NoError(t, err)

	_, err = pl.RegenerateDay(context.Background(), uuid.MustParse(profile.UserID), "2026-08-23", "2026-09-25", types.MealLunch)
	assert.ErrorIs(t, err, ErrDayNotFound)
}

func TestRegenerateDayMissingPlan(t *testing.T) {
	pl := testPlanner(&fakePool{}, newFakePlans(), &fakeProfiles{profile: testWireProfile()})

	_, err := pl.RegenerateDay(context.Background(), uuid.New(), "2026-08-23", "2026-08-25", types.MealLunch)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestSuggestionsLimited(t *testing.T) {
	profile := testWireProfile()
	var recipes []types.Recipe
	for i := 0; i < 5; i++ {
		r := ruleRecipe()
		r.ID = fmt.Sprintf("lunch-%d", i)
		recipes = append(recipes, r)
	}
	pl := testPlanner(&fakePool{recipes: recipes}, newFakePlans(), &fakeProfiles{profile: profile})

	out, err := pl.Suggestions(context.Background(), uuid.New(), types.MealLunch, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "lunch-0", out[0].ID)
}
