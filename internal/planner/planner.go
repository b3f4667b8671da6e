// Package planner assembles personalized weekly meal plans from a recipe
// catalog and a user's health profile. Selection is a scoring heuristic
// over hard-filtered candidates, not a constraint solver.
package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/metrics"
	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

var (
	// ErrPlanNotFound is returned by stores when no plan exists for a
	// (user, week) pair.
	ErrPlanNotFound = errors.New("meal plan not found")
	// ErrDayNotFound is returned when a regeneration targets a date
	// outside the stored plan.
	ErrDayNotFound = errors.New("date not in meal plan")
)

// RecipePool supplies candidate recipes. Implementations may cache; the
// planner treats the pool as read-only reference data.
type RecipePool interface {
	ListRecipes(ctx context.Context) ([]types.Recipe, error)
}

// PlanStore persists meal plans keyed by (user, week).
type PlanStore interface {
	FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.MealPlan, error)
	Save(ctx context.Context, plan *models.MealPlan) error
}

// ProfileStore supplies the health profile for a user.
type ProfileStore interface {
	GetHealthProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error)
}

// Planner composes weekly meal plans. All collaborators are injected so
// the planner can run against fake stores in tests.
type Planner struct {
	pool     RecipePool
	plans    PlanStore
	profiles ProfileStore
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a Planner instance.
func New(pool RecipePool, plans PlanStore, profiles ProfileStore, logger *zap.Logger) *Planner {
	return &Planner{
		pool:     pool,
		plans:    plans,
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate builds a 7-day plan for the current week and persists it,
// overwriting the week's existing plan row if one exists so at most one
// plan per (user, week) survives. A persistence failure is logged and
// swallowed: the generated plan is still valid for the caller.
func (pl *Planner) Generate(ctx context.Context, profile *types.HealthProfile) (*types.MealPlan, error) {
	userID, err := uuid.Parse(profile.UserID)
	if err != nil {
		return nil, err
	}

	weekStart := WeekStart(pl.now())
	week := weekStart.Format(isoDate)

	pool := pl.loadPool(ctx)
	dailyCalories := float64(DailyCalorieTarget(profile))

	meals := make([]types.DailyMeals, 0, 7)
	for i := 0; i < 7; i++ {
		meals = append(meals, pl.generateDay(profile, pool, weekStart.AddDate(0, 0, i), dailyCalories))
	}

	row, err := pl.plans.FindByUserWeek(ctx, userID, week)
	if err != nil {
		if !errors.Is(err, ErrPlanNotFound) {
			return nil, err
		}
		row = &models.MealPlan{ID: uuid.New(), UserID: userID, Week: week}
	}
	row.Meals = meals

	if err := pl.plans.Save(ctx, row); err != nil {
		pl.logger.Warn("saving meal plan failed, returning unpersisted plan",
			zap.String("user_id", profile.UserID),
			zap.String("week", week),
			zap.Error(err))
	}

	metrics.PlansGenerated.Inc()
	return row.Wire(), nil
}

// Get returns the stored plan for (user, week), or an empty shell when
// none exists so callers can tell "never generated" from a failure.
func (pl *Planner) Get(ctx context.Context, userID uuid.UUID, week string) (*types.MealPlan, error) {
	row, err := pl.plans.FindByUserWeek(ctx, userID, week)
	if errors.Is(err, ErrPlanNotFound) {
		return &types.MealPlan{UserID: userID.String(), Week: week}, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Wire(), nil
}

// RegenerateDay re-runs selection for a single (date, mealType) slot
// against the current profile and pool, then persists the whole plan
// document. Two concurrent regenerations of the same week race as
// last-writer-wins; there is no version check.
func (pl *Planner) RegenerateDay(ctx context.Context, userID uuid.UUID, week, date, mealType string) (*types.MealPlan, error) {
	row, err := pl.plans.FindByUserWeek(ctx, userID, week)
	if err != nil {
		return nil, err
	}

	profile, err := pl.profiles.GetHealthProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	dayIdx := -1
	for i := range row.Meals {
		if row.Meals[i].Date == date {
			dayIdx = i
			break
		}
	}
	if dayIdx == -1 {
		return nil, ErrDayNotFound
	}

	pool := pl.loadPool(ctx)
	dailyCalories := float64(DailyCalorieTarget(profile))
	recipe := pl.selectForSlot(profile, pool, mealType, dailyCalories)

	day := row.Meals[dayIdx]
	switch mealType {
	case types.MealBreakfast:
		day.Breakfast = recipe
	case types.MealLunch:
		day.Lunch = recipe
	case types.MealDinner:
		day.Dinner = recipe
	}
	recomputeTotals(&day)
	row.Meals[dayIdx] = day

	if err := pl.plans.Save(ctx, row); err != nil {
		pl.logger.Warn("saving regenerated plan failed, returning unpersisted plan",
			zap.String("user_id", userID.String()),
			zap.String("week", week),
			zap.Error(err))
	}

	return row.Wire(), nil
}

// Suggestions returns up to limit recipes eligible for the given slot
// under the user's profile, in pool order.
func (pl *Planner) Suggestions(ctx context.Context, userID uuid.UUID, mealType string, limit int) ([]types.Recipe, error) {
	profile, err := pl.profiles.GetHealthProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	filtered := FilterForSlot(pl.loadPool(ctx), mealType, profile)
	if limit > 0 && len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered, nil
}

// loadPool fetches the candidate pool, falling back to the built-in
// reference set when the catalog is unreachable or empty. Generation must
// always succeed.
func (pl *Planner) loadPool(ctx context.Context) []types.Recipe {
	recipes, err := pl.pool.ListRecipes(ctx)
	if err != nil {
		pl.logger.Warn("recipe catalog unavailable, using built-in fallback set", zap.Error(err))
		return builtinRecipes()
	}
	if len(recipes) == 0 {
		return builtinRecipes()
	}
	return recipes
}

func (pl *Planner) generateDay(profile *types.HealthProfile, pool []types.Recipe, date time.Time, dailyCalories float64) types.DailyMeals {
	day := types.DailyMeals{
		Date:      date.Format(isoDate),
		Breakfast: pl.selectForSlot(profile, pool, types.MealBreakfast, dailyCalories),
		Lunch:     pl.selectForSlot(profile, pool, types.MealLunch, dailyCalories),
		Dinner:    pl.selectForSlot(profile, pool, types.MealDinner, dailyCalories),
	}
	recomputeTotals(&day)
	return day
}

func (pl *Planner) selectForSlot(profile *types.HealthProfile, pool []types.Recipe, mealType string, dailyCalories float64) types.Recipe {
	target := dailyCalories * slotCalorieWeights[mealType]
	candidates := FilterForSlot(pool, mealType, profile)
	if recipe, ok := selectBest(candidates, target, profile); ok {
		return recipe
	}
	metrics.FallbackMeals.Inc()
	return fallbackRecipe(target)
}

func recomputeTotals(day *types.DailyMeals) {
	day.TotalCalories = day.Breakfast.Nutrition.Calories + day.Lunch.Nutrition.Calories + day.Dinner.Nutrition.Calories
	day.TotalProtein = day.Breakfast.Nutrition.Protein + day.Lunch.Nutrition.Protein + day.Dinner.Nutrition.Protein
	day.TotalFat = day.Breakfast.Nutrition.Fat + day.Lunch.Nutrition.Fat + day.Dinner.Nutrition.Fat
	day.TotalCarbs = day.Breakfast.Nutrition.Carbs + day.Lunch.Nutrition.Carbs + day.Dinner.Nutrition.Carbs
}
