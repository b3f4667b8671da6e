package shopping

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/types"
)

type fakeListStore struct {
	rows map[uuid.UUID]*models.ShoppingList
}

func newFakeListStore() *fakeListStore {
	return &fakeListStore{rows: make(map[uuid.UUID]*models.ShoppingList)}
}

func (f *fakeListStore) FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.ShoppingList, error) {
	for _, row := range f.rows {
		if row.UserID == userID && row.WeekStartDate == week {
			return row, nil
		}
	}
	return nil, ErrListNotFound
}

func (f *fakeListStore) FindByID(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	row, ok := f.rows[listID]
	if !ok || row.UserID != userID {
		return nil, ErrListNotFound
	}
	return row, nil
}

func (f *fakeListStore) Save(ctx context.Context, list *models.ShoppingList) error {
	f.rows[list.ID] = list
	return nil
}

type fakePlanSource struct {
	plan *models.MealPlan
}

func (f *fakePlanSource) FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.MealPlan, error) {
	if f.plan == nil || f.plan.UserID != userID || f.plan.Week != week {
		return nil, planner.ErrPlanNotFound
	}
	return f.plan, nil
}

func storedPlan(userID uuid.UUID) *models.MealPlan {
	return &models.MealPlan{
		ID:     uuid.New(),
		UserID: userID,
		Week:   "2026-08-23",
		Meals: []types.DailyMeals{
			{
				Date:      "2026-08-23",
				Breakfast: mealWith(types.Ingredient{Name: "Oats", Amount: "1", Unit: "cup"}),
				Lunch:     mealWith(types.Ingredient{Name: "Chicken breast", Amount: "150", Unit: "g"}),
				Dinner:    mealWith(types.Ingredient{Name: "Tofu", Amount: "200", Unit: "g"}),
			},
		},
	}
}

func TestGenerateForWeek(t *testing.T) {
	userID := uuid.New()
	lists := newFakeListStore()
	svc := NewService(lists, &fakePlanSource{plan: storedPlan(userID)}, zap.NewNop())

	list, err := svc.GenerateForWeek(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-23", list.WeekStartDate)
	assert.Len(t, list.Items, 3)
	assert.Len(t, lists.rows, 1)
}

func TestGenerateForWeekMissingPlan(t *testing.T) {
	svc := NewService(newFakeListStore(), &fakePlanSource{}, zap.NewNop())

	_, err := svc.GenerateForWeek(context.Background(), uuid.New(), "2026-08-23")
	assert.ErrorIs(t, err, planner.ErrPlanNotFound)
}

func TestGenerateForWeekReplacesExistingList(t *testing.T) {
	userID := uuid.New()
	lists := newFakeListStore()
	svc := NewService(lists, &fakePlanSource{plan: storedPlan(userID)}, zap.NewNop())

	first, err := svc.GenerateForWeek(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)

	// Check an item, then rebuild: the week keeps one list and the
	// checked state is gone.
	_, err = svc.ToggleItem(context.Background(), userID, uuid.MustParse(first.ID), first.Items[0].ID, true)
	require.NoError(t, err)

	second, err := svc.GenerateForWeek(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "rebuild reuses the week's row")
	assert.Len(t, lists.rows, 1)
	for _, item := range second.Items {
		assert.False(t, item.IsChecked)
	}
}

func TestGetByWeekNotFound(t *testing.T) {
	svc := NewService(newFakeListStore(), &fakePlanSource{}, zap.NewNop())

	_, err := svc.GetByWeek(context.Background(), uuid.New(), "2026-08-23")
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestToggleItem(t *testing.T) {
	userID := uuid.New()
	lists := newFakeListStore()
	svc := NewService(lists, &fakePlanSource{plan: storedPlan(userID)}, zap.NewNop())

	list, err := svc.GenerateForWeek(context.Background(), userID, "2026-08-23")
	require.NoError(t, err)
	listID := uuid.MustParse(list.ID)

	updated, err := svc.ToggleItem(context.Background(), userID, listID, list.Items[1].ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Items[1].IsChecked)
	assert.False(t, updated.Items[0].IsChecked)

	updated, err = svc.ToggleItem(context.Background(), userID, listID, list.Items[1].ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Items[1].IsChecked)

	_, err = svc.ToggleItem(context.Background(), userID, listID, "nope", true)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = svc.ToggleItem(context.Background(), uuid.New(), listID, list.Items[1].ID, true)
	assert.ErrorIs(t, err, ErrListNotFound, "another user's list is invisible")
}
