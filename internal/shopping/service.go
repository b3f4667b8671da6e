package shopping

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/panpal-app/backend/internal/metrics"
	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

var (
	// ErrListNotFound is returned by stores when no list exists for the
	// requested key.
	ErrListNotFound = errors.New("shopping list not found")
	// ErrItemNotFound is returned when a toggle targets an unknown item.
	ErrItemNotFound = errors.New("shopping list item not found")
)

// ListStore persists shopping lists.
type ListStore interface {
	FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.ShoppingList, error)
	FindByID(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error)
	Save(ctx context.Context, list *models.ShoppingList) error
}

// PlanSource resolves the plan a list is built from. Satisfied by the
// planner's plan store.
type PlanSource interface {
	FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.MealPlan, error)
}

// Service builds shopping lists from stored meal plans and tracks
// per-item checked state.
type Service struct {
	lists  ListStore
	plans  PlanSource
	logger *zap.Logger
}

// NewService creates a shopping Service.
func NewService(lists ListStore, plans PlanSource, logger *zap.Logger) *Service {
	return &Service{lists: lists, plans: plans, logger: logger}
}

// GenerateForWeek builds the list from the week's stored plan, replacing
// any existing list for that week so checked state does not survive a
// rebuild. Returns the planner's not-found error when no plan exists.
func (s *Service) GenerateForWeek(ctx context.Context, userID uuid.UUID, week string) (*types.ShoppingList, error) {
	plan, err := s.plans.FindByUserWeek(ctx, userID, week)
	if err != nil {
		return nil, err
	}

	built := BuildList(plan.Wire())

	row, err := s.lists.FindByUserWeek(ctx, userID, week)
	if err != nil {
		if !errors.Is(err, ErrListNotFound) {
			return nil, err
		}
		row = &models.ShoppingList{ID: uuid.New(), UserID: userID, WeekStartDate: week}
	}
	row.Items = built.Items
	row.TotalEstimatedCost = built.TotalEstimatedCost

	if err := s.lists.Save(ctx, row); err != nil {
		return nil, err
	}

	s.logger.Info("shopping list generated",
		zap.String("user_id", userID.String()),
		zap.String("week", week),
		zap.Int("items", len(row.Items)))
	metrics.ShoppingListsBuilt.Inc()

	return row.Wire(), nil
}

// GetByWeek returns the stored list for (user, week).
func (s *Service) GetByWeek(ctx context.Context, userID uuid.UUID, week string) (*types.ShoppingList, error) {
	row, err := s.lists.FindByUserWeek(ctx, userID, week)
	if err != nil {
		return nil, err
	}
	return row.Wire(), nil
}

// ToggleItem sets one item's checked state and returns the updated list.
func (s *Service) ToggleItem(ctx context.Context, userID, listID uuid.UUID, itemID string, isChecked bool) (*types.ShoppingList, error) {
	row, err := s.lists.FindByID(ctx, userID, listID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range row.Items {
		if row.Items[i].ID == itemID {
			row.Items[i].IsChecked = isChecked
			found = true
			break
		}
	}
	if !found {
		return nil, ErrItemNotFound
	}

	if err := s.lists.Save(ctx, row); err != nil {
		return nil, err
	}
	return row.Wire(), nil
}
