package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/planner"
	"github.com/panpal-app/backend/internal/shopping"
)

// PlanRepository is the gorm-backed plan store used by the planner and
// the shopping service.
type PlanRepository struct {
	db *gorm.DB
}

var _ planner.PlanStore = (*PlanRepository)(nil)

// NewPlanRepository creates a PlanRepository.
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// FindByUserWeek loads the plan row for (user, week).
func (r *PlanRepository) FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.db.WithContext(ctx).Where("user_id = ? AND week = ?", userID, week).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, planner.ErrPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// Save upserts the plan row by primary key.
func (r *PlanRepository) Save(ctx context.Context, plan *models.MealPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// ShoppingListRepository is the gorm-backed shopping list store.
type ShoppingListRepository struct {
	db *gorm.DB
}

var _ shopping.ListStore = (*ShoppingListRepository)(nil)

// NewShoppingListRepository creates a ShoppingListRepository.
func NewShoppingListRepository(db *gorm.DB) *ShoppingListRepository {
	return &ShoppingListRepository{db: db}
}

// FindByUserWeek loads the list row for (user, week).
func (r *ShoppingListRepository) FindByUserWeek(ctx context.Context, userID uuid.UUID, week string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.db.WithContext(ctx).Where("user_id = ? AND week_start_date = ?", userID, week).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shopping.ErrListNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// FindByID loads a list by id, scoped to its owner.
func (r *ShoppingListRepository) FindByID(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, shopping.ErrListNotFound
	}
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Save upserts the list row by primary key.
func (r *ShoppingListRepository) Save(ctx context.Context, list *models.ShoppingList) error {
	return r.db.WithContext(ctx).Save(list).Error
}
