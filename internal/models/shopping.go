package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/types"
)

// ShoppingList is the persisted projection of a meal plan's ingredients.
// Regenerating the plan replaces the list for that week wholesale.
type ShoppingList struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	WeekStartDate      string             `gorm:"size:10;not null;index" json:"week_start_date"`
	Items              JSONBShoppingItems `gorm:"type:jsonb;not null;default:'[]'" json:"items"`
	TotalEstimatedCost float64            `gorm:"type:float" json:"total_estimated_cost"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	DeletedAt          gorm.DeletedAt     `gorm:"index" json:"-"`
}

// Wire converts the row into the API shape.
func (l *ShoppingList) Wire() *types.ShoppingList {
	return &types.ShoppingList{
		ID:                 l.ID.String(),
		WeekStartDate:      l.WeekStartDate,
		Items:              l.Items,
		TotalEstimatedCost: l.TotalEstimatedCost,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}
