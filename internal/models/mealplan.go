package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/types"
)

// MealPlan is one user's plan for one week. At most one row exists per
// (user_id, week); the planner enforces this by lookup-before-insert, not
// with a database constraint.
type MealPlan struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Week      string          `gorm:"size:10;not null;index" json:"week"`
	Meals     JSONBDailyMeals `gorm:"type:jsonb;not null;default:'[]'" json:"meals"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Wire converts the row into the API shape.
func (m *MealPlan) Wire() *types.MealPlan {
	return &types.MealPlan{
		ID:        m.ID.String(),
		UserID:    m.UserID.String(),
		Week:      m.Week,
		Meals:     m.Meals,
		CreatedAt: m.CreatedAt,
	}
}
