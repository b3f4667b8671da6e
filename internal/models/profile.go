package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/types"
)

// UserProfile is the persisted health profile driving plan generation.
type UserProfile struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Age                int              `gorm:"not null;check:age >= 13 AND age <= 120" json:"age"`
	Gender             string           `gorm:"size:10;not null" json:"gender"`
	HeightCm           float64          `gorm:"not null" json:"height_cm"`
	WeightKg           float64          `gorm:"not null" json:"weight_kg"`
	BodyFat            *float64         `json:"body_fat,omitempty"`
	Goal               string           `gorm:"size:20;not null" json:"goal"`
	CuisinePreferences JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"cuisine_preferences"`
	Allergies          JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergies"`
	Dislikes           JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dislikes"`
	CookingTime        string           `gorm:"size:10;not null;default:'15-30'" json:"cooking_time"`
	Budget             string           `gorm:"size:10;not null;default:'standard'" json:"budget"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
}

// HealthProfile converts the row into the planner's profile shape.
func (p *UserProfile) HealthProfile() *types.HealthProfile {
	return &types.HealthProfile{
		UserID:             p.UserID.String(),
		Age:                p.Age,
		Gender:             p.Gender,
		HeightCm:           p.HeightCm,
		WeightKg:           p.WeightKg,
		BodyFat:            p.BodyFat,
		Goal:               p.Goal,
		CuisinePreferences: p.CuisinePreferences,
		Allergies:          p.Allergies,
		Dislikes:           p.Dislikes,
		CookingTime:        p.CookingTime,
		Budget:             p.Budget,
	}
}
