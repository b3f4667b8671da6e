package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/types"
)

// Recipe is a catalog entry. The planner never mutates these rows; plans
// embed snapshots instead of referencing them.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	ImageURL    string           `gorm:"size:255" json:"image_url"`
	Ingredients JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Calories    float64          `gorm:"type:float" json:"calories"`
	Protein     float64          `gorm:"type:float" json:"protein"`
	Fat         float64          `gorm:"type:float" json:"fat"`
	Carbs       float64          `gorm:"type:float" json:"carbs"`
	CookingTime int              `gorm:"not null" json:"cooking_time"`
	Difficulty  string           `gorm:"size:10;not null;default:'medium'" json:"difficulty"`
	Tags        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	Cuisine     string           `gorm:"size:50" json:"cuisine"`
	Budget      string           `gorm:"size:10;not null;default:'standard'" json:"budget"`
	Embedding   pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

// Snapshot converts the row into the wire shape embedded in meal plans.
func (r *Recipe) Snapshot() types.Recipe {
	return types.Recipe{
		ID:          r.ID.String(),
		Name:        r.Name,
		ImageURL:    r.ImageURL,
		Ingredients: r.Ingredients,
		Steps:       r.Steps,
		Nutrition: types.NutritionInfo{
			Calories: r.Calories,
			Protein:  r.Protein,
			Fat:      r.Fat,
			Carbs:    r.Carbs,
		},
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		Tags:        r.Tags,
		Cuisine:     r.Cuisine,
		Budget:      r.Budget,
	}
}
