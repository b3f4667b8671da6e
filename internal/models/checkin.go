package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CheckIn records that a user ate a planned meal, optionally with a photo.
type CheckIn struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Date      string         `gorm:"size:10;not null" json:"date"`
	MealType  string         `gorm:"size:10;not null" json:"meal_type"`
	PhotoURL  string         `gorm:"size:255" json:"photo_url,omitempty"`
	Completed bool           `gorm:"not null;default:true" json:"completed"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Reward is a perk unlocked by check-in streaks.
type Reward struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string         `gorm:"size:100;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Type        string         `gorm:"size:20;not null" json:"type"`
	Value       string         `gorm:"size:50" json:"value"`
	Platform    string         `gorm:"size:50" json:"platform"`
	Unlocked    bool           `gorm:"not null;default:false" json:"unlocked"`
	Claimed     bool           `gorm:"not null;default:false" json:"claimed"`
	UnlockedAt  *time.Time     `json:"unlocked_at,omitempty"`
	ClaimedAt   *time.Time     `json:"claimed_at,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
