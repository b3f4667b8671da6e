package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

// ErrProfileNotFound means a user has no health profile row. Plan
// generation cannot proceed without one.
var ErrProfileNotFound = errors.New("health profile not found")

// ProfileService handles health profile operations.
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance.
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetProfile retrieves a user's health profile row.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// GetHealthProfile returns the profile in the planner's shape.
func (s *ProfileService) GetHealthProfile(ctx context.Context, userID uuid.UUID) (*types.HealthProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	return profile.HealthProfile(), nil
}

// UpdateProfile applies a partial update. Nil fields are left untouched;
// the next generated plan picks the changes up, existing plans do not.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.BodyFat != nil {
		profile.BodyFat = req.BodyFat
	}
	if req.Goal != nil {
		profile.Goal = *req.Goal
	}
	if req.CuisinePreferences != nil {
		profile.CuisinePreferences = req.CuisinePreferences
	}
	if req.Allergies != nil {
		profile.Allergies = req.Allergies
	}
	if req.Dislikes != nil {
		profile.Dislikes = req.Dislikes
	}
	if req.CookingTime != nil {
		profile.CookingTime = *req.CookingTime
	}
	if req.Budget != nil {
		profile.Budget = *req.Budget
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
