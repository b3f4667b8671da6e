package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/panpal-app/backend/internal/models"
	"github.com/panpal-app/backend/internal/types"
)

var (
	ErrCheckInNotFound = errors.New("check-in not found")
	ErrRewardNotFound  = errors.New("reward not found")
	ErrRewardLocked    = errors.New("reward not unlocked yet")
)

const dateLayout = "2006-01-02"

// streakReward describes a reward granted at a streak length.
type streakReward struct {
	days        int
	title       string
	description string
	rewardType  string
	value       string
	platform    string
}

var streakRewards = []streakReward{
	{
		days:        3,
		title:       "Hema Fresh Coupon",
		description: "5 CNY off groceries on Hema Fresh",
		rewardType:  "coupon",
		value:       "5",
		platform:    "hema",
	},
	{
		days:        7,
		title:       "Meituan Delivery Voucher",
		description: "10 CNY no-minimum delivery voucher",
		rewardType:  "coupon",
		value:       "10",
		platform:    "meituan",
	},
}

// CheckInStats summarizes a user's check-in activity.
type CheckInStats struct {
	CurrentStreak  int     `json:"current_streak"`
	TotalCheckIns  int     `json:"total_check_ins"`
	WeekCompletion float64 `json:"week_completion"`
}

// CheckInService records eaten meals, keeps streaks and unlocks rewards.
type CheckInService struct {
	db     *gorm.DB
	photos PhotoStore
	logger *zap.Logger
	now    func() time.Time
}

// Ensure CheckInService implements ICheckInService
var _ ICheckInService = (*CheckInService)(nil)

// NewCheckInService creates a CheckInService. photos may be nil when no
// object storage is configured; photo uploads then fail cleanly.
func NewCheckInService(db *gorm.DB, photos PhotoStore, logger *zap.Logger) *CheckInService {
	return &CheckInService{db: db, photos: photos, logger: logger, now: time.Now}
}

// Create records a check-in for one (date, mealType) slot. Checking in
// twice for the same slot returns the existing record unchanged.
func (s *CheckInService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateCheckInRequest) (*models.CheckIn, error) {
	var existing models.CheckIn
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND meal_type = ?", userID, req.Date, req.MealType).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	checkIn := models.CheckIn{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      req.Date,
		MealType:  req.MealType,
		Completed: true,
	}
	if err := s.db.WithContext(ctx).Create(&checkIn).Error; err != nil {
		return nil, err
	}

	if err := s.unlockRewards(ctx, userID, req.Date); err != nil {
		s.logger.Warn("reward unlock check failed",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	return &checkIn, nil
}

// AttachPhoto uploads a meal photo and links it to the check-in.
func (s *CheckInService) AttachPhoto(ctx context.Context, userID, checkInID uuid.UUID, contentType string, body io.Reader) (*models.CheckIn, error) {
	if s.photos == nil {
		return nil, errors.New("photo storage not configured")
	}

	var checkIn models.CheckIn
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", checkInID, userID).First(&checkIn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCheckInNotFound
	}
	if err != nil {
		return nil, err
	}

	ext := ".jpg"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	key := fmt.Sprintf("checkins/%s/%s%s", userID, checkIn.ID, ext)

	url, err := s.photos.Upload(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	checkIn.PhotoURL = url
	if err := s.db.WithContext(ctx).Save(&checkIn).Error; err != nil {
		return nil, err
	}
	return &checkIn, nil
}

// List returns the user's check-ins, newest first.
func (s *CheckInService) List(ctx context.Context, userID uuid.UUID) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&checkIns).Error
	if err != nil {
		return nil, err
	}
	return checkIns, nil
}

// Stats reports the current streak, lifetime count and this week's
// completion rate out of 21 meal slots.
func (s *CheckInService) Stats(ctx context.Context, userID uuid.UUID) (*CheckInStats, error) {
	today := s.now().Format(dateLayout)

	streak, err := s.streakEndingAt(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.CheckIn{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, err
	}

	weekStart := s.now().AddDate(0, 0, -int(s.now().Weekday())).Format(dateLayout)
	var thisWeek int64
	err = s.db.WithContext(ctx).Model(&models.CheckIn{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, weekStart, today).
		Count(&thisWeek).Error
	if err != nil {
		return nil, err
	}

	return &CheckInStats{
		CurrentStreak:  streak,
		TotalCheckIns:  int(total),
		WeekCompletion: float64(thisWeek) / 21,
	}, nil
}

// ListRewards returns the user's rewards, locked ones included.
func (s *CheckInService) ListRewards(ctx context.Context, userID uuid.UUID) ([]models.Reward, error) {
	if err := s.ensureRewardRows(ctx, userID); err != nil {
		return nil, err
	}

	var rewards []models.Reward
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&rewards).Error
	if err != nil {
		return nil, err
	}
	return rewards, nil
}

// ClaimReward marks an unlocked reward as claimed.
func (s *CheckInService) ClaimReward(ctx context.Context, userID, rewardID uuid.UUID) (*models.Reward, error) {
	var reward models.Reward
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", rewardID, userID).First(&reward).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRewardNotFound
	}
	if err != nil {
		return nil, err
	}

	if !reward.Unlocked {
		return nil, ErrRewardLocked
	}
	if reward.Claimed {
		return &reward, nil
	}

	now := s.now()
	reward.Claimed = true
	reward.ClaimedAt = &now
	if err := s.db.WithContext(ctx).Save(&reward).Error; err != nil {
		return nil, err
	}
	return &reward, nil
}

// streakEndingAt counts consecutive days with at least one check-in,
// walking backwards from the given date.
func (s *CheckInService) streakEndingAt(ctx context.Context, userID uuid.UUID, date string) (int, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return 0, err
	}

	streak := 0
	for {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.CheckIn{}).
			Where("user_id = ? AND date = ?", userID, day.Format(dateLayout)).
			Count(&count).Error
		if err != nil {
			return 0, err
		}
		if count == 0 {
			return streak, nil
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
}

// ensureRewardRows creates the fixed reward catalog for a user on first
// access, still locked.
func (s *CheckInService) ensureRewardRows(ctx context.Context, userID uuid.UUID) error {
	for _, def := range streakRewards {
		var count int64
		err := s.db.WithContext(ctx).Model(&models.Reward{}).
			Where("user_id = ? AND title = ?", userID, def.title).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		reward := models.Reward{
			ID:          uuid.New(),
			UserID:      userID,
			Title:       def.title,
			Description: fmt.Sprintf("%s (requires a %d-day streak)", def.description, def.days),
			Type:        def.rewardType,
			Value:       def.value,
			Platform:    def.platform,
		}
		if err := s.db.WithContext(ctx).Create(&reward).Error; err != nil {
			return err
		}
	}
	return nil
}

// unlockRewards flips rewards whose streak requirement is now met.
func (s *CheckInService) unlockRewards(ctx context.Context, userID uuid.UUID, date string) error {
	if err := s.ensureRewardRows(ctx, userID); err != nil {
		return err
	}

	streak, err := s.streakEndingAt(ctx, userID, date)
	if err != nil {
		return err
	}

	for _, def := range streakRewards {
		if streak < def.days {
			continue
		}

		var reward models.Reward
		err := s.db.WithContext(ctx).
			Where("user_id = ? AND title = ? AND unlocked = ?", userID, def.title, false).
			First(&reward).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		now := s.now()
		reward.Unlocked = true
		reward.UnlockedAt = &now
		if err := s.db.WithContext(ctx).Save(&reward).Error; err != nil {
			return err
		}
		s.logger.Info("reward unlocked",
			zap.String("user_id", userID.String()),
			zap.String("reward", reward.Title),
			zap.Int("streak", streak))
	}
	return nil
}
