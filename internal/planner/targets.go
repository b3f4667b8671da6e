package planner

import (
	"math"
	"time"

	"github.com/panpal-app/backend/internal/types"
)

const (
	activityMultiplier = 1.55
	isoDate            = "2006-01-02"
)

// Calorie share of the daily target given to each slot.
var slotCalorieWeights = map[string]float64{
	types.MealBreakfast: 0.25,
	types.MealLunch:     0.35,
	types.MealDinner:    0.40,
}

type macroRatios struct {
	Protein float64
	Fat     float64
	Carbs   float64
}

// DailyCalorieTarget computes the user's daily calorie target from the
// Mifflin-St Jeor basal metabolic rate, a fixed moderate-activity
// multiplier and a goal adjustment, rounded to the nearest integer.
func DailyCalorieTarget(p *types.HealthProfile) int {
	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * activityMultiplier

	switch p.Goal {
	case types.GoalLoseFat:
		return int(math.Round(tdee - 500))
	case types.GoalGainMuscle:
		return int(math.Round(tdee + 300))
	case types.GoalControlSugar:
		return int(math.Round(tdee - 200))
	default:
		return int(math.Round(tdee))
	}
}

// idealRatios returns the goal-specific target macro split, expressed as
// fractions of calories from protein/fat/carbs.
func idealRatios(goal string) macroRatios {
	switch goal {
	case types.GoalLoseFat:
		return macroRatios{Protein: 0.30, Fat: 0.25, Carbs: 0.45}
	case types.GoalGainMuscle:
		return macroRatios{Protein: 0.35, Fat: 0.20, Carbs: 0.45}
	case types.GoalControlSugar:
		return macroRatios{Protein: 0.25, Fat: 0.35, Carbs: 0.40}
	default:
		return macroRatios{Protein: 0.25, Fat: 0.30, Carbs: 0.45}
	}
}

// maxCookingTime maps a profile's cooking-time bucket to a minute ceiling.
// Unrecognized buckets fall back to 30 minutes.
func maxCookingTime(bucket string) int {
	switch bucket {
	case types.CookingTimeQuick:
		return 15
	case types.CookingTimeMedium:
		return 30
	case types.CookingTimeLong:
		return 60
	default:
		return 30
	}
}

// WeekStart returns the most recent Sunday at or before t, truncated to
// midnight in t's location. This anchors every plan's persistence key, so
// the rule is fixed: changing it would orphan existing plans.
func WeekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}
