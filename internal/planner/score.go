package planner

import (
	"math"

	"github.com/panpal-app/backend/internal/types"
)

// ScoreRecipe rates a candidate against the slot's calorie target and the
// profile's goal. Higher is better. Components:
//
//	calorie fit   max(0, 100 − |calories − target| / 10)
//	macro balance per macro: max(0, 50 − |actual − ideal ratio| × 100)
//	time fit      30 − (cookingTime / ceiling) × 20, zero above the ceiling
//	cuisine bonus +20 when the cuisine is in the user's preference list
func ScoreRecipe(r types.Recipe, targetCalories float64, p *types.HealthProfile) float64 {
	score := math.Max(0, 100-math.Abs(r.Nutrition.Calories-targetCalories)/10)

	score += macroBalanceScore(r.Nutrition, idealRatios(p.Goal))
	score += timeScore(r.CookingTime, maxCookingTime(p.CookingTime))

	for _, c := range p.CuisinePreferences {
		if r.Cuisine == c {
			score += 20
			break
		}
	}

	return score
}

func macroBalanceScore(n types.NutritionInfo, ideal macroRatios) float64 {
	if n.Calories <= 0 {
		return 0
	}

	// Calorie-weighted ratios: protein and carbs at 4 kcal/g, fat at 9.
	proteinRatio := n.Protein / n.Calories * 4
	fatRatio := n.Fat / n.Calories * 9
	carbRatio := n.Carbs / n.Calories * 4

	score := math.Max(0, 50-math.Abs(proteinRatio-ideal.Protein)*100)
	score += math.Max(0, 50-math.Abs(fatRatio-ideal.Fat)*100)
	score += math.Max(0, 50-math.Abs(carbRatio-ideal.Carbs)*100)
	return score
}

func timeScore(cookingTime, ceiling int) float64 {
	if cookingTime > ceiling {
		return 0
	}
	return 30 - float64(cookingTime)/float64(ceiling)*20
}

// selectBest returns the highest-scoring candidate. Ties keep the first
// maximal element in pool order; the pool's iteration order is the
// tie-break, deliberately.
func selectBest(candidates []types.Recipe, targetCalories float64, p *types.HealthProfile) (types.Recipe, bool) {
	if len(candidates) == 0 {
		return types.Recipe{}, false
	}

	best := candidates[0]
	bestScore := ScoreRecipe(best, targetCalories, p)
	for _, r := range candidates[1:] {
		if s := ScoreRecipe(r, targetCalories, p); s > bestScore {
			best = r
			bestScore = s
		}
	}
	return best, true
}
