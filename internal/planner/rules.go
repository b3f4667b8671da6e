package planner

import (
	"strings"

	"github.com/panpal-app/backend/internal/types"
)

// Tag vocabulary qualifying a recipe for a meal slot. A single
// case-insensitive tag match qualifies (OR semantics).
var mealTypeTags = map[string][]string{
	types.MealBreakfast: {"breakfast", "morning", "oatmeal", "eggs", "toast", "smoothie"},
	types.MealLunch:     {"lunch", "main", "protein", "vegetables", "rice", "noodles"},
	types.MealDinner:    {"dinner", "evening", "soup", "light", "comfort"},
}

// MatchesMealType reports whether any of the recipe's tags is in the
// slot's vocabulary.
func MatchesMealType(r types.Recipe, mealType string) bool {
	vocab := mealTypeTags[mealType]
	for _, tag := range r.Tags {
		lower := strings.ToLower(tag)
		for _, v := range vocab {
			if lower == v {
				return true
			}
		}
	}
	return false
}

// exclusionRule rejects a recipe for a profile. Rules are evaluated in
// order, first match wins, so the precedence is visible in one place.
type exclusionRule struct {
	name     string
	excludes func(types.Recipe, *types.HealthProfile) bool
}

var profileExclusions = []exclusionRule{
	{
		name: "cuisine",
		excludes: func(r types.Recipe, p *types.HealthProfile) bool {
			if len(p.CuisinePreferences) == 0 {
				return false
			}
			for _, c := range p.CuisinePreferences {
				if r.Cuisine == c {
					return false
				}
			}
			return true
		},
	},
	{
		name: "budget",
		excludes: func(r types.Recipe, p *types.HealthProfile) bool {
			return r.Budget != p.Budget
		},
	},
	{
		name: "cooking_time",
		excludes: func(r types.Recipe, p *types.HealthProfile) bool {
			return r.CookingTime > maxCookingTime(p.CookingTime)
		},
	},
	{
		name: "allergy",
		excludes: func(r types.Recipe, p *types.HealthProfile) bool {
			return anyIngredientMatches(r, p.Allergies)
		},
	},
	{
		name: "dislike",
		excludes: func(r types.Recipe, p *types.HealthProfile) bool {
			return anyIngredientMatches(r, p.Dislikes)
		},
	},
}

// anyIngredientMatches reports whether any ingredient name
// substring-matches any of the given terms, case-insensitively.
func anyIngredientMatches(r types.Recipe, terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	for _, ing := range r.Ingredients {
		name := strings.ToLower(ing.Name)
		for _, term := range terms {
			if term == "" {
				continue
			}
			if strings.Contains(name, strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}

// MatchesPreferences reports whether the recipe survives the profile's
// hard constraints.
func MatchesPreferences(r types.Recipe, p *types.HealthProfile) bool {
	for _, rule := range profileExclusions {
		if rule.excludes(r, p) {
			return false
		}
	}
	return true
}

// FilterForSlot narrows the pool to recipes eligible for a slot under the
// given profile, preserving pool order.
func FilterForSlot(pool []types.Recipe, mealType string, p *types.HealthProfile) []types.Recipe {
	var out []types.Recipe
	for _, r := range pool {
		if MatchesMealType(r, mealType) && MatchesPreferences(r, p) {
			out = append(out, r)
		}
	}
	return out
}
