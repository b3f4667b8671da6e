// Package shopping aggregates a week's meal plan into a categorized,
// price-estimated shopping list.
package shopping

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/panpal-app/backend/internal/types"
)

// categoryRule maps ingredient-name keywords to a display category. Rules
// are checked in order; the first keyword hit wins.
type categoryRule struct {
	category string
	keywords []string
}

var categoryRules = []categoryRule{
	{"Meat & Seafood", []string{"chicken", "beef", "pork", "fish"}},
	{"Dairy", []string{"milk", "cheese", "yogurt", "butter"}},
	{"Fruits", []string{"apple", "banana", "orange", "berry"}},
	{"Vegetables", []string{"tomato", "onion", "carrot", "lettuce"}},
	{"Grains & Bread", []string{"rice", "pasta", "bread", "flour"}},
	{"Pantry", []string{"oil", "sauce", "spice", "salt"}},
}

// unitPrice is a rough USD estimate per unit of the keyed ingredient.
// Ordered: "chicken" must win over any later keyword it co-occurs with.
type unitPrice struct {
	keyword string
	price   float64
}

var priceTable = []unitPrice{
	{"chicken", 8.99},
	{"beef", 12.99},
	{"salmon", 15.99},
	{"milk", 4.99},
	{"eggs", 5.99},
	{"bread", 3.99},
	{"rice", 2.99},
	{"tomato", 2.99},
	{"onion", 1.99},
	{"carrot", 1.49},
	{"apple", 3.99},
	{"banana", 0.59},
}

const defaultUnitPrice = 3.99

// parseAmount extracts the leading numeric value of a free-text amount
// like "150", "1.5" or "1/2" (which reads as 1). Non-numeric amounts
// yield 0.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	end := 0
	seenDot := false
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Categorize assigns an ingredient name to a shopping category, falling
// through to "Other".
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return "Other"
}

// EstimatePrice prices an ingredient as unit price times parsed quantity,
// with the quantity defaulting to 1 when the amount is not numeric.
func EstimatePrice(name, amount string) float64 {
	quantity := parseAmount(amount)
	if quantity == 0 {
		quantity = 1
	}

	lower := strings.ToLower(name)
	for _, entry := range priceTable {
		if strings.Contains(lower, entry.keyword) {
			return entry.price * quantity
		}
	}
	return defaultUnitPrice * quantity
}

// BuildList flattens every meal's ingredients into shopping items, merging
// duplicates by (lowercased name, unit). The first occurrence fixes an
// item's display name, category and price; later occurrences only add to
// its amount.
func BuildList(plan *types.MealPlan) *types.ShoppingList {
	itemIdx := make(map[string]int)
	var items []types.ShoppingItem

	for _, day := range plan.Meals {
		for _, meal := range []types.Recipe{day.Breakfast, day.Lunch, day.Dinner} {
			for _, ing := range meal.Ingredients {
				key := strings.ToLower(ing.Name) + "_" + ing.Unit

				if idx, ok := itemIdx[key]; ok {
					existing := &items[idx]
					existing.Amount = formatAmount(parseAmount(existing.Amount) + parseAmount(ing.Amount))
					continue
				}

				itemIdx[key] = len(items)
				items = append(items, types.ShoppingItem{
					ID:             uuid.NewString(),
					Name:           ing.Name,
					Amount:         ing.Amount,
					Unit:           ing.Unit,
					Category:       Categorize(ing.Name),
					IsChecked:      false,
					EstimatedPrice: EstimatePrice(ing.Name, ing.Amount),
				})
			}
		}
	}

	total := 0.0
	for _, item := range items {
		total += item.EstimatedPrice
	}

	return &types.ShoppingList{
		WeekStartDate:      plan.Week,
		Items:              items,
		TotalEstimatedCost: total,
	}
}
