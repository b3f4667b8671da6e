package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/panpal-app/backend/internal/types"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

// JSONBIngredients stores a recipe's ingredient list in JSONB.
type JSONBIngredients []types.Ingredient

func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

// JSONBDailyMeals stores a meal plan's seven days in JSONB, embedded
// recipe snapshots included.
type JSONBDailyMeals []types.DailyMeals

func (a JSONBDailyMeals) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *JSONBDailyMeals) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBDailyMeals{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

// JSONBShoppingItems stores a shopping list's merged items in JSONB.
type JSONBShoppingItems []types.ShoppingItem

func (a JSONBShoppingItems) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

func (a *JSONBShoppingItems) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBShoppingItems{}
		return nil
	}
	return json.Unmarshal(jsonbBytes(value), a)
}

func jsonbBytes(value interface{}) []byte {
	switch v := value.(type) {
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		return []byte("[]")
	}
}
