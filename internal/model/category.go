package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

type Category string

const (
	CategoryNone Category = ""

	// Grocery
	Fruits     Category = "fruits"
	Vegetables Category = "vegetables"
	Dairy      Category = "dairy"
	Grains     Category = "grains"
	Pulses     Category = "pulses"
	Spices     Category = "spices"
	Snacks     Category = "snacks"
	Beverages  Category = "beverages"
	Bakery     Category = "bakery"
	Meat       Category = "meat"
	Household  Category = "household"

	// Tasks
	Kitchen  Category = "kitchen"
	Cleaning Category = "cleaning"
	Laundry  Category = "laundry"
	Bathroom Category = "bathroom"
	Outdoor  Category = "outdoor"

	// Meals, matching MealSlot values
	BreakfastMeals Category = "breakfast"
	LunchMeals     Category = "lunch"
	DinnerMeals    Category = "dinner"

	CategoryOther Category = "other"
)

type categoryPolicy struct {
	perishable bool
}

var categoryPolicies = map[Category]categoryPolicy{
	Fruits:         {perishable: true},
	Vegetables:     {perishable: true},
	Dairy:          {},
	Grains:         {},
	Pulses:         {},
	Spices:         {},
	Snacks:         {},
	Beverages:      {},
	Bakery:         {},
	Meat:           {},
	Household:      {},
	Kitchen:        {},
	Cleaning:       {},
	Laundry:        {},
	Bathroom:       {},
	Outdoor:        {},
	BreakfastMeals: {},
	LunchMeals:     {},
	DinnerMeals:    {},
	CategoryOther:  {},
}

// ParseCategory returns CategoryOther for names outside the known set and
// CategoryNone for blank input.
func ParseCategory(s string) Category {
	key := Category(strings.ToLower(strings.TrimSpace(s)))
	if key == CategoryNone {
		return CategoryNone
	}
	if _, ok := categoryPolicies[key]; ok {
		return key
	}
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryOther
}

var categoryAliases = map[Category]Category{
	"fruit":         Fruits,
	"vegetable":     Vegetables,
	"veg":           Vegetables,
	"veggies":       Vegetables,
	"sabzi":         Vegetables,
	"milk":          Dairy,
	"grain":         Grains,
	"cereals":       Grains,
	"pulse":         Pulses,
	"dal":           Pulses,
	"lentils":       Pulses,
	"spice":         Spices,
	"masala":        Spices,
	"snack":         Snacks,
	"beverage":      Beverages,
	"drinks":        Beverages,
	"bread":         Bakery,
	"non-veg":       Meat,
	"supplies":      Household,
	"cooking":       Kitchen,
	"clean":         Cleaning,
	"washing":       Laundry,
	"garden":        Outdoor,
	"morning":       BreakfastMeals,
	"night":         DinnerMeals,
	"others":        CategoryOther,
	"misc":          CategoryOther,
	"general":       CategoryOther,
	"uncategorized": CategoryOther,
}

// Scan normalizes stored category names through ParseCategory.
func (c *Category) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = CategoryNone
	case string:
		*c = ParseCategory(v)
	case []byte:
		*c = ParseCategory(string(v))
	default:
		return fmt.Errorf("scan category: unsupported type %T", src)
	}
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	*c = ParseCategory(s)
	return nil
}

const bulkStep = 250

var bulkUnits = map[string]bool{
	"g":           true,
	"gm":          true,
	"gms":         true,
	"gram":        true,
	"grams":       true,
	"ml":          true,
	"millilitre":  true,
	"millilitres": true,
	"milliliter":  true,
	"milliliters": true,
}

// IncrementStep is the cart adjustment step for one item.
func IncrementStep(c Category, unit string) float64 {
	if categoryPolicies[c].perishable && bulkUnits[strings.ToLower(strings.TrimSpace(unit))] {
		return bulkStep
	}
	return 1
}

// AdjustQuantity moves qty one step up or down, never below zero.
func AdjustQuantity(c Category, unit string, qty float64, up bool) float64 {
	step := IncrementStep(c, unit)
	if up {
		return qty + step
	}
	if qty-step < 0 {
		return 0
	}
	return qty - step
}
