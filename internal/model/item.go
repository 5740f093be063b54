package model

import (
	"strconv"
	"time"
)

// Item is the flattened form the composer renders. Task, GroceryItem and
// MealItem convert into it.
type Item struct {
	Name     string   `json:"name" validate:"required"`
	Quantity string   `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	Category Category `json:"category,omitempty"`
	Remarks  string   `json:"remarks,omitempty"`
}

type Task struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Category  Category  `db:"category" json:"category"`
	Remarks   string    `db:"remarks" json:"remarks"`
	Selected  bool      `db:"selected" json:"selected"`
	Completed bool      `db:"completed" json:"completed"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (t Task) Item() Item {
	return Item{Name: t.Name, Category: t.Category, Remarks: t.Remarks}
}

type GroceryItem struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Name      string    `db:"name" json:"name"`
	Quantity  float64   `db:"quantity" json:"quantity"`
	Unit      string    `db:"unit" json:"unit"`
	Category  Category  `db:"category" json:"category"`
	Remarks   string    `db:"remarks" json:"remarks"`
	Selected  bool      `db:"selected" json:"selected"`
	Purchased bool      `db:"purchased" json:"purchased"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (g GroceryItem) Item() Item {
	it := Item{Name: g.Name, Category: g.Category, Remarks: g.Remarks}
	if g.Quantity > 0 {
		it.Quantity = strconv.FormatFloat(g.Quantity, 'f', -1, 64)
		it.Unit = g.Unit
	}
	return it
}

type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

type MealItem struct {
	ID        int64        `db:"id" json:"id"`
	UserID    int64        `db:"user_id" json:"userId"`
	Name      string       `db:"name" json:"name"`
	Slot      MealSlot     `db:"meal_slot" json:"slot"`
	Weekday   time.Weekday `db:"weekday" json:"weekday"`
	Servings  int          `db:"servings" json:"servings"`
	Remarks   string       `db:"remarks" json:"remarks"`
	SortOrder int          `db:"sort_order" json:"sortOrder"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}

// Item groups meals by slot; servings render as the quantity.
func (m MealItem) Item() Item {
	it := Item{Name: m.Name, Category: Category(m.Slot), Remarks: m.Remarks}
	if m.Servings > 0 {
		it.Quantity = strconv.Itoa(m.Servings)
	}
	return it
}
