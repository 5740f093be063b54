package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/LeventeLantos/household-messaging/internal/model"
)

func (s *Store) SelectedTasks(ctx context.Context, userID int64) ([]model.Task, error) {
	var out []model.Task
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT id, user_id, name, category, remarks, selected, completed, sort_order, created_at
		FROM tasks
		WHERE user_id = ? AND selected = ? AND completed = ?
		ORDER BY sort_order ASC, id ASC
	`), userID, true, false)
	if err != nil {
		return nil, fmt.Errorf("list tasks for user %d: %w", userID, err)
	}
	return out, nil
}

func (s *Store) PendingGroceries(ctx context.Context, userID int64) ([]model.GroceryItem, error) {
	var out []model.GroceryItem
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT id, user_id, name, quantity, unit, category, remarks, selected, purchased, sort_order, created_at
		FROM grocery_items
		WHERE user_id = ? AND selected = ? AND purchased = ?
		ORDER BY sort_order ASC, id ASC
	`), userID, true, false)
	if err != nil {
		return nil, fmt.Errorf("list groceries for user %d: %w", userID, err)
	}
	return out, nil
}

func (s *Store) MealsFor(ctx context.Context, userID int64, day time.Weekday) ([]model.MealItem, error) {
	var out []model.MealItem
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT id, user_id, name, meal_slot, weekday, servings, remarks, sort_order, created_at
		FROM meal_plan
		WHERE user_id = ? AND weekday = ?
		ORDER BY CASE meal_slot WHEN 'breakfast' THEN 0 WHEN 'lunch' THEN 1 ELSE 2 END, sort_order ASC, id ASC
	`), userID, int(day))
	if err != nil {
		return nil, fmt.Errorf("list meals for user %d: %w", userID, err)
	}
	return out, nil
}

func (s *Store) GetGrocery(ctx context.Context, id int64) (model.GroceryItem, error) {
	var g model.GroceryItem
	err := s.db.GetContext(ctx, &g, s.db.Rebind(`
		SELECT id, user_id, name, quantity, unit, category, remarks, selected, purchased, sort_order, created_at
		FROM grocery_items
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.GroceryItem{}, fmt.Errorf("grocery item %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.GroceryItem{}, fmt.Errorf("get grocery item %d: %w", id, err)
	}
	return g, nil
}

// AdjustGrocery steps the item's quantity by its category increment.
func (s *Store) AdjustGrocery(ctx context.Context, id int64, up bool) (model.GroceryItem, error) {
	g, err := s.GetGrocery(ctx, id)
	if err != nil {
		return model.GroceryItem{}, err
	}

	g.Quantity = model.AdjustQuantity(g.Category, g.Unit, g.Quantity, up)
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE grocery_items SET quantity = ? WHERE id = ?
	`), g.Quantity, id); err != nil {
		return model.GroceryItem{}, fmt.Errorf("update grocery item %d: %w", id, err)
	}
	return g, nil
}

func (s *Store) CreateTask(ctx context.Context, t *model.Task) error {
	t.CreatedAt = dbTime(orNow(t.CreatedAt))
	id, err := s.insert(ctx, `
		INSERT INTO tasks (user_id, name, category, remarks, selected, completed, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, t.UserID, t.Name, t.Category, t.Remarks, t.Selected, t.Completed, t.SortOrder, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	t.ID = id
	return nil
}

func (s *Store) CreateGrocery(ctx context.Context, g *model.GroceryItem) error {
	g.CreatedAt = dbTime(orNow(g.CreatedAt))
	id, err := s.insert(ctx, `
		INSERT INTO grocery_items (user_id, name, quantity, unit, category, remarks, selected, purchased, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, g.UserID, g.Name, g.Quantity, g.Unit, g.Category, g.Remarks, g.Selected, g.Purchased, g.SortOrder, g.CreatedAt)
	if err != nil {
		return fmt.Errorf("create grocery item: %w", err)
	}
	g.ID = id
	return nil
}

func (s *Store) CreateMeal(ctx context.Context, m *model.MealItem) error {
	m.CreatedAt = dbTime(orNow(m.CreatedAt))
	id, err := s.insert(ctx, `
		INSERT INTO meal_plan (user_id, name, meal_slot, weekday, servings, remarks, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, m.UserID, m.Name, m.Slot, int(m.Weekday), m.Servings, m.Remarks, m.SortOrder, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create meal: %w", err)
	}
	m.ID = id
	return nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
