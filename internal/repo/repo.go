package repo

import (
	"context"
	"errors"
	"time"

	"github.com/LeventeLantos/household-messaging/internal/model"
)

var (
	ErrNotFound = errors.New("not found")
	ErrClaimed  = errors.New("contact already claimed")
)

type ContactRepository interface {
	ListAutoSend(ctx context.Context) ([]model.Contact, error)
	GetContact(ctx context.Context, id int64) (model.Contact, error)
	// MarkSent only moves last_sent_at forward; it reports whether the row
	// changed.
	MarkSent(ctx context.Context, id int64, at time.Time) (bool, error)
	ResetForTest(ctx context.Context, id int64, sendTime string) error
}

type ItemRepository interface {
	SelectedTasks(ctx context.Context, userID int64) ([]model.Task, error)
	PendingGroceries(ctx context.Context, userID int64) ([]model.GroceryItem, error)
	MealsFor(ctx context.Context, userID int64, day time.Weekday) ([]model.MealItem, error)
}

type HistoryRepository interface {
	AppendOutcome(ctx context.Context, o *model.AutoSendOutcome) error
	AppendMessage(ctx context.Context, m *model.MessageRecord) error
	ListMessages(ctx context.Context, limit, offset int) ([]model.MessageRecord, error)
	ListOutcomes(ctx context.Context, contactID int64, limit int) ([]model.AutoSendOutcome, error)
}

// Claimer hands out a short exclusive lease on a contact so overlapping runs
// cannot both send for it.
type Claimer interface {
	Claim(ctx context.Context, contactID int64, now time.Time, ttl time.Duration) (token string, err error)
	Release(ctx context.Context, contactID int64, token string) error
}
