package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/LeventeLantos/household-messaging/internal/cache"
	"github.com/LeventeLantos/household-messaging/internal/compose"
	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/model"
	"github.com/LeventeLantos/household-messaging/internal/repo"
	"github.com/LeventeLantos/household-messaging/internal/schedule"
)

const DefaultClaimTTL = 2 * time.Minute

// ErrAutoSendDisabled is returned when a force test targets a contact whose
// auto-send flag is off.
var ErrAutoSendDisabled = errors.New("auto-send disabled for contact")

// Store is everything the auto-sender reads and writes.
type Store interface {
	repo.ContactRepository
	repo.ItemRepository
	repo.HistoryRepository
}

type Options struct {
	// Claimer defaults to the store when it implements repo.Claimer.
	Claimer   repo.Claimer
	Remote    i18n.Remote
	Shared    i18n.SharedCache
	Sent      cache.SentCache
	Clock     clockwork.Clock
	Tolerance time.Duration
	ClaimTTL  time.Duration
}

type RunOptions struct {
	// ContactID limits the run to one contact; zero runs every auto-send
	// contact.
	ContactID int64 `json:"contactId,omitempty"`
}

type Summary struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
	NotDue    int `json:"notDue"`
	Busy      int `json:"busy"`
}

type AutoSender struct {
	store      Store
	dispatcher *Dispatcher
	claimer    repo.Claimer
	remote     i18n.Remote
	shared     i18n.SharedCache
	sent       cache.SentCache
	clock      clockwork.Clock
	evaluator  schedule.Evaluator
	claimTTL   time.Duration
}

func NewAutoSender(store Store, dispatcher *Dispatcher, opts Options) (*AutoSender, error) {
	if store == nil || dispatcher == nil {
		return nil, ErrNotConfigured
	}

	a := &AutoSender{
		store:      store,
		dispatcher: dispatcher,
		claimer:    opts.Claimer,
		remote:     opts.Remote,
		shared:     opts.Shared,
		sent:       opts.Sent,
		clock:      opts.Clock,
		evaluator:  schedule.New(opts.Tolerance),
		claimTTL:   opts.ClaimTTL,
	}
	if a.claimer == nil {
		if c, ok := store.(repo.Claimer); ok {
			a.claimer = c
		}
	}
	if a.clock == nil {
		a.clock = clockwork.NewRealClock()
	}
	if a.claimTTL <= 0 {
		a.claimTTL = DefaultClaimTTL
	}
	return a, nil
}

type contactResult int

const (
	resultNotDue contactResult = iota
	resultBusy
	resultSkipped
	resultSent
	resultFailed
)

// Run evaluates contacts one after another. Only loading the contact list
// can fail the run; every per-contact problem ends up as an outcome.
func (a *AutoSender) Run(ctx context.Context, opts RunOptions) (Summary, error) {
	return a.run(ctx, opts)
}

// ForceTest makes an auto-send contact due right now and runs it through
// the normal batch path. Contacts with auto-send off are refused.
func (a *AutoSender) ForceTest(ctx context.Context, contactID int64) (Summary, error) {
	if contactID <= 0 {
		return Summary{}, fmt.Errorf("contact id must be > 0")
	}
	c, err := a.store.GetContact(ctx, contactID)
	if err != nil {
		return Summary{}, err
	}
	if !c.AutoSend {
		return Summary{}, fmt.Errorf("contact %d: %w", contactID, ErrAutoSendDisabled)
	}

	if err := a.store.ResetForTest(ctx, contactID, schedule.FormatClock(a.clock.Now())); err != nil {
		return Summary{}, err
	}
	if a.sent != nil {
		if err := a.sent.ClearSent(ctx, contactID); err != nil {
			return Summary{}, fmt.Errorf("clear sent receipt: %w", err)
		}
	}
	return a.run(ctx, RunOptions{ContactID: contactID})
}

func (a *AutoSender) run(ctx context.Context, opts RunOptions) (Summary, error) {
	var sum Summary

	contacts, err := a.load(ctx, opts)
	if err != nil {
		return sum, err
	}

	for _, c := range contacts {
		if ctx.Err() != nil {
			slog.Warn("auto-send run interrupted", "err", ctx.Err(), "remaining", len(contacts)-sum.Processed)
			break
		}

		sum.Processed++
		switch a.safeProcess(ctx, c) {
		case resultNotDue:
			sum.NotDue++
		case resultBusy:
			sum.Busy++
		case resultSkipped:
			sum.Skipped++
		case resultSent:
			sum.Sent++
		case resultFailed:
			sum.Failed++
		}
	}

	slog.Info("auto-send run completed",
		"processed", sum.Processed, "sent", sum.Sent, "failed", sum.Failed,
		"skipped", sum.Skipped, "not_due", sum.NotDue, "busy", sum.Busy)
	return sum, nil
}

func (a *AutoSender) load(ctx context.Context, opts RunOptions) ([]model.Contact, error) {
	if opts.ContactID != 0 {
		c, err := a.store.GetContact(ctx, opts.ContactID)
		if err != nil {
			return nil, err
		}
		return []model.Contact{c}, nil
	}
	return a.store.ListAutoSend(ctx)
}

func (a *AutoSender) safeProcess(ctx context.Context, c model.Contact) (res contactResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("auto-send contact panic recovered", "contact_id", c.ID, "panic", r)
			a.outcome(ctx, c.ID, model.OutcomeFailed, fmt.Sprintf("panic: %v", r))
			res = resultFailed
		}
	}()
	return a.process(ctx, c)
}

func (a *AutoSender) process(ctx context.Context, c model.Contact) contactResult {
	now := a.clock.Now()

	if !a.due(ctx, c, now) {
		return resultNotDue
	}

	if a.claimer != nil {
		token, err := a.claimer.Claim(ctx, c.ID, now, a.claimTTL)
		if errors.Is(err, repo.ErrClaimed) {
			slog.Info("auto-send contact busy", "contact_id", c.ID)
			return resultBusy
		}
		if err != nil {
			a.outcome(ctx, c.ID, model.OutcomeFailed, err.Error())
			return resultFailed
		}
		defer func() {
			if err := a.claimer.Release(context.WithoutCancel(ctx), c.ID, token); err != nil {
				slog.Warn("claim release failed", "contact_id", c.ID, "err", err)
			}
		}()
	}

	// The contact list may predate another run's send; decide again on the
	// row as it is now that the claim is held.
	fresh, err := a.store.GetContact(ctx, c.ID)
	if err != nil {
		a.outcome(ctx, c.ID, model.OutcomeFailed, err.Error())
		return resultFailed
	}
	if !a.due(ctx, fresh, now) {
		slog.Info("auto-send contact already handled", "contact_id", c.ID)
		return resultNotDue
	}
	c = fresh

	kind := c.Role.MessageType()
	items, err := a.itemsFor(ctx, c, kind, now)
	if err != nil {
		a.outcome(ctx, c.ID, model.OutcomeFailed, err.Error())
		return resultFailed
	}
	if len(items) == 0 {
		a.outcome(ctx, c.ID, model.OutcomeSkipped, "no items")
		return resultSkipped
	}

	lang := i18n.ParseLanguage(c.Language)
	body := a.Compose(ctx, kind, items, lang, "")

	id := c.ID
	res := a.dispatcher.Send(ctx, c.Phone, body, Meta{ContactID: &id, Type: kind})
	if !res.Success {
		a.outcome(ctx, c.ID, model.OutcomeFailed, res.Error)
		return resultFailed
	}

	if _, err := a.store.MarkSent(ctx, c.ID, now); err != nil {
		slog.Error("last_sent_at update failed", "contact_id", c.ID, "err", err)
	}
	if a.sent != nil {
		if err := a.sent.StoreSent(ctx, c.ID, res.GatewayID, now); err != nil {
			slog.Debug("sent cache write failed", "contact_id", c.ID, "err", err)
		}
	}
	a.outcome(ctx, c.ID, model.OutcomeSent, "")
	return resultSent
}

// due folds the cached sent receipt into the stored last_sent_at before
// asking the evaluator.
func (a *AutoSender) due(ctx context.Context, c model.Contact, now time.Time) bool {
	last := c.LastSentAt
	if a.sent != nil {
		at, ok, err := a.sent.LastSent(ctx, c.ID)
		switch {
		case err != nil:
			slog.Debug("sent cache read failed", "contact_id", c.ID, "err", err)
		case ok && (last == nil || at.After(*last)):
			last = &at
		}
	}
	return a.evaluator.ShouldSend(c.Schedule(), last, now)
}

// Compose renders items with a fresh translation session.
func (a *AutoSender) Compose(ctx context.Context, kind model.MessageType, items []model.Item, lang i18n.Language, groupName string) string {
	sess := i18n.NewSession(a.remote, a.shared, string(kind))
	sess.Prepare(ctx, lang, compose.Texts(items))
	return compose.New(sess).Compose(kind, items, lang, groupName)
}

func (a *AutoSender) itemsFor(ctx context.Context, c model.Contact, kind model.MessageType, now time.Time) ([]model.Item, error) {
	var items []model.Item

	switch kind {
	case model.MealMessage:
		meals, err := a.store.MealsFor(ctx, c.UserID, now.In(schedule.Zone).Weekday())
		if err != nil {
			return nil, err
		}
		for _, m := range meals {
			items = append(items, m.Item())
		}
	case model.GroceryMessage:
		groceries, err := a.store.PendingGroceries(ctx, c.UserID)
		if err != nil {
			return nil, err
		}
		for _, g := range groceries {
			items = append(items, g.Item())
		}
	default:
		tasks, err := a.store.SelectedTasks(ctx, c.UserID)
		if err != nil {
			return nil, err
		}
		for _, t := range tasks {
			items = append(items, t.Item())
		}
	}
	return items, nil
}

func (a *AutoSender) outcome(ctx context.Context, contactID int64, status model.OutcomeStatus, reason string) {
	o := &model.AutoSendOutcome{
		ContactID: contactID,
		Status:    status,
		Error:     reason,
		CreatedAt: a.clock.Now(),
	}
	if err := a.store.AppendOutcome(ctx, o); err != nil {
		slog.Error("auto-send outcome write failed", "contact_id", contactID, "status", status, "err", err)
	}
	if status == model.OutcomeFailed {
		slog.Warn("auto-send contact failed", "contact_id", contactID, "err", reason)
	}
}
