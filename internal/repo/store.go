package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/LeventeLantos/household-messaging/internal/model"
)

// Store implements every repository over sqlx. Queries use '?' and are
// rebound for the connected driver.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Stored times are UTC at second precision so text comparison in sqlite
// agrees with time order.
func dbTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func (s *Store) insert(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := s.db.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

const contactColumns = `id, user_id, name, phone, role, language, auto_send, send_time,
	frequency, days_of_week, last_sent_at, created_at`

func (s *Store) ListAutoSend(ctx context.Context) ([]model.Contact, error) {
	var out []model.Contact
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT `+contactColumns+`
		FROM contacts
		WHERE auto_send = ?
		ORDER BY id ASC
	`), true)
	if err != nil {
		return nil, fmt.Errorf("list auto-send contacts: %w", err)
	}
	return out, nil
}

func (s *Store) GetContact(ctx context.Context, id int64) (model.Contact, error) {
	var c model.Contact
	err := s.db.GetContext(ctx, &c, s.db.Rebind(`
		SELECT `+contactColumns+`
		FROM contacts
		WHERE id = ?
	`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Contact{}, fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return model.Contact{}, fmt.Errorf("get contact %d: %w", id, err)
	}
	return c, nil
}

func (s *Store) CreateContact(ctx context.Context, c *model.Contact) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	c.CreatedAt = dbTime(c.CreatedAt)

	var last any
	if c.LastSentAt != nil {
		last = dbTime(*c.LastSentAt)
	}

	id, err := s.insert(ctx, `
		INSERT INTO contacts (user_id, name, phone, role, language, auto_send, send_time,
			frequency, days_of_week, last_sent_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.UserID, c.Name, c.Phone, c.Role, c.Language, c.AutoSend, c.SendTime,
		c.Frequency, c.DaysOfWeek, last, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	c.ID = id
	return nil
}

func (s *Store) MarkSent(ctx context.Context, id int64, at time.Time) (bool, error) {
	at = dbTime(at)
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE contacts
		SET last_sent_at = ?
		WHERE id = ? AND (last_sent_at IS NULL OR last_sent_at < ?)
	`), at, id, at)
	if err != nil {
		return false, fmt.Errorf("mark contact %d sent: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (s *Store) ResetForTest(ctx context.Context, id int64, sendTime string) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE contacts
		SET send_time = ?, last_sent_at = NULL
		WHERE id = ?
	`), sendTime, id)
	if err != nil {
		return fmt.Errorf("reset contact %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("contact %d: %w", id, ErrNotFound)
	}
	return nil
}

// Claim takes the lease when claimed_until has passed. The token is the new
// claimed_until in unix millis.
func (s *Store) Claim(ctx context.Context, contactID int64, now time.Time, ttl time.Duration) (string, error) {
	until := now.Add(ttl).UnixMilli()
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE contacts
		SET claimed_until = ?
		WHERE id = ? AND claimed_until <= ?
	`), until, contactID, now.UnixMilli())
	if err != nil {
		return "", fmt.Errorf("claim contact %d: %w", contactID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrClaimed
	}
	return strconv.FormatInt(until, 10), nil
}

func (s *Store) Release(ctx context.Context, contactID int64, token string) error {
	until, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid claim token %q: %w", token, err)
	}
	_, err = s.db.ExecContext(ctx, s.db.Rebind(`
		UPDATE contacts
		SET claimed_until = 0
		WHERE id = ? AND claimed_until = ?
	`), contactID, until)
	if err != nil {
		return fmt.Errorf("release contact %d: %w", contactID, err)
	}
	return nil
}
