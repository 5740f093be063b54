package repo

import (
	"context"
	"fmt"

	"github.com/LeventeLantos/household-messaging/internal/model"
)

func (s *Store) AppendOutcome(ctx context.Context, o *model.AutoSendOutcome) error {
	o.CreatedAt = dbTime(orNow(o.CreatedAt))
	id, err := s.insert(ctx, `
		INSERT INTO auto_send_outcomes (contact_id, status, error, created_at)
		VALUES (?, ?, ?, ?)
	`, o.ContactID, o.Status, o.Error, o.CreatedAt)
	if err != nil {
		return fmt.Errorf("append outcome for contact %d: %w", o.ContactID, err)
	}
	o.ID = id
	return nil
}

func (s *Store) AppendMessage(ctx context.Context, m *model.MessageRecord) error {
	m.CreatedAt = dbTime(orNow(m.CreatedAt))
	id, err := s.insert(ctx, `
		INSERT INTO message_records (contact_id, recipient_phone, body, message_type,
			gateway_id, reference_id, status, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ContactID, m.RecipientPhone, m.Body, m.Type, m.GatewayID, m.ReferenceID, m.Status, m.Error, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("append message record: %w", err)
	}
	m.ID = id
	return nil
}

func (s *Store) ListMessages(ctx context.Context, limit, offset int) ([]model.MessageRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var out []model.MessageRecord
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT id, contact_id, recipient_phone, body, message_type, gateway_id,
		       reference_id, status, error, created_at
		FROM message_records
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list message records: %w", err)
	}
	return out, nil
}

func (s *Store) ListOutcomes(ctx context.Context, contactID int64, limit int) ([]model.AutoSendOutcome, error) {
	if limit <= 0 {
		limit = 50
	}

	var out []model.AutoSendOutcome
	err := s.db.SelectContext(ctx, &out, s.db.Rebind(`
		SELECT id, contact_id, status, error, created_at
		FROM auto_send_outcomes
		WHERE contact_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`), contactID, limit)
	if err != nil {
		return nil, fmt.Errorf("list outcomes for contact %d: %w", contactID, err)
	}
	return out, nil
}
