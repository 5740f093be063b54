package model

import "time"

type OutcomeStatus string

const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeFailed  OutcomeStatus = "failed"
	OutcomeSkipped OutcomeStatus = "skipped"
)

// AutoSendOutcome records what one evaluation cycle did for a contact.
type AutoSendOutcome struct {
	ID        int64         `db:"id" json:"id"`
	ContactID int64         `db:"contact_id" json:"contactId"`
	Status    OutcomeStatus `db:"status" json:"status"`
	Error     string        `db:"error" json:"error,omitempty"`
	CreatedAt time.Time     `db:"created_at" json:"createdAt"`
}
