package model

import "time"

type Status string

const (
	Sent   Status = "sent"
	Failed Status = "failed"
)

type MessageType string

const (
	TaskMessage    MessageType = "task"
	MealMessage    MessageType = "meal"
	GroceryMessage MessageType = "grocery"
)

func (t MessageType) Valid() bool {
	switch t {
	case TaskMessage, MealMessage, GroceryMessage:
		return true
	}
	return false
}

// MessageRecord is one gateway attempt. Records are append only.
type MessageRecord struct {
	ID             int64       `db:"id" json:"id"`
	ContactID      *int64      `db:"contact_id" json:"contactId,omitempty"`
	RecipientPhone string      `db:"recipient_phone" json:"recipientPhone"`
	Body           string      `db:"body" json:"body"`
	Type           MessageType `db:"message_type" json:"type"`
	GatewayID      string      `db:"gateway_id" json:"gatewayId,omitempty"`
	ReferenceID    string      `db:"reference_id" json:"referenceId"`
	Status         Status      `db:"status" json:"status"`
	Error          string      `db:"error" json:"error,omitempty"`
	CreatedAt      time.Time   `db:"created_at" json:"createdAt"`
}
