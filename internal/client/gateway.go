package client

import (
	"context"
	"errors"
	"strings"
)

// ErrRejected is wrapped by gateways when the provider answered but refused
// the message.
var ErrRejected = errors.New("gateway rejected message")

type Message struct {
	To          string
	Body        string
	ReferenceID string
	Priority    int
}

// Gateway delivers one message and returns the provider's message id.
type Gateway interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NormalizePhone keeps the digits of phone and a single leading '+'.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	var b strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	if b.String() == "+" {
		return ""
	}
	return b.String()
}
