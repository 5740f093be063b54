package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/jonboulle/clockwork"

	"github.com/LeventeLantos/household-messaging/internal/client"
	"github.com/LeventeLantos/household-messaging/internal/model"
)

// ErrNotConfigured means a required collaborator (gateway credentials or the
// store) is missing. Nothing is processed when it is returned.
var ErrNotConfigured = errors.New("auto-send not configured")

// DefaultContentMax is the WhatsApp body limit.
const DefaultContentMax = 4096

type MessageLog interface {
	AppendMessage(ctx context.Context, m *model.MessageRecord) error
}

type Meta struct {
	ContactID *int64
	Type      model.MessageType
	Priority  int
}

type Result struct {
	Success     bool   `json:"success"`
	GatewayID   string `json:"gatewayId,omitempty"`
	ReferenceID string `json:"referenceId"`
	Error       string `json:"error,omitempty"`
}

// Dispatcher makes exactly one gateway attempt per message and records it.
type Dispatcher struct {
	gateway    client.Gateway
	log        MessageLog
	clock      clockwork.Clock
	contentMax int
}

func NewDispatcher(gateway client.Gateway, log MessageLog, clock clockwork.Clock) (*Dispatcher, error) {
	if gateway == nil || log == nil {
		return nil, ErrNotConfigured
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Dispatcher{
		gateway:    gateway,
		log:        log,
		clock:      clock,
		contentMax: DefaultContentMax,
	}, nil
}

// ReferenceID identifies a send to the gateway as <type>-<unix millis>.
func ReferenceID(kind model.MessageType, unixMilli int64) string {
	return fmt.Sprintf("%s-%d", kind, unixMilli)
}

// Send never retries. The MessageRecord is written whatever the outcome and
// a failed write is only logged.
func (d *Dispatcher) Send(ctx context.Context, to, body string, meta Meta) Result {
	now := d.clock.Now()
	res := Result{ReferenceID: ReferenceID(meta.Type, now.UnixMilli())}
	phone := client.NormalizePhone(to)

	switch {
	case phone == "":
		res.Error = fmt.Sprintf("invalid recipient phone %q", to)
	case utf8.RuneCountInString(body) > d.contentMax:
		res.Error = fmt.Sprintf("content exceeds %d chars", d.contentMax)
	default:
		id, err := d.gateway.Send(ctx, client.Message{
			To:          phone,
			Body:        body,
			ReferenceID: res.ReferenceID,
			Priority:    meta.Priority,
		})
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Success = true
			res.GatewayID = id
		}
	}

	rec := &model.MessageRecord{
		ContactID:      meta.ContactID,
		RecipientPhone: phone,
		Body:           body,
		Type:           meta.Type,
		GatewayID:      res.GatewayID,
		ReferenceID:    res.ReferenceID,
		Status:         model.Sent,
		CreatedAt:      now,
	}
	if phone == "" {
		rec.RecipientPhone = to
	}
	if !res.Success {
		rec.Status = model.Failed
		rec.Error = res.Error
	}
	if err := d.log.AppendMessage(ctx, rec); err != nil {
		slog.Error("message record write failed", "reference_id", res.ReferenceID, "err", err)
	}

	if res.Success {
		slog.Info("message sent", "reference_id", res.ReferenceID, "gateway_id", res.GatewayID, "type", meta.Type)
	} else {
		slog.Warn("message send failed", "reference_id", res.ReferenceID, "type", meta.Type, "err", res.Error)
	}
	return res
}
