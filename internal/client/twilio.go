package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// TwilioGateway sends over the Twilio WhatsApp channel.
type TwilioGateway struct {
	api  messageCreator
	from string
}

func NewTwilioGateway(accountSid, authToken, whatsappNumber string) *TwilioGateway {
	c := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})
	return &TwilioGateway{api: c.Api, from: whatsappNumber}
}

func whatsapp(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	return "whatsapp:" + phone
}

// Send ignores ctx: the Twilio REST client has no per-call context.
func (g *TwilioGateway) Send(_ context.Context, msg Message) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsapp(msg.To))
	params.SetFrom(whatsapp(g.from))
	params.SetBody(msg.Body)

	resp, err := g.api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("twilio create message: %w", err)
	}

	if resp.Status != nil {
		switch *resp.Status {
		case "failed", "undelivered":
			reason := *resp.Status
			if resp.ErrorMessage != nil && *resp.ErrorMessage != "" {
				reason += ": " + *resp.ErrorMessage
			}
			return "", fmt.Errorf("%w: %s", ErrRejected, reason)
		}
	}
	if resp.Sid == nil || *resp.Sid == "" {
		return "", fmt.Errorf("missing sid in twilio response")
	}
	return *resp.Sid, nil
}
