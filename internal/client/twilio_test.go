package client

import (
	"context"
	"errors"
	"testing"

	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeCreator struct {
	got  *twilioApi.CreateMessageParams
	resp *twilioApi.ApiV2010Message
	err  error
}

func (f *fakeCreator) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.got = params
	return f.resp, f.err
}

func str(s string) *string { return &s }

func TestTwilioGateway_Send_Success(t *testing.T) {
	fc := &fakeCreator{resp: &twilioApi.ApiV2010Message{Sid: str("SM123"), Status: str("queued")}}
	g := &TwilioGateway{api: fc, from: "+14155238886"}

	id, err := g.Send(context.Background(), Message{To: "+919800000001", Body: "hello"})
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if id != "SM123" {
		t.Fatalf("expected sid SM123, got %q", id)
	}
	if *fc.got.To != "whatsapp:+919800000001" || *fc.got.From != "whatsapp:+14155238886" {
		t.Fatalf("unexpected addressing to=%q from=%q", *fc.got.To, *fc.got.From)
	}
	if *fc.got.Body != "hello" {
		t.Fatalf("unexpected body %q", *fc.got.Body)
	}
}

func TestTwilioGateway_Send_Failed(t *testing.T) {
	fc := &fakeCreator{resp: &twilioApi.ApiV2010Message{Sid: str("SM1"), Status: str("failed"), ErrorMessage: str("unreachable")}}
	g := &TwilioGateway{api: fc, from: "whatsapp:+1"}

	_, err := g.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got: %v", err)
	}
}

func TestTwilioGateway_Send_APIError(t *testing.T) {
	boom := errors.New("boom")
	g := &TwilioGateway{api: &fakeCreator{err: boom}, from: "+1"}

	if _, err := g.Send(context.Background(), Message{To: "+91", Body: "hi"}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped api error, got: %v", err)
	}
}
