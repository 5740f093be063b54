package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newGateway(t *testing.T, status int, reply string, captured *sendRequest) *GatewayClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			b, _ := ioReadAll(r)
			if err := json.Unmarshal(b, captured); err != nil {
				t.Errorf("failed to decode request json: %v body=%q", err, string(b))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return NewGatewayClient(srv.URL, "tok-1")
}

func TestGatewayClient_Send_Success(t *testing.T) {
	t.Parallel()

	var req sendRequest
	c := newGateway(t, http.StatusOK, `{"sent":"true","message":"ok","id":"abc123"}`, &req)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	id, err := c.Send(ctx, Message{To: "+919800000001", Body: "hello", ReferenceID: "task-1", Priority: 10})
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if id != "abc123" {
		t.Fatalf("expected id %q, got %q", "abc123", id)
	}

	if req.Token != "tok-1" || req.To != "+919800000001" || req.Body != "hello" {
		t.Fatalf("unexpected request %+v", req)
	}
	if req.ReferenceID != "task-1" || req.Priority != 10 {
		t.Fatalf("unexpected request metadata %+v", req)
	}
}

func TestGatewayClient_Send_BoolSentAndNumericID(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusCreated, `{"sent":true,"id":4711}`, nil)

	id, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if err != nil {
		t.Fatalf("Send() error: %v", err)
	}
	if id != "4711" {
		t.Fatalf("expected id %q, got %q", "4711", id)
	}
}

func TestGatewayClient_Send_SentFalse_ReturnsRejected(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusOK, `{"sent":"false","error":"invalid number"}`, nil)

	_, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got: %v", err)
	}
	if !strings.Contains(err.Error(), "invalid number") {
		t.Fatalf("expected gateway reason in error, got: %v", err)
	}
}

func TestGatewayClient_Send_MissingSent_ReturnsRejected(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusOK, `{"id":"abc"}`, nil)

	_, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got: %v", err)
	}
}

func TestGatewayClient_Send_Non2xx_ReturnsErrorWithBody(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusUnauthorized, "bad token", nil)

	_, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	msg := err.Error()
	if !strings.Contains(msg, "unexpected status code: 401") {
		t.Fatalf("expected error to mention status code, got: %v", err)
	}
	if !strings.Contains(msg, `body="bad token"`) {
		t.Fatalf("expected error to include body, got: %v", err)
	}
}

func TestGatewayClient_Send_InvalidJSON_ReturnsErrorWithBody(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusOK, "THIS IS NOT JSON", nil)

	_, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "failed to decode json") {
		t.Fatalf("expected decode error, got: %v", err)
	}
	if !strings.Contains(err.Error(), `body="THIS IS NOT JSON"`) {
		t.Fatalf("expected error to include body, got: %v", err)
	}
}

func TestGatewayClient_Send_MissingID_ReturnsError(t *testing.T) {
	t.Parallel()

	c := newGateway(t, http.StatusOK, `{"sent":"true"}`, nil)

	_, err := c.Send(context.Background(), Message{To: "+91", Body: "hi"})
	if err == nil || !strings.Contains(err.Error(), "missing id") {
		t.Fatalf("expected missing id error, got: %v", err)
	}
}

func TestGatewayClient_Send_ContextCanceled(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"sent":"true","id":"abc"}`))
	}))
	defer srv.Close()

	c := NewGatewayClient(srv.URL, "tok")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Send(ctx, Message{To: "+91", Body: "hi"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "context") &&
		!strings.Contains(strings.ToLower(err.Error()), "deadline") {
		t.Fatalf("expected context/deadline error, got: %v", err)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+91 98000-00001":  "+919800000001",
		" (080) 1234 5678": "08012345678",
		"91+98":            "9198",
		"+":                "",
		"":                 "",
	}
	for in, want := range cases {
		if got := NormalizePhone(in); got != want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", in, got, want)
		}
	}
}

func ioReadAll(r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(r.Body)
}
