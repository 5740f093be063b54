package main

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/LeventeLantos/household-messaging/internal/client"
	"github.com/LeventeLantos/household-messaging/internal/config"
	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/logging"
	"github.com/LeventeLantos/household-messaging/internal/scheduler"
)

func TestLoggingMiddleware_PassesThroughAndCapturesStatus(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	logging.SetupWriter(&buf, "info")
	defer slog.SetDefault(prev)

	handler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	if body := rr.Body.String(); body != "ok" {
		t.Fatalf("expected body %q, got %q", "ok", body)
	}

	if out := buf.String(); !strings.Contains(out, "status=201") || !strings.Contains(out, "path=/test") {
		t.Fatalf("expected request log with status and path, got %q", out)
	}
}

func TestNewGateway(t *testing.T) {
	if _, ok := newGateway(config.GatewayConfig{Provider: "ultramsg", URL: "http://x", Token: "t"}).(*client.GatewayClient); !ok {
		t.Fatalf("expected ultramsg gateway client")
	}
	if _, ok := newGateway(config.GatewayConfig{Provider: "twilio", TwilioSID: "AC1", TwilioToken: "t", WhatsAppNumber: "+14155238886"}).(*client.TwilioGateway); !ok {
		t.Fatalf("expected twilio gateway")
	}
}

func TestNewRemote(t *testing.T) {
	if r := newRemote(config.TranslateConfig{Provider: "none"}); r != nil {
		t.Fatalf("expected nil remote, got %T", r)
	}
	if _, ok := newRemote(config.TranslateConfig{Provider: "http", URL: "http://x"}).(*i18n.HTTPRemote); !ok {
		t.Fatalf("expected http remote")
	}
	if _, ok := newRemote(config.TranslateConfig{Provider: "openai", OpenAIKey: "k"}).(*i18n.OpenAIRemote); !ok {
		t.Fatalf("expected openai remote")
	}
}

func TestNewTrigger(t *testing.T) {
	job := func(context.Context) {}

	tr, err := newTrigger(config.SchedulerConfig{Interval: time.Minute}, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tr.(*scheduler.Interval); !ok {
		t.Fatalf("expected interval trigger, got %T", tr)
	}

	tr, err = newTrigger(config.SchedulerConfig{Interval: time.Minute, Cron: "*/5 * * * *"}, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := tr.(*scheduler.Cron); !ok {
		t.Fatalf("expected cron trigger, got %T", tr)
	}
}
