package config

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

var envMu sync.Mutex

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GATEWAY_URL", "https://api.ultramsg.com/instance1/messages/chat")
	t.Setenv("GATEWAY_TOKEN", "tok")
}

func TestLoadAll_HappyPath_Defaults(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)
	setBaseEnv(t)

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if cfg.Server.Address != ":8080" || cfg.Server.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Database.Driver != "sqlite" || cfg.Database.SQLitePath != "household.db" {
		t.Fatalf("unexpected database defaults: %+v", cfg.Database)
	}
	if cfg.Gateway.Provider != "ultramsg" || cfg.Gateway.Token != "tok" {
		t.Fatalf("unexpected gateway: %+v", cfg.Gateway)
	}
	if cfg.Scheduler.Interval != 60*time.Second {
		t.Fatalf("unexpected Scheduler.Interval default: %v", cfg.Scheduler.Interval)
	}
	if cfg.Scheduler.Tolerance != 5*time.Minute || cfg.Scheduler.ClaimTTL != 2*time.Minute {
		t.Fatalf("unexpected scheduler defaults: %+v", cfg.Scheduler)
	}
	if !cfg.Scheduler.AutoStart || cfg.Scheduler.Cron != "" {
		t.Fatalf("unexpected scheduler defaults: %+v", cfg.Scheduler)
	}
	if cfg.Translate.Provider != "none" {
		t.Fatalf("unexpected translate provider: %q", cfg.Translate.Provider)
	}
	if cfg.Redis.Enabled {
		t.Fatalf("expected Redis disabled when REDIS_ADDR not set")
	}
}

func TestLoadAll_HappyPath_WithRedis(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)
	setBaseEnv(t)

	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_PASSWORD", "secret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("REDIS_TTL_SECONDS", "42")

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if !cfg.Redis.Enabled {
		t.Fatalf("expected Redis enabled")
	}
	if cfg.Redis.Address != "localhost:6379" || cfg.Redis.Password != "secret" {
		t.Fatalf("unexpected Redis config: %+v", cfg.Redis)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("unexpected Redis.DB: %d", cfg.Redis.DB)
	}
	if cfg.Redis.TTL != 42*time.Second {
		t.Fatalf("unexpected Redis.TTL: %v", cfg.Redis.TTL)
	}
}

func TestLoadAll_Overrides(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://u:p@localhost:5432/db?sslmode=disable")
	t.Setenv("GATEWAY_PROVIDER", "twilio")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC1")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_WHATSAPP_NUMBER", "+14155238886")
	t.Setenv("TRANSLATE_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SCHED_CRON", "*/5 * * * *")
	t.Setenv("SCHED_AUTOSTART", "false")
	t.Setenv("SEND_TOLERANCE_MINUTES", "10")
	t.Setenv("CLAIM_TTL_SECONDS", "90s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error: %v", err)
	}

	if cfg.Database.PostgresURL == "" || cfg.Gateway.WhatsAppNumber != "+14155238886" || cfg.Translate.OpenAIKey != "sk-test" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Scheduler.Cron != "*/5 * * * *" || cfg.Scheduler.AutoStart {
		t.Fatalf("unexpected scheduler: %+v", cfg.Scheduler)
	}
	if cfg.Scheduler.Tolerance != 10*time.Minute || cfg.Scheduler.ClaimTTL != 90*time.Second {
		t.Fatalf("unexpected durations: %+v", cfg.Scheduler)
	}
	if cfg.Server.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.Server.LogLevel)
	}
}

func TestLoadAll_RequiredEnvMissing(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	cases := []struct {
		name string
		set  map[string]string
		want []string
	}{
		{
			name: "ultramsg credentials",
			set:  map[string]string{},
			want: []string{"GATEWAY_URL", "GATEWAY_TOKEN"},
		},
		{
			name: "postgres url",
			set:  map[string]string{"DB_DRIVER": "postgres", "GATEWAY_URL": "u", "GATEWAY_TOKEN": "t"},
			want: []string{"POSTGRES_URL"},
		},
		{
			name: "twilio credentials",
			set:  map[string]string{"GATEWAY_PROVIDER": "twilio", "TWILIO_ACCOUNT_SID": "AC1"},
			want: []string{"TWILIO_AUTH_TOKEN", "TWILIO_WHATSAPP_NUMBER"},
		},
		{
			name: "translate url",
			set:  map[string]string{"TRANSLATE_PROVIDER": "http", "GATEWAY_URL": "u", "GATEWAY_TOKEN": "t"},
			want: []string{"TRANSLATE_URL"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnv(t)
			for k, v := range tc.set {
				t.Setenv(k, v)
			}

			_, err := LoadAll()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			for _, key := range tc.want {
				if !strings.Contains(err.Error(), key) {
					t.Fatalf("expected error mentioning %s, got: %v", key, err)
				}
			}
		})
	}
}

func TestLoadAll_InvalidValues(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	cases := []struct {
		name string
		key  string
		val  string
	}{
		{"invalid SCHED_INTERVAL_SECONDS", "SCHED_INTERVAL_SECONDS", "nope"},
		{"zero SCHED_INTERVAL_SECONDS", "SCHED_INTERVAL_SECONDS", "0"},
		{"invalid SCHED_AUTOSTART", "SCHED_AUTOSTART", "maybe"},
		{"invalid SCHED_CRON", "SCHED_CRON", "every day"},
		{"too wide SEND_TOLERANCE_MINUTES", "SEND_TOLERANCE_MINUTES", "90"},
		{"invalid CLAIM_TTL_SECONDS", "CLAIM_TTL_SECONDS", "-5"},
		{"unknown DB_DRIVER", "DB_DRIVER", "mysql"},
		{"unknown GATEWAY_PROVIDER", "GATEWAY_PROVIDER", "pigeon"},
		{"unknown TRANSLATE_PROVIDER", "TRANSLATE_PROVIDER", "babelfish"},
		{"unknown LOG_LEVEL", "LOG_LEVEL", "loud"},
		{"invalid REDIS_DB", "REDIS_DB", "bad"},
		{"out of range REDIS_DB", "REDIS_DB", "99"},
		{"invalid REDIS_TTL_SECONDS", "REDIS_TTL_SECONDS", "bad"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearTestEnv(t)
			setBaseEnv(t)

			if strings.HasPrefix(tc.key, "REDIS_") {
				t.Setenv("REDIS_ADDR", "localhost:6379")
			}
			t.Setenv(tc.key, tc.val)

			_, err := LoadAll()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.key) {
				t.Fatalf("expected error mentioning %s, got: %v", tc.key, err)
			}
		})
	}
}

func TestRequireEnv(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	_, err := requireEnv("MISSING_KEY")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	t.Setenv("FOO", "bar")
	v, err := requireEnv("FOO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "bar" {
		t.Fatalf("expected %q, got %q", "bar", v)
	}
}

func TestGetEnv(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	if got := getEnv("NOPE", "default"); got != "default" {
		t.Fatalf("expected default, got %q", got)
	}

	t.Setenv("A", "x")
	if got := getEnv("A", "default"); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	got, err := getEnvInt("MISSING", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected default 7, got %d", got)
	}

	t.Setenv("N", "123")
	got, err = getEnvInt("N", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 123 {
		t.Fatalf("expected 123, got %d", got)
	}

	t.Setenv("BAD", "abc")
	_, err = getEnvInt("BAD", 7)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "BAD") {
		t.Fatalf("expected error mentioning BAD, got: %v", err)
	}
}

func TestGetEnvDuration(t *testing.T) {
	envMu.Lock()
	defer envMu.Unlock()

	clearTestEnv(t)

	if d, err := getEnvDuration("MISSING", time.Minute, time.Second); err != nil || d != time.Minute {
		t.Fatalf("expected default, got %v %v", d, err)
	}

	t.Setenv("N", "3")
	if d, _ := getEnvDuration("N", 0, time.Minute); d != 3*time.Minute {
		t.Fatalf("expected bare number in unit, got %v", d)
	}

	t.Setenv("N", "1h30m")
	if d, _ := getEnvDuration("N", 0, time.Second); d != 90*time.Minute {
		t.Fatalf("expected parsed duration, got %v", d)
	}

	t.Setenv("BAD", "soon")
	if _, err := getEnvDuration("BAD", 0, time.Second); err == nil || !strings.Contains(err.Error(), "BAD") {
		t.Fatalf("expected error mentioning BAD, got: %v", err)
	}
}

func TestJoinErrors(t *testing.T) {
	if err := joinErrors(nil); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	e1 := errors.New("one")
	e2 := errors.New("two")
	err := joinErrors([]error{e1, e2})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	if !errors.Is(err, e1) {
		t.Fatalf("expected errors.Is(err, e1) to be true")
	}
	if !errors.Is(err, e2) {
		t.Fatalf("expected errors.Is(err, e2) to be true")
	}
}

func clearTestEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"SERVER_ADDRESS",
		"LOG_LEVEL",
		"DB_DRIVER",
		"SQLITE_PATH",
		"POSTGRES_URL",
		"GATEWAY_PROVIDER",
		"GATEWAY_URL",
		"GATEWAY_TOKEN",
		"TWILIO_ACCOUNT_SID",
		"TWILIO_AUTH_TOKEN",
		"TWILIO_WHATSAPP_NUMBER",
		"SCHED_INTERVAL_SECONDS",
		"SCHED_CRON",
		"SCHED_AUTOSTART",
		"SEND_TOLERANCE_MINUTES",
		"CLAIM_TTL_SECONDS",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"REDIS_TTL_SECONDS",
		"TRANSLATE_PROVIDER",
		"TRANSLATE_URL",
		"OPENAI_API_KEY",
		"OPENAI_MODEL",
		"OPENAI_BASE_URL",
		"FOO",
		"A",
		"N",
		"BAD",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
