package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Scheduler SchedulerConfig
	Gateway   GatewayConfig
	Translate TranslateConfig
}

type ServerConfig struct {
	Address  string `env:"SERVER_ADDRESS" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" validate:"oneof=sqlite postgres"`
	SQLitePath  string `env:"SQLITE_PATH"`
	PostgresURL string `env:"POSTGRES_URL"`
}

type RedisConfig struct {
	Enabled  bool
	Address  string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" validate:"gte=0,lte=15"`
	TTL      time.Duration `env:"REDIS_TTL_SECONDS" validate:"gt=0s"`
}

type SchedulerConfig struct {
	Interval  time.Duration `env:"SCHED_INTERVAL_SECONDS" validate:"gt=0s"`
	Cron      string        `env:"SCHED_CRON" validate:"omitempty,cron"`
	AutoStart bool          `env:"SCHED_AUTOSTART"`
	Tolerance time.Duration `env:"SEND_TOLERANCE_MINUTES" validate:"gt=0s,lte=30m"`
	ClaimTTL  time.Duration `env:"CLAIM_TTL_SECONDS" validate:"gt=0s"`
}

type GatewayConfig struct {
	Provider       string `env:"GATEWAY_PROVIDER" validate:"oneof=ultramsg twilio"`
	URL            string `env:"GATEWAY_URL"`
	Token          string `env:"GATEWAY_TOKEN"`
	TwilioSID      string `env:"TWILIO_ACCOUNT_SID"`
	TwilioToken    string `env:"TWILIO_AUTH_TOKEN"`
	WhatsAppNumber string `env:"TWILIO_WHATSAPP_NUMBER"`
}

type TranslateConfig struct {
	Provider      string `env:"TRANSLATE_PROVIDER" validate:"oneof=none http openai"`
	URL           string `env:"TRANSLATE_URL"`
	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
}

// LoadAll reads the environment and reports every problem at once.
func LoadAll() (*Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Address:  getEnv("SERVER_ADDRESS", ":8080"),
			LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			SQLitePath: getEnv("SQLITE_PATH", "household.db"),
		},
		Scheduler: SchedulerConfig{
			Cron: os.Getenv("SCHED_CRON"),
		},
		Gateway: GatewayConfig{
			Provider: strings.ToLower(getEnv("GATEWAY_PROVIDER", "ultramsg")),
		},
		Translate: TranslateConfig{
			Provider:      strings.ToLower(getEnv("TRANSLATE_PROVIDER", "none")),
			OpenAIModel:   os.Getenv("OPENAI_MODEL"),
			OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		},
	}

	var err error

	if cfg.Database.Driver == "postgres" {
		cfg.Database.PostgresURL, err = requireEnv("POSTGRES_URL")
		collect(err)
	}

	switch cfg.Gateway.Provider {
	case "ultramsg":
		cfg.Gateway.URL, err = requireEnv("GATEWAY_URL")
		collect(err)
		cfg.Gateway.Token, err = requireEnv("GATEWAY_TOKEN")
		collect(err)
	case "twilio":
		cfg.Gateway.TwilioSID, err = requireEnv("TWILIO_ACCOUNT_SID")
		collect(err)
		cfg.Gateway.TwilioToken, err = requireEnv("TWILIO_AUTH_TOKEN")
		collect(err)
		cfg.Gateway.WhatsAppNumber, err = requireEnv("TWILIO_WHATSAPP_NUMBER")
		collect(err)
	}

	switch cfg.Translate.Provider {
	case "http":
		cfg.Translate.URL, err = requireEnv("TRANSLATE_URL")
		collect(err)
	case "openai":
		cfg.Translate.OpenAIKey, err = requireEnv("OPENAI_API_KEY")
		collect(err)
	}

	cfg.Scheduler.Interval, err = getEnvDuration("SCHED_INTERVAL_SECONDS", 60*time.Second, time.Second)
	collect(err)
	cfg.Scheduler.AutoStart, err = getEnvBool("SCHED_AUTOSTART", true)
	collect(err)
	cfg.Scheduler.Tolerance, err = getEnvDuration("SEND_TOLERANCE_MINUTES", 5*time.Minute, time.Minute)
	collect(err)
	cfg.Scheduler.ClaimTTL, err = getEnvDuration("CLAIM_TTL_SECONDS", 2*time.Minute, time.Second)
	collect(err)

	cfg.Redis, err = loadRedisConfig()
	collect(err)

	if len(errs) == 0 {
		collect(validate(cfg))
	}
	if err := joinErrors(errs); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRedisConfig() (RedisConfig, error) {
	ttl, ttlErr := getEnvDuration("REDIS_TTL_SECONDS", 24*time.Hour, time.Second)

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return RedisConfig{Enabled: false, TTL: 24 * time.Hour}, nil
	}

	db, dbErr := getEnvInt("REDIS_DB", 0)
	return RedisConfig{
		Enabled:  true,
		Address:  addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
		TTL:      ttl,
	}, errors.Join(dbErr, ttlErr)
}

var validate = newValidator()

func newValidator() func(*Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("env")
	})

	return func(cfg *Config) error {
		err := v.Struct(cfg)
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		out := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			rule := fe.Tag()
			if fe.Param() != "" {
				rule += "=" + fe.Param()
			}
			out = append(out, fmt.Errorf("invalid %s %v: must satisfy %s", fe.Field(), fe.Value(), rule))
		}
		return joinErrors(out)
	}
}

func requireEnv(key string) (string, error) {
	val := os.Getenv(key)
	if val == "" {
		return "", fmt.Errorf("missing required env var: %s", key)
	}
	return val, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid int for env %s: %q", key, v)
	}
	return i, nil
}

// getEnvDuration accepts a Go duration ("90s") or a bare number counted in
// unit.
func getEnvDuration(key string, def, unit time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * unit, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for env %s: %q", key, v)
	}
	return d, nil
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid bool for env %s: %q", key, v)
	}
	return b, nil
}

func joinErrors(errs []error) error {
	return errors.Join(errs...)
}
