package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/LeventeLantos/household-messaging/internal/api"
	"github.com/LeventeLantos/household-messaging/internal/cache"
	"github.com/LeventeLantos/household-messaging/internal/client"
	"github.com/LeventeLantos/household-messaging/internal/config"
	"github.com/LeventeLantos/household-messaging/internal/database"
	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/logging"
	"github.com/LeventeLantos/household-messaging/internal/repo"
	"github.com/LeventeLantos/household-messaging/internal/schedule"
	"github.com/LeventeLantos/household-messaging/internal/scheduler"
	"github.com/LeventeLantos/household-messaging/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAll()
	if err != nil {
		log.Fatal(err)
	}

	logging.Setup(cfg.Server.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("messaging app stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	slog.Info("messaging app starting",
		"addr", cfg.Server.Address,
		"db", cfg.Database.Driver,
		"interval", cfg.Scheduler.Interval,
		"cron", cfg.Scheduler.Cron,
		"gateway", cfg.Gateway.Provider,
		"translate", cfg.Translate.Provider,
		"redis", cfg.Redis.Enabled,
	)

	dsn := cfg.Database.SQLitePath
	if cfg.Database.Driver == database.DriverPostgres {
		dsn = cfg.Database.PostgresURL
	}
	db, err := database.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	store := repo.NewStore(db)

	opts := service.Options{
		Remote:    newRemote(cfg.Translate),
		Tolerance: cfg.Scheduler.Tolerance,
		ClaimTTL:  cfg.Scheduler.ClaimTTL,
	}

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			return err
		}

		rc := cache.NewRedisCache(rdb, cfg.Redis.TTL)
		opts.Shared = rc
		opts.Sent = rc
		opts.Claimer = cache.NewRedisClaimer(rdb)
	}

	dispatcher, err := service.NewDispatcher(newGateway(cfg.Gateway), store, nil)
	if err != nil {
		return err
	}

	sender, err := service.NewAutoSender(store, dispatcher, opts)
	if err != nil {
		return err
	}

	job := func(ctx context.Context) {
		sum, err := sender.Run(ctx, service.RunOptions{})
		if err != nil {
			slog.Error("auto-send run failed", "err", err)
			return
		}
		if sum.Processed > 0 {
			slog.Info("auto-send run finished",
				"processed", sum.Processed,
				"sent", sum.Sent,
				"failed", sum.Failed,
				"skipped", sum.Skipped,
				"busy", sum.Busy,
			)
		}
	}

	sched, err := newTrigger(cfg.Scheduler, job)
	if err != nil {
		return err
	}
	if cfg.Scheduler.AutoStart {
		sched.Start()
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           loggingMiddleware(api.Router(api.NewHandler(sched, sender, store))),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func newGateway(cfg config.GatewayConfig) client.Gateway {
	if cfg.Provider == "twilio" {
		return client.NewTwilioGateway(cfg.TwilioSID, cfg.TwilioToken, cfg.WhatsAppNumber)
	}
	return client.NewGatewayClient(cfg.URL, cfg.Token)
}

// newRemote returns nil when only the static dictionary should be used.
func newRemote(cfg config.TranslateConfig) i18n.Remote {
	switch cfg.Provider {
	case "http":
		return i18n.NewHTTPRemote(cfg.URL, "")
	case "openai":
		return i18n.NewOpenAIRemote(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	default:
		return nil
	}
}

func newTrigger(cfg config.SchedulerConfig, job func(context.Context)) (scheduler.Trigger, error) {
	if cfg.Cron != "" {
		return scheduler.NewCron(cfg.Cron, schedule.Zone, job)
	}
	return scheduler.NewInterval(cfg.Interval, job)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
