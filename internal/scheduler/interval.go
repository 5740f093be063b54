package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Interval runs the job once on Start and then every interval.
type Interval struct {
	interval time.Duration
	stats    *runStats

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewInterval(interval time.Duration, job func(context.Context)) (*Interval, error) {
	if interval <= 0 {
		return nil, errors.New("interval must be > 0")
	}
	if job == nil {
		return nil, errors.New("job must not be nil")
	}
	return &Interval{
		interval: interval,
		stats:    &runStats{job: job},
		done:     make(chan struct{}),
	}, nil
}

func (s *Interval) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running.Store(true)

	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		slog.Info("interval scheduler started", "interval", s.interval.String())

		s.stats.safeRun(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.stats.safeRun(ctx)
			}
		}
	}()

	return true
}

// Stop cancels the in-flight run's context and waits for it to return.
func (s *Interval) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return false
	}

	s.cancel()
	<-s.done
	s.running.Store(false)

	slog.Info("interval scheduler stopped")
	return true
}

func (s *Interval) IsRunning() bool {
	return s.running.Load()
}

func (s *Interval) Status() Status {
	st := Status{Running: s.IsRunning(), Mode: "interval", Schedule: s.interval.String()}
	s.stats.fill(&st)
	return st
}
