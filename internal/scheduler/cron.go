package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

// Cron runs the job on a standard five-field cron expression evaluated in
// loc. A run still in progress makes the next firing skip.
type Cron struct {
	spec  string
	loc   *time.Location
	stats *runStats

	running atomic.Bool

	mu     sync.Mutex
	c      *cron.Cron
	cancel context.CancelFunc
}

func NewCron(spec string, loc *time.Location, job func(context.Context)) (*Cron, error) {
	if job == nil {
		return nil, errors.New("job must not be nil")
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Cron{spec: spec, loc: loc, stats: &runStats{job: job}}, nil
}

func (s *Cron) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := cron.New(
		cron.WithLocation(s.loc),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	if _, err := c.AddFunc(s.spec, func() { s.stats.safeRun(ctx) }); err != nil {
		cancel()
		slog.Error("cron scheduler not started", "spec", s.spec, "err", err)
		return false
	}

	s.c = c
	s.cancel = cancel
	s.running.Store(true)
	c.Start()

	slog.Info("cron scheduler started", "spec", s.spec, "location", s.loc.String())
	return true
}

func (s *Cron) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running.Load() {
		return false
	}

	s.cancel()
	<-s.c.Stop().Done()
	s.running.Store(false)

	slog.Info("cron scheduler stopped")
	return true
}

func (s *Cron) IsRunning() bool {
	return s.running.Load()
}

// Next reports when the job fires next; zero when stopped.
func (s *Cron) Next() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.c == nil || !s.running.Load() {
		return time.Time{}
	}
	entries := s.c.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	return entries[0].Next
}

func (s *Cron) Status() Status {
	st := Status{Running: s.IsRunning(), Mode: "cron", Schedule: s.spec}
	s.stats.fill(&st)
	return st
}
