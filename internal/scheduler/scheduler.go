// Package scheduler fires the auto-send job periodically, either on a fixed
// interval or on a cron expression.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Trigger is what the HTTP surface controls.
type Trigger interface {
	Start() bool
	Stop() bool
	IsRunning() bool
	Status() Status
}

type Status struct {
	Running      bool      `json:"running"`
	Mode         string    `json:"mode"`
	Schedule     string    `json:"schedule"`
	Runs         int64     `json:"runs"`
	LastRunAt    time.Time `json:"lastRunAt,omitzero"`
	LastDuration string    `json:"lastDuration,omitempty"`
}

// runStats wraps the job with panic recovery and bookkeeping shared by both
// triggers.
type runStats struct {
	job func(context.Context)

	mu      sync.Mutex
	runs    int64
	lastAt  time.Time
	lastDur time.Duration
}

func (r *runStats) safeRun(ctx context.Context) {
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			slog.Error("scheduled run panic recovered", "panic", p)
		}
		dur := time.Since(start)

		r.mu.Lock()
		r.runs++
		r.lastAt = start
		r.lastDur = dur
		r.mu.Unlock()

		slog.Info("scheduled run completed", "duration_ms", dur.Milliseconds())
	}()

	r.job(ctx)
}

func (r *runStats) fill(st *Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st.Runs = r.runs
	st.LastRunAt = r.lastAt
	if r.runs > 0 {
		st.LastDuration = r.lastDur.String()
	}
}
