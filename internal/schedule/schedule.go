// Package schedule decides whether a contact's auto-send slot is due.
//
// All wall-clock reasoning happens in a fixed UTC+05:30 zone. There is no
// daylight saving in that zone, so a fixed offset is exact.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/LeventeLantos/household-messaging/internal/model"
)

const DefaultTolerance = 5 * time.Minute

// Zone is the local zone send times are expressed in.
var Zone = time.FixedZone("IST", 5*60*60+30*60)

type Evaluator struct {
	Tolerance time.Duration
	Location  *time.Location
}

func New(tolerance time.Duration) Evaluator {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return Evaluator{Tolerance: tolerance, Location: Zone}
}

var defaultEvaluator = New(DefaultTolerance)

// ShouldSend evaluates cfg with the default tolerance in Zone.
func ShouldSend(cfg model.AutoSendConfig, lastSentAt *time.Time, now time.Time) bool {
	return defaultEvaluator.ShouldSend(cfg, lastSentAt, now)
}

// Slot returns the occurrence of cfg.SendTime nearest to now, in local time.
func Slot(cfg model.AutoSendConfig, now time.Time) (time.Time, bool) {
	return defaultEvaluator.Slot(cfg, now)
}

func (e Evaluator) loc() *time.Location {
	if e.Location == nil {
		return Zone
	}
	return e.Location
}

func (e Evaluator) tolerance() time.Duration {
	if e.Tolerance <= 0 {
		return DefaultTolerance
	}
	return e.Tolerance
}

// Slot picks among yesterday's, today's and tomorrow's occurrence so that a
// window straddling midnight still matches.
func (e Evaluator) Slot(cfg model.AutoSendConfig, now time.Time) (time.Time, bool) {
	h, m, ok := ParseClock(cfg.SendTime)
	if !ok {
		return time.Time{}, false
	}

	local := now.In(e.loc())
	y, mo, d := local.Date()

	var best time.Time
	var bestDist time.Duration
	for off := -1; off <= 1; off++ {
		c := time.Date(y, mo, d+off, h, m, 0, 0, e.loc())
		dist := absDuration(local.Sub(c))
		if best.IsZero() || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, true
}

func (e Evaluator) ShouldSend(cfg model.AutoSendConfig, lastSentAt *time.Time, now time.Time) bool {
	if !cfg.Enabled {
		return false
	}

	slot, ok := e.Slot(cfg, now)
	if !ok {
		return false
	}
	tol := e.tolerance()
	if absDuration(now.Sub(slot)) > tol {
		return false
	}

	switch cfg.Frequency {
	case model.Weekly:
		if !cfg.Days.Contains(slot.Weekday()) {
			return false
		}
	case model.Daily, "":
	default:
		return false
	}

	if lastSentAt != nil {
		last := lastSentAt.In(e.loc())
		if sameDay(last, slot) || !last.Before(slot.Add(-tol)) {
			return false
		}
	}
	return true
}

// ParseClock parses "HH:MM" (24h). A trailing ":SS" is accepted and ignored.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return 0, 0, false
	}
	return hour, minute, true
}

// FormatClock renders t as local "HH:MM".
func FormatClock(t time.Time) string {
	return t.In(Zone).Format("15:04")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
