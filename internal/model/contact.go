package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

type Role string

const (
	RoleMaid   Role = "maid"
	RoleCook   Role = "cook"
	RoleVendor Role = "vendor"
)

// MessageType maps a contact role to the list it receives.
func (r Role) MessageType() MessageType {
	switch r {
	case RoleCook:
		return MealMessage
	case RoleVendor:
		return GroceryMessage
	default:
		return TaskMessage
	}
}

type Frequency string

const (
	Daily  Frequency = "daily"
	Weekly Frequency = "weekly"
)

type Contact struct {
	ID         int64      `db:"id" json:"id"`
	UserID     int64      `db:"user_id" json:"userId"`
	Name       string     `db:"name" json:"name"`
	Phone      string     `db:"phone" json:"phone"`
	Role       Role       `db:"role" json:"role"`
	Language   string     `db:"language" json:"language"`
	AutoSend   bool       `db:"auto_send" json:"autoSend"`
	SendTime   string     `db:"send_time" json:"sendTime"`
	Frequency  Frequency  `db:"frequency" json:"frequency"`
	DaysOfWeek Weekdays   `db:"days_of_week" json:"daysOfWeek"`
	LastSentAt *time.Time `db:"last_sent_at" json:"lastSentAt,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// AutoSendConfig is the part of a contact the schedule evaluator looks at.
type AutoSendConfig struct {
	Enabled   bool
	SendTime  string
	Frequency Frequency
	Days      Weekdays
}

func (c Contact) Schedule() AutoSendConfig {
	return AutoSendConfig{
		Enabled:   c.AutoSend,
		SendTime:  c.SendTime,
		Frequency: c.Frequency,
		Days:      c.DaysOfWeek,
	}
}

// Weekdays is stored as a comma separated list of lowercase English day names.
type Weekdays []time.Weekday

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := weekdayNames[key]; ok {
		return d, nil
	}
	// "mon", "tue", ...
	if len(key) >= 3 {
		for full, d := range weekdayNames {
			if strings.HasPrefix(full, key) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

func ParseWeekdays(names []string) (Weekdays, error) {
	out := make(Weekdays, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (w Weekdays) Contains(d time.Weekday) bool {
	for _, x := range w {
		if x == d {
			return true
		}
	}
	return false
}

func (w Weekdays) String() string {
	names := make([]string, len(w))
	for i, d := range w {
		names[i] = strings.ToLower(d.String())
	}
	return strings.Join(names, ",")
}

func (w Weekdays) Value() (driver.Value, error) {
	return w.String(), nil
}

func (w *Weekdays) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("weekdays: unsupported type %T", src)
	}
	days, err := ParseWeekdays(strings.Split(raw, ","))
	if err != nil {
		return err
	}
	*w = days
	return nil
}

func (w Weekdays) MarshalJSON() ([]byte, error) {
	names := make([]string, len(w))
	for i, d := range w {
		names[i] = `"` + strings.ToLower(d.String()) + `"`
	}
	return []byte("[" + strings.Join(names, ",") + "]"), nil
}
