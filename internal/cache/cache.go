// Package cache holds the Redis-backed pieces shared across processes: the
// translation L2 cache, the per-contact send lease and recent send receipts.
package cache

import (
	"context"
	"time"

	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/repo"
)

// SentCache remembers the last successful send per contact. LastSent
// reports ok=false when nothing is cached.
type SentCache interface {
	StoreSent(ctx context.Context, contactID int64, gatewayID string, sentAt time.Time) error
	LastSent(ctx context.Context, contactID int64) (time.Time, bool, error)
	ClearSent(ctx context.Context, contactID int64) error
}

var (
	_ SentCache        = (*RedisCache)(nil)
	_ i18n.SharedCache = (*RedisCache)(nil)
	_ repo.Claimer     = (*RedisClaimer)(nil)
)
