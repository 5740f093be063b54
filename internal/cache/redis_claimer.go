package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/LeventeLantos/household-messaging/internal/repo"
)

// Deletes the lock only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisClaimer leases contacts with SET NX PX. Expiry is enforced by Redis,
// so the caller's clock is ignored.
type RedisClaimer struct {
	rdb *redis.Client
}

func NewRedisClaimer(rdb *redis.Client) *RedisClaimer {
	return &RedisClaimer{rdb: rdb}
}

func claimKey(contactID int64) string {
	return fmt.Sprintf("claim:contact:%d", contactID)
}

func (c *RedisClaimer) Claim(ctx context.Context, contactID int64, _ time.Time, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	ok, err := c.rdb.SetNX(ctx, claimKey(contactID), token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("claim contact %d: %w", contactID, err)
	}
	if !ok {
		return "", repo.ErrClaimed
	}
	return token, nil
}

func (c *RedisClaimer) Release(ctx context.Context, contactID int64, token string) error {
	if err := releaseScript.Run(ctx, c.rdb, []string{claimKey(contactID)}, token).Err(); err != nil {
		return fmt.Errorf("release contact %d: %w", contactID, err)
	}
	return nil
}
