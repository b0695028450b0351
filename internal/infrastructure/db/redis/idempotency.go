package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const idempotencyTTL = 24 * time.Hour

// IdempotencyChecker maps purchase Idempotency-Keys to the purchase id they
// committed, backed by Redis. Key format: idem:purchase:<user_id>:<key>
type IdempotencyChecker struct {
	client *redis.Client
}

// NewIdempotencyChecker creates an IdempotencyChecker wrapping the given client.
func NewIdempotencyChecker(client *redis.Client) *IdempotencyChecker {
	return &IdempotencyChecker{client: client}
}

// Seen reports whether this key already committed a purchase for the user,
// and if so which one.
func (c *IdempotencyChecker) Seen(ctx context.Context, userID int64, key string) (int64, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID, key)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency check: %w", err)
	}

	purchaseID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency check: bad value %q: %w", val, err)
	}
	return purchaseID, true, nil
}

// Mark records the purchase committed under this key (expires after idempotencyTTL).
func (c *IdempotencyChecker) Mark(ctx context.Context, userID int64, key string, purchaseID int64) error {
	return c.client.Set(ctx, c.key(userID, key), strconv.FormatInt(purchaseID, 10), idempotencyTTL).Err()
}

func (c *IdempotencyChecker) key(userID int64, key string) string {
	return fmt.Sprintf("idem:purchase:%d:%s", userID, key)
}
