package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	throttleTTL         = 15 * time.Minute
	maxFailedAttempts   = 10
	throttleKeyTemplate = "login_failures:%s"
)

// LoginThrottle counts failed login attempts per email in Redis.
// Key format: login_failures:<email>, expiring after throttleTTL.
type LoginThrottle struct {
	client *redis.Client
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
func NewLoginThrottle(client *redis.Client) *LoginThrottle {
	return &LoginThrottle{client: client}
}

// TooManyFailures reports whether the email has exceeded the attempt budget.
func (t *LoginThrottle) TooManyFailures(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Get(ctx, t.key(email)).Int64()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= maxFailedAttempts, nil
}

// RecordFailure increments the failure counter and refreshes its expiry.
func (t *LoginThrottle) RecordFailure(ctx context.Context, email string) error {
	key := t.key(email)
	if err := t.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}
	return t.client.Expire(ctx, key, throttleTTL).Err()
}

// Reset clears the counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) error {
	return t.client.Del(ctx, t.key(email)).Err()
}

func (t *LoginThrottle) key(email string) string {
	return fmt.Sprintf(throttleKeyTemplate, email)
}
