package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	redisclient "github.com/muhammadheryan/rental-shop/cmd/redis"
)

// ErrNotObtained is returned when the lock is still held elsewhere after all retries.
var ErrNotObtained = redislock.ErrNotObtained

type Lock interface {
	Release(ctx context.Context) error
}

// Locker hands out short lived distributed locks.
type Locker interface {
	Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error)
}

type redisLocker struct {
	retryBackoff time.Duration
	maxRetries   int
}

func NewLocker(retryBackoff time.Duration, maxRetries int) Locker {
	return &redisLocker{retryBackoff: retryBackoff, maxRetries: maxRetries}
}

// StockKey is the lock key guarding one product's stock at one outlet.
func StockKey(productID, outletID uint64) string {
	return fmt.Sprintf("lock:stock:%d:%d", productID, outletID)
}

// Obtain falls back to a no-op lock when redis is not initialized; the stock row
// lock taken inside the transaction still serializes bookings.
func (l *redisLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (Lock, error) {
	client := redisclient.GetLocker()
	if client == nil {
		return noopLock{}, nil
	}
	lock, err := client.Obtain(ctx, key, ttl, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.retryBackoff), l.maxRetries),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) {
			return nil, ErrNotObtained
		}
		return nil, err
	}
	return lock, nil
}

type noopLock struct{}

func (noopLock) Release(context.Context) error { return nil }
