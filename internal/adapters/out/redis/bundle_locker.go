package redis

import (
	"context"
	"fmt"
	"time"

	"spktrack/internal/core/domain/model/kernel"
	"spktrack/internal/core/ports"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	lockKeyPattern = "locks.bundle.%s"

	// lockTTL bounds how long a crashed instance can hold a bundle hostage.
	lockTTL = 10 * time.Second

	// lockRetryInterval and lockRetryLimit give a waiting scan roughly two
	// seconds to pick up the lock from a concurrent scan of the same code.
	lockRetryInterval = 100 * time.Millisecond
	lockRetryLimit    = 20
)

// RedisBundleLocker serializes scan processing per bundle across service
// instances using redislock.
type RedisBundleLocker struct {
	locker *redislock.Client
}

// NewRedisBundleLocker creates a locker on the given Redis client.
func NewRedisBundleLocker(client *redis.Client) *RedisBundleLocker {
	return &RedisBundleLocker{locker: redislock.New(client)}
}

// Lock acquires the advisory lock for the bundle, retrying briefly while a
// concurrent scan holds it.
func (l *RedisBundleLocker) Lock(ctx context.Context, bundleID kernel.UUID) (ports.BundleLock, error) {
	if err := bundleID.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf(lockKeyPattern, bundleID.String())
	lock, err := l.locker.Obtain(ctx, key, lockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(
			redislock.LinearBackoff(lockRetryInterval), lockRetryLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("obtain lock for bundle %s: %w", bundleID, err)
	}

	return &redisBundleLock{lock: lock}, nil
}

type redisBundleLock struct {
	lock *redislock.Lock
}

// Release frees the lock. A lock whose TTL already expired is treated as
// released.
func (l *redisBundleLock) Release(ctx context.Context) error {
	err := l.lock.Release(ctx)
	if err == redislock.ErrLockNotHeld {
		return nil
	}
	return err
}
