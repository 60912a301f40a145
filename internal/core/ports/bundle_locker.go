package ports

import (
	"context"

	"spktrack/internal/core/domain/model/kernel"
)

// BundleLock is a held advisory lock on one bundle. Release must be called
// when the critical section ends, normally via defer.
type BundleLock interface {
	// Release frees the lock. Releasing an already-expired lock is not an error.
	Release(ctx context.Context) error
}

// BundleLocker serializes scan processing per bundle across service
// instances. Two concurrent scans of the same code must not interleave; the
// second waits for the lock and then observes the first scan's committed
// stage. The lock is an optimization for a clean error path; the conditional
// stage write in BundleRepository.Update is the correctness guarantee.
type BundleLocker interface {
	// Lock acquires the advisory lock for the bundle, waiting briefly if it
	// is held. Returns an error when the lock cannot be acquired in time.
	Lock(ctx context.Context, bundleID kernel.UUID) (BundleLock, error)
}
