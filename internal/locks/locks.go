package locks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/deliverhub/wallet-ledger/internal/logger"
	"github.com/deliverhub/wallet-ledger/internal/models"
)

// releaseScript deletes the lock key only if it still carries our token, so
// an expired lock re-acquired by someone else is never released by us.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

// ErrNotAcquired is returned when the lock could not be taken before the
// context was done.
var ErrNotAcquired = errors.New("lock not acquired")

// RedisLocker serializes operations on a keyed resource across service
// instances using SET NX with a TTL. The database row locks remain the hard
// safety net; this keeps contending requests queued instead of burning
// database transactions against each other.
type RedisLocker struct {
	rdb   *redis.Client
	ttl   time.Duration
	retry time.Duration
}

func NewRedisLocker(rdb *redis.Client, ttl time.Duration) *RedisLocker {
	return &RedisLocker{rdb: rdb, ttl: ttl, retry: 25 * time.Millisecond}
}

// Acquire blocks until the key lock is taken or ctx is done. It returns a
// release func that must be called exactly once.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(ctx context.Context) error, error) {
	token := uuid.NewString()

	for {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %s: %v", ErrNotAcquired, key, ctx.Err())
		case <-time.After(l.retry):
		}
	}

	release := func(ctx context.Context) error {
		if err := l.rdb.Eval(ctx, releaseScript, []string{key}, token).Err(); err != nil {
			logger.Log.Errorw("failed to release lock", "key", key, "error", err)
			return err
		}
		return nil
	}
	return release, nil
}

// WalletKey is the lock key for one owner's wallet.
func WalletKey(ownerID uuid.UUID, ownerKind models.OwnerKind) string {
	return fmt.Sprintf("lock:wallet:%s:%s", ownerKind, ownerID)
}

// WithdrawalKey is the lock key for one withdrawal request.
func WithdrawalKey(requestID uuid.UUID) string {
	return fmt.Sprintf("lock:withdrawal:%s", requestID)
}
