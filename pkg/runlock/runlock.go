// Package runlock provides a cross-process lock so that only one reconciliation
// run is in flight at a time.
package runlock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotHeld is returned by Unlock when the token no longer owns the lock,
// usually because the TTL expired and another holder took over.
var ErrNotHeld = errors.New("run lock not held")

// Locker guards a single named critical section.
//
//go:generate mockery --name Locker --output mocks --outpkg mocks --filename locker.go --with-expecter
type Locker interface {
	// TryLock attempts to take the lock without blocking. ok is false when
	// another holder owns it.
	TryLock(ctx context.Context) (token string, ok bool, err error)
	// Unlock releases the lock if token still owns it.
	Unlock(ctx context.Context, token string) error
}

// Noop always grants the lock.
type Noop struct{}

func (Noop) TryLock(context.Context) (string, bool, error) { return "", true, nil }

func (Noop) Unlock(context.Context, string) error { return nil }

// compare-and-delete so a holder never releases a lock it lost to expiry
const unlockScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
    return redis.call("del", KEYS[1])
else
    return 0
end
`

// RedisLocker is a SET NX PX lock with a per-acquisition token.
type RedisLocker struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisLocker creates a lock on key that expires after ttl if never released.
func NewRedisLocker(client redis.UniversalClient, key string, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, key: key, ttl: ttl}
}

func (l *RedisLocker) TryLock(ctx context.Context) (string, bool, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("failed to acquire run lock %s: %w", l.key, err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

func (l *RedisLocker) Unlock(ctx context.Context, token string) error {
	n, err := l.client.Eval(ctx, unlockScript, []string{l.key}, token).Int64()
	if err != nil {
		return fmt.Errorf("failed to release run lock %s: %w", l.key, err)
	}
	if n != 1 {
		return ErrNotHeld
	}
	return nil
}

var (
	_ Locker = Noop{}
	_ Locker = (*RedisLocker)(nil)
)
