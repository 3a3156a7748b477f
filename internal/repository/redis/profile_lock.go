package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/pkg/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const (
	profileLockPrefix = "consultant:lock:profile:"
	lockRetryInterval = 50 * time.Millisecond
)

// Deletes the key only while it still holds our token.
// KEYS[1] = lock key
// ARGV[1] = owner token
var releaseScript = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// Extends the key only while it still holds our token.
// KEYS[1] = lock key
// ARGV[1] = owner token
// ARGV[2] = TTL in milliseconds
var refreshScript = goredis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)

// ErrLockUnavailable is returned in fail-closed mode when Redis cannot be reached.
var ErrLockUnavailable = errors.New("profile lock unavailable")

// LockOptions configures a ProfileLocker.
type LockOptions struct {
	// Expiry of the Redis key; it is refreshed while the lock is held
	TTL time.Duration
	// Reject updates when Redis errors instead of using the in-process lock alone
	FailClosed bool
}

// ProfileLocker serializes updates to the same profile. The in-process lock is
// always taken; when a Redis client is configured the lock is also held in
// Redis so other instances are excluded, and its key is kept alive until
// unlock. Redis errors fall back to the in-process lock alone unless
// FailClosed is set.
type ProfileLocker struct {
	client     *goredis.Client
	ttl        time.Duration
	failClosed bool
	local      *keyedMutex
}

// NewProfileLocker returns a locker; client may be nil.
func NewProfileLocker(client *goredis.Client, opts LockOptions) *ProfileLocker {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ProfileLocker{client: client, ttl: ttl, failClosed: opts.FailClosed, local: newKeyedMutex()}
}

var _ domain.ProfileLocker = (*ProfileLocker)(nil)

func (l *ProfileLocker) Lock(ctx context.Context, userID int64) (func(), error) {
	unlockLocal, err := l.local.lock(ctx, userID)
	if err != nil {
		return nil, err
	}
	if l.client == nil {
		return unlockLocal, nil
	}

	key := fmt.Sprintf("%s%d", profileLockPrefix, userID)
	token := uuid.NewString()
	if err := l.acquire(ctx, key, token); err != nil {
		if ctx.Err() != nil {
			unlockLocal()
			return nil, ctx.Err()
		}
		if l.failClosed {
			unlockLocal()
			logger.Log.Error("Redis profile lock unavailable, rejecting update", "user_id", userID, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrLockUnavailable, err)
		}
		logger.Log.Error("Redis profile lock unavailable, same-user updates are serialized on this instance only",
			"user_id", userID, "error", err)
		return unlockLocal, nil
	}

	stop := make(chan struct{})
	stopped := make(chan struct{})
	go l.keepAlive(context.WithoutCancel(ctx), key, token, stop, stopped)

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-stopped

			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 3*time.Second)
			defer cancel()
			if err := releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				logger.Log.Warn("Failed to release redis profile lock", "key", key, "error", err)
			}
			unlockLocal()
		})
	}, nil
}

// refreshInterval leaves two refresh attempts before the key could lapse.
func refreshInterval(ttl time.Duration) time.Duration {
	interval := ttl / 3
	if interval < 10*time.Millisecond {
		interval = 10 * time.Millisecond
	}
	return interval
}

// keepAlive extends the key every refreshInterval until stop is closed.
func (l *ProfileLocker) keepAlive(ctx context.Context, key, token string, stop <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(refreshInterval(l.ttl))
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			refreshCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			n, err := refreshScript.Run(refreshCtx, l.client, []string{key}, token, l.ttl.Milliseconds()).Int64()
			cancel()
			switch {
			case err != nil:
				logger.Log.Warn("Failed to refresh redis profile lock", "key", key, "error", err)
			case n == 0:
				logger.Log.Error("Redis profile lock lost while held", "key", key)
				return
			}
		}
	}
}

// acquire polls SET NX until the key is ours or ctx ends.
func (l *ProfileLocker) acquire(ctx context.Context, key, token string) error {
	ticker := time.NewTicker(lockRetryInterval)
	defer ticker.Stop()
	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// keyedMutex is a per-key mutex whose wait honours ctx. Entries are dropped
// once nobody holds or waits on them.
type keyedMutex struct {
	mu      sync.Mutex
	entries map[int64]*keyedEntry
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{entries: map[int64]*keyedEntry{}}
}

func (m *keyedMutex) lock(ctx context.Context, key int64) (func(), error) {
	m.mu.Lock()
	e, ok := m.entries[key]
	if !ok {
		e = &keyedEntry{sem: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	m.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		m.release(key, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-e.sem
			m.release(key, e)
		})
	}, nil
}

func (m *keyedMutex) release(key int64, e *keyedEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}

func (m *keyedMutex) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
