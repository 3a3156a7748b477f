package middleware

import (
	"fmt"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_ConcurrentExpiredHitsReturn(t *testing.T) {
	prev := runtime.GOMAXPROCS(8)
	defer runtime.GOMAXPROCS(prev)

	const keys = 64
	for iteration := 0; iteration < 20; iteration++ {
		store := &memoryStore{}
		now := time.Now()
		for i := 0; i < keys; i++ {
			store.entries.Store(fmt.Sprintf("ip-%d", i), &rateLimitEntry{count: 5, resetAt: now.Add(-time.Hour)})
		}

		start := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < keys; i++ {
			wg.Add(1)
			go func(key string) {
				defer wg.Done()
				<-start
				count, resetAt := store.hit(key, time.Minute, now)
				assert.Equal(t, 1, count)
				assert.Equal(t, now.Add(time.Minute), resetAt)
			}(fmt.Sprintf("ip-%d", i))
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()
		close(start)

		select {
		case <-done:
		case <-time.After(3 * time.Second):
			require.FailNow(t, fmt.Sprintf("iteration %d: hits on expired keys did not return", iteration))
		}
		assert.False(t, store.sweeping.Load())
	}
}

func TestMemoryStore_SweepDropsOnlyExpiredEntries(t *testing.T) {
	store := &memoryStore{}
	now := time.Now()
	store.entries.Store("stale", &rateLimitEntry{count: 3, resetAt: now.Add(-time.Minute)})
	store.entries.Store("live", &rateLimitEntry{count: 2, resetAt: now.Add(time.Minute)})
	store.entries.Store("current", &rateLimitEntry{count: 9, resetAt: now.Add(-time.Second)})

	count, _ := store.hit("current", time.Minute, now)
	assert.Equal(t, 1, count)

	_, staleKept := store.entries.Load("stale")
	_, liveKept := store.entries.Load("live")
	_, currentKept := store.entries.Load("current")
	assert.False(t, staleKept)
	assert.True(t, liveKept)
	assert.True(t, currentKept)
}
