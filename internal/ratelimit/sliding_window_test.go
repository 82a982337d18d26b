package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// held returns the number of accepted calls still tracked by w.
func held(w *SlidingWindow) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.accepted)
}

func TestSlidingWindow_AdmitsCapacityThenDenies(t *testing.T) {
	clock := newFakeClock()
	w := NewSlidingWindow(3, time.Minute, WithClock(clock.Now))

	for i := 0; i < 3; i++ {
		require.True(t, w.TryAcquire(), "call %d should be admitted", i+1)
		clock.Advance(time.Second)
	}

	assert.False(t, w.TryAcquire())
	assert.Equal(t, 3, held(w))
}

func TestSlidingWindow_AdmitsAgainAfterWindowElapses(t *testing.T) {
	clock := newFakeClock()
	w := NewSlidingWindow(2, time.Minute, WithClock(clock.Now))

	require.True(t, w.TryAcquire())
	require.True(t, w.TryAcquire())
	require.False(t, w.TryAcquire())

	clock.Advance(time.Minute + time.Millisecond)

	assert.True(t, w.TryAcquire())
	assert.Equal(t, 1, held(w))
}

func TestSlidingWindow_EvictsOnlyExpiredTimestamps(t *testing.T) {
	clock := newFakeClock()
	w := NewSlidingWindow(2, time.Minute, WithClock(clock.Now))

	require.True(t, w.TryAcquire())
	clock.Advance(40 * time.Second)
	require.True(t, w.TryAcquire())

	// first call is now 61s old, second only 21s
	clock.Advance(21 * time.Second)
	assert.True(t, w.TryAcquire())
	assert.False(t, w.TryAcquire())
}

func TestSlidingWindow_TimestampAtBoundaryStillCounts(t *testing.T) {
	clock := newFakeClock()
	w := NewSlidingWindow(1, time.Minute, WithClock(clock.Now))

	require.True(t, w.TryAcquire())
	clock.Advance(time.Minute)

	assert.False(t, w.TryAcquire())
}

func TestSlidingWindow_DeniedCallIsNotRecorded(t *testing.T) {
	clock := newFakeClock()
	w := NewSlidingWindow(1, time.Minute, WithClock(clock.Now))

	require.True(t, w.TryAcquire())
	clock.Advance(30 * time.Second)
	require.False(t, w.TryAcquire())

	clock.Advance(31 * time.Second)
	assert.True(t, w.TryAcquire())
}

func TestSlidingWindow_Defaults(t *testing.T) {
	w := NewSlidingWindow(0, 0)

	assert.Equal(t, DefaultSearchCapacity, w.capacity)
	assert.Equal(t, DefaultWindow, w.window)
}

func TestSlidingWindow_ConcurrentCallsNeverExceedCapacity(t *testing.T) {
	const capacity = 10
	w := NewSlidingWindow(capacity, time.Hour)

	var admitted atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if w.TryAcquire() {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(capacity), admitted.Load())
}

func TestSlidingWindow_InstancesAreIndependent(t *testing.T) {
	clock := newFakeClock()
	barcode := NewSlidingWindow(1, time.Minute, WithClock(clock.Now))
	search := NewSlidingWindow(1, time.Minute, WithClock(clock.Now))

	require.True(t, barcode.TryAcquire())
	require.False(t, barcode.TryAcquire())

	assert.True(t, search.TryAcquire())
}
