// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"sync"
	"time"
)

// Default window and per-class capacities for calls to Open Food Facts.
// Barcode lookups are cheaper for the remote side to abuse, so they get the
// lower budget.
const (
	DefaultWindow          = 60 * time.Second
	DefaultBarcodeCapacity = 10
	DefaultSearchCapacity  = 30
)

// SlidingWindow is a non-blocking request gate that admits at most capacity
// calls within any trailing window. It keeps the timestamps of accepted
// calls in time order.
//
// A SlidingWindow is safe for concurrent use. State is in memory only and
// is reset when the process restarts.
type SlidingWindow struct {
	mu       sync.Mutex
	accepted []time.Time
	capacity int
	window   time.Duration
	now      func() time.Time
}

// Option configures a [SlidingWindow].
type Option func(*SlidingWindow)

// WithClock replaces the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(w *SlidingWindow) {
		w.now = now
	}
}

// NewSlidingWindow builds a limiter admitting capacity calls per window.
// Non-positive values fall back to [DefaultSearchCapacity] and [DefaultWindow].
func NewSlidingWindow(capacity int, window time.Duration, opts ...Option) *SlidingWindow {
	if capacity <= 0 {
		capacity = DefaultSearchCapacity
	}
	if window <= 0 {
		window = DefaultWindow
	}

	w := &SlidingWindow{
		accepted: make([]time.Time, 0, capacity),
		capacity: capacity,
		window:   window,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// TryAcquire records a call and returns true if the window has room for it.
// It never blocks; a denied call leaves the window unchanged.
func (w *SlidingWindow) TryAcquire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now()
	w.evict(now.Add(-w.window))

	if len(w.accepted) >= w.capacity {
		return false
	}
	w.accepted = append(w.accepted, now)

	return true
}

// evict drops timestamps strictly older than cutoff. Must be called with mu held.
func (w *SlidingWindow) evict(cutoff time.Time) {
	i := 0
	for i < len(w.accepted) && w.accepted[i].Before(cutoff) {
		i++
	}
	if i == 0 {
		return
	}

	n := copy(w.accepted, w.accepted[i:])
	w.accepted = w.accepted[:n]
}
