// Package debounce coalesces bursts of values, such as keystrokes in a search
// box, into a single call once the input has been quiet for an interval.
package debounce

import (
	"sync"
	"time"
)

const DefaultInterval = 300 * time.Millisecond

// Debouncer delivers the last pushed value to fn after interval has passed
// without another Push. Calls to fn never overlap.
type Debouncer[T any] struct {
	interval time.Duration
	fn       func(T)

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	pending T
	has     bool
	stopped bool

	call sync.Mutex // held while fn runs
}

func New[T any](interval time.Duration, fn func(T)) *Debouncer[T] {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Debouncer[T]{interval: interval, fn: fn}
}

// Push replaces the pending value and restarts the quiet interval.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = v
	d.has = true
	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() { d.fire(seq) })
}

func (d *Debouncer[T]) fire(seq uint64) {
	d.call.Lock()
	defer d.call.Unlock()

	d.mu.Lock()
	if d.stopped || !d.has || seq != d.seq {
		d.mu.Unlock()
		return
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
}

// Flush delivers the pending value now, if there is one.
func (d *Debouncer[T]) Flush() {
	d.call.Lock()
	defer d.call.Unlock()

	d.mu.Lock()
	if d.stopped || !d.has {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	v := d.take()
	d.mu.Unlock()

	d.fn(v)
}

// Stop drops any pending value and waits for a running fn to return. It must
// not be called from inside fn.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.take()
	d.mu.Unlock()

	// Wait for an in-flight call.
	d.call.Lock()
	defer d.call.Unlock()
}

// take must be called with mu held.
func (d *Debouncer[T]) take() T {
	v := d.pending
	var zero T
	d.pending = zero
	d.has = false
	return v
}
