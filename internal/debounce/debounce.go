// Package debounce coalesces bursts of events into a single trailing call.
package debounce

import (
	"sync"
	"time"
)

// Timer is the part of *time.Timer the Debouncer needs.
type Timer interface {
	Stop() bool
}

// AfterFunc arms a timer that calls f after d.
type AfterFunc func(d time.Duration, f func()) Timer

func realAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs the most recently scheduled function once the quiet period
// has elapsed without another Schedule call. It holds at most one pending
// timer.
type Debouncer struct {
	quiet     time.Duration
	afterFunc AfterFunc

	mu      sync.Mutex
	pending Timer
	gen     uint64
}

// New returns a Debouncer with the given quiet period.
func New(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet, afterFunc: realAfterFunc}
}

// NewWithTimer is New with a custom timer source.
func NewWithTimer(quiet time.Duration, afterFunc AfterFunc) *Debouncer {
	return &Debouncer{quiet: quiet, afterFunc: afterFunc}
}

// Quiet returns the configured quiet period.
func (d *Debouncer) Quiet() time.Duration { return d.quiet }

// Schedule cancels any pending invocation and arms a new one for fn.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = d.afterFunc(d.quiet, func() {
		d.mu.Lock()
		// A timer that fired while a newer Schedule was stopping it is stale.
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		d.pending = nil
		d.mu.Unlock()
		fn()
	})
}

// Stop cancels the pending invocation, if any. It reports whether one was
// pending.
func (d *Debouncer) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending == nil {
		return false
	}
	d.pending.Stop()
	d.pending = nil
	d.gen++
	return true
}

// Pending reports whether an invocation is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}
