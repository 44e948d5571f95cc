package engine

import (
	"sync"
	"time"
)

// DefaultDebounce is the refresh collapse window applied when none is
// configured.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer collapses bursts of calls into one trailing invocation: each
// Call resets the timer, and only the last call within a burst runs, once,
// after the delay elapses with no further calls. Earlier calls are
// discarded.
//
// One instance guards one logical operation. Sharing an instance across
// distinct operations would let them cancel each other.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	gen     uint64
	timer   *time.Timer
	pending func()
}

// NewDebouncer returns a debouncer with the given trailing delay. A
// non-positive delay falls back to DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the delay, superseding any call still
// pending. fn runs on the timer goroutine.
//
// The generation counter keeps a superseded timer callback from firing the
// newly scheduled call early: Stop can miss a callback already blocked on
// the mutex, and by the time it acquires the lock a fresh call may have
// been stored.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if gen != d.gen {
			d.mu.Unlock()
			return
		}
		fn := d.pending
		d.pending = nil
		d.timer = nil
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

// Flush runs the pending call immediately, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.pending
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = nil
	d.timer = nil
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Cancel discards the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	d.pending = nil
	d.timer = nil
}
