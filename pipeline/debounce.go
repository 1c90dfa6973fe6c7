package pipeline

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of triggers into one callback after a fixed
// quiescence delay. Search input goes through one of these so the filter
// pipeline is not re-run on every keystroke. Stop is deterministic: once a
// Debouncer is stopped no pending callback will fire.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewDebouncer returns a Debouncer with the given quiescence delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, replacing any callback still
// pending from an earlier trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			fn()
		}
	})
}

// Stop cancels any pending callback and prevents future triggers. Owners call
// this on teardown so stale timers never outlive the component that armed
// them.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
