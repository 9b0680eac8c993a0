package anim

import "time"

// DefaultResizeDebounce coalesces bursts of resize events.
const DefaultResizeDebounce = 250 * time.Millisecond

// Debouncer fires once after a burst of triggers has been quiet for Wait
// (trailing edge). Time is supplied by the caller.
type Debouncer struct {
	Wait     time.Duration
	deadline time.Time
	pending  bool
}

// Trigger (re)arms the debouncer at now.
func (d *Debouncer) Trigger(now time.Time) {
	wait := d.Wait
	if wait <= 0 {
		wait = DefaultResizeDebounce
	}
	d.deadline = now.Add(wait)
	d.pending = true
}

// Pending reports whether a trigger is waiting to fire.
func (d *Debouncer) Pending() bool {
	return d.pending
}

// Fire reports whether the quiet period has elapsed at now, disarming the
// debouncer if so.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
