package anim

import "time"

// Task animates one target from From to To.
//
// Progress is measured from the start of the batch: the task idles for
// Delay, then moves over Duration. Progress is always clamped to [0, 1].
type Task struct {
	// Ref names the animated target: a primitive ID, a stack key or SweepRef.
	Ref      string
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing

	// Segments lists the primitive IDs of a stack, bottom first. Empty for
	// tasks that drive a single target.
	Segments []string
}

// Progress returns the linear progress at elapsed time since the batch start.
func (t *Task) Progress(elapsed time.Duration) float64 {
	local := elapsed - t.Delay
	if local < 0 {
		return 0
	}
	if t.Duration <= 0 {
		return 1
	}
	return clamp01(float64(local) / float64(t.Duration))
}

// Value returns the eased value at elapsed time since the batch start.
func (t *Task) Value(elapsed time.Duration) float64 {
	ease := t.Easing
	if ease == nil {
		ease = Linear
	}
	return t.From + (t.To-t.From)*ease(t.Progress(elapsed))
}

// End returns the batch-relative time at which the task reaches To.
func (t *Task) End() time.Duration {
	return t.Delay + t.Duration
}

// SegmentProgress distributes stack progress p linearly across n segments:
// segment j runs while p moves from j/n to (j+1)/n.
func SegmentProgress(p float64, j, n int) float64 {
	if n <= 0 {
		return clamp01(p)
	}
	return clamp01(p*float64(n) - float64(j))
}

// Frame is the value of one target at one instant.
type Frame struct {
	Ref   string
	Value float64
}

// frames appends the frames the task contributes at elapsed.
func (t *Task) frames(dst []Frame, elapsed time.Duration) []Frame {
	v := t.Value(elapsed)
	if len(t.Segments) == 0 {
		return append(dst, Frame{Ref: t.Ref, Value: v})
	}
	for j, id := range t.Segments {
		dst = append(dst, Frame{Ref: id, Value: SegmentProgress(v, j, len(t.Segments))})
	}
	return dst
}
