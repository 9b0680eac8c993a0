package anim

// VisibilityThreshold is the visible fraction of the chart container that
// releases a queued batch.
const VisibilityThreshold = 0.15

// Gate releases a queued batch the first time the visible ratio reaches the
// threshold, then disengages for good.
type Gate struct {
	threshold float64
	fired     bool
}

// NewGate returns a gate with VisibilityThreshold.
func NewGate() *Gate {
	return &Gate{threshold: VisibilityThreshold}
}

// Observe records a visibility ratio in [0, 1] and reports whether this
// observation opened the gate. It returns true at most once.
func (g *Gate) Observe(ratio float64) bool {
	if g.fired || ratio < g.threshold {
		return false
	}
	g.fired = true
	return true
}

// Disengaged reports whether the gate already fired.
func (g *Gate) Disengaged() bool {
	return g.fired
}
