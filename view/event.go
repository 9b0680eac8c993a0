package view

// Event is emitted to listeners when a chart instance changes.
type Event string

// Events.
const (
	// EventReady fires once data is resolved, right before the first render.
	EventReady Event = "ready"
	// EventRender fires every time geometry is recomputed.
	EventRender Event = "render"
)

// Listener receives events. It runs with the instance locked and must not
// call back into the Chart.
type Listener func(e Event, c *Chart)
