package anim

import (
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/statekit"

	"github.com/gogpu/chart"
)

// State is a lifecycle state of a chart instance's entrance animation.
type State string

// Lifecycle states. Done is terminal: an instance animates at most once.
const (
	StateIdle    State = "idle"
	StateQueued  State = "queued"
	StatePlaying State = "playing"
	StateDone    State = "done"
)

const (
	stateIdle    statekit.StateID = statekit.StateID(StateIdle)
	stateQueued  statekit.StateID = statekit.StateID(StateQueued)
	statePlaying statekit.StateID = statekit.StateID(StatePlaying)
	stateDone    statekit.StateID = statekit.StateID(StateDone)
)

// Lifecycle events.
const (
	eventCapture statekit.EventType = "CAPTURE"
	eventVisible statekit.EventType = "VISIBLE"
	eventFinish  statekit.EventType = "FINISH"
	eventSkip    statekit.EventType = "SKIP"
)

// lifecycleContext carries the owning instance through the machine.
type lifecycleContext struct {
	Instance    string
	Transitions int
}

func logEntry(ctx **lifecycleContext, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	to, _ := event.Payload.(State)
	chart.Logger().Info("anim: lifecycle",
		slog.String("instance", (*ctx).Instance),
		slog.String("event", string(event.Type)),
		slog.String("state", string(to)))
}

func countTransition(ctx **lifecycleContext, _ statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}
	(*ctx).Transitions++
}

// newLifecycleMachine builds the animate-once statechart:
//
//	idle --CAPTURE--> queued --VISIBLE--> playing --FINISH--> done
//	idle/queued --SKIP--> done, queued --FINISH--> done
func newLifecycleMachine() (*statekit.MachineConfig[*lifecycleContext], error) {
	return statekit.NewMachine[*lifecycleContext]("lifecycle").
		WithInitial(stateIdle).
		WithContext(&lifecycleContext{}).
		WithAction("logEntry", logEntry).
		WithAction("count", countTransition).
		State(stateIdle).
			On(eventCapture).Target(stateQueued).Do("count").
			On(eventSkip).Target(stateDone).Do("count").
			Done().
		State(stateQueued).
			OnEntry("logEntry").
			On(eventVisible).Target(statePlaying).Do("count").
			On(eventFinish).Target(stateDone).Do("count").
			On(eventSkip).Target(stateDone).Do("count").
			Done().
		State(statePlaying).
			OnEntry("logEntry").
			On(eventFinish).Target(stateDone).Do("count").
			Done().
		State(stateDone).
			Final().
			OnEntry("logEntry").
			Done().
		Build()
}

// Lifecycle tracks whether an instance has played its entrance animation.
// It is not safe for concurrent use.
type Lifecycle struct {
	interp *statekit.Interpreter[*lifecycleContext]
	ctx    *lifecycleContext
}

// NewLifecycle starts a lifecycle in StateIdle for the named instance.
func NewLifecycle(instance string) (*Lifecycle, error) {
	machine, err := newLifecycleMachine()
	if err != nil {
		return nil, fmt.Errorf("anim: build lifecycle: %w", err)
	}
	ctx := &lifecycleContext{Instance: instance}
	interp := statekit.NewInterpreter(machine)
	interp.UpdateContext(func(c **lifecycleContext) {
		*c = ctx
	})
	interp.Start()
	return &Lifecycle{interp: interp, ctx: ctx}, nil
}

// State returns the current state.
func (l *Lifecycle) State() State {
	return State(l.interp.State().Value)
}

// Transitions returns the number of transitions taken so far.
func (l *Lifecycle) Transitions() int {
	return l.ctx.Transitions
}

// HasPlayed reports whether the lifecycle reached its terminal state.
func (l *Lifecycle) HasPlayed() bool {
	return l.interp.Done()
}

// Capture queues a batch: idle -> queued. Reports whether it transitioned.
func (l *Lifecycle) Capture() bool {
	return l.send(eventCapture, stateIdle, StateQueued)
}

// Play starts the queued batch: queued -> playing.
func (l *Lifecycle) Play() bool {
	return l.send(eventVisible, stateQueued, StatePlaying)
}

// Finish ends the animation from queued or playing.
func (l *Lifecycle) Finish() bool {
	if l.interp.Matches(stateQueued) {
		return l.send(eventFinish, stateQueued, StateDone)
	}
	return l.send(eventFinish, statePlaying, StateDone)
}

// Skip marks an instance that renders without animation as done.
func (l *Lifecycle) Skip() bool {
	if l.interp.Matches(stateIdle) {
		return l.send(eventSkip, stateIdle, StateDone)
	}
	return l.send(eventSkip, stateQueued, StateDone)
}

// send delivers event only when the machine is in from, so events that do
// not apply to the current state are ignored.
func (l *Lifecycle) send(event statekit.EventType, from statekit.StateID, to State) bool {
	if !l.interp.Matches(from) {
		return false
	}
	l.interp.Send(statekit.Event{Type: event, Payload: to})
	return l.interp.Matches(statekit.StateID(to))
}

// Stop releases the interpreter.
func (l *Lifecycle) Stop() {
	l.interp.Stop()
}
