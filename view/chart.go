package view

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/anim"
	"github.com/gogpu/chart/ingest"
	"github.com/gogpu/chart/surface"
)

// ErrNoData is returned by Render before any data was loaded.
var ErrNoData = errors.New("view: no data loaded")

// lineWidth is the stroke width of line series.
const lineWidth = 2

// sweepMargin extends the reveal wedge past the outer radius so slice
// edges are never clipped by anti-aliasing.
const sweepMargin = 1

// Option configures a Chart.
type Option func(*Chart)

// WithID overrides the generated instance id.
func WithID(id string) Option {
	return func(c *Chart) { c.id = id }
}

// WithListener registers an event listener.
func WithListener(l Listener) Option {
	return func(c *Chart) { c.listeners = append(c.listeners, l) }
}

// WithResizeDebounce sets the resize quiet period.
func WithResizeDebounce(d time.Duration) Option {
	return func(c *Chart) { c.debounce.Wait = d }
}

// Chart is one chart instance. Its methods are safe for concurrent use;
// Load may run while the host keeps ticking.
type Chart struct {
	mu sync.Mutex

	id        string
	cfg       chart.Config
	surf      surface.Surface
	listeners []Listener

	loader ingest.Loader
	spec   *chart.Spec
	geom   *chart.Geometry

	life     *anim.Lifecycle
	gate     *anim.Gate
	sched    anim.Scheduler
	batch    *anim.Batch
	// visibility is the last reported ratio; it is checked against the
	// gate whenever a batch is captured.
	visibility float64
	// startPending defers the scheduler start of a batch released during
	// render to the next Tick, which supplies the clock.
	startPending bool
	debounce anim.Debouncer
	size     [2]float64
	rendered bool
}

// New creates an instance drawing to s.
func New(s surface.Surface, cfg chart.Config, opts ...Option) (*Chart, error) {
	c := &Chart{
		id:   uuid.NewString(),
		cfg:  cfg.Normalize(),
		surf: s,
		gate: anim.NewGate(),
	}
	c.debounce.Wait = anim.DefaultResizeDebounce
	for _, opt := range opts {
		opt(c)
	}
	life, err := anim.NewLifecycle(c.id)
	if err != nil {
		return nil, err
	}
	c.life = life
	return c, nil
}

// ID returns the instance id.
func (c *Chart) ID() string { return c.id }

// Config returns the current configuration.
func (c *Chart) Config() chart.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// State returns the animation lifecycle state.
func (c *Chart) State() anim.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.life.State()
}

// Geometry returns the geometry of the last render, or nil.
func (c *Chart) Geometry() *chart.Geometry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.geom
}

// Rendered reports whether the last render succeeded.
func (c *Chart) Rendered() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rendered
}

// Close releases the lifecycle machine.
func (c *Chart) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sched.Discard()
	c.startPending = false
	c.life.Stop()
}

func (c *Chart) log() *slog.Logger {
	return chart.Logger().With(slog.String("chart", c.id))
}

func (c *Chart) emit(e Event) {
	for _, l := range c.listeners {
		l(e, c)
	}
}

// Load resolves src and renders it. Only the latest Load wins: a Load
// superseded by another source returns ingest.ErrStale and changes nothing.
func (c *Chart) Load(ctx context.Context, src ingest.Source) error {
	spec, err := c.loader.Load(ctx, src)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrStale):
			c.log().Debug("view: stale load discarded", slog.String("source", src.Key()))
		case errors.Is(err, ingest.ErrTooFewRows):
			c.log().Warn("view: not enough data to draw", slog.String("source", src.Key()), slog.Any("error", err))
		default:
			c.log().Error("view: load failed", slog.String("source", src.Key()), slog.Any("error", err))
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.spec = spec
	c.log().Info("view: ready",
		slog.String("source", src.Key()),
		slog.Int("categories", len(spec.Categories)),
		slog.Int("datasets", len(spec.Datasets)))
	c.emit(EventReady)
	return c.render()
}

// Render rebuilds geometry from the loaded data and draws it.
func (c *Chart) Render() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render()
}

func (c *Chart) render() error {
	if c.spec == nil {
		return ErrNoData
	}
	g, err := chart.Build(c.spec, c.cfg)
	if err != nil {
		c.rendered = false
		if errors.Is(err, chart.ErrUnknownType) {
			c.log().Warn("view: unknown chart type, nothing drawn", slog.String("type", string(c.cfg.Type)))
		} else {
			c.log().Error("view: build failed", slog.Any("error", err))
		}
		return err
	}
	c.geom = g
	c.emit(EventRender)

	if !c.cfg.Animated {
		c.life.Skip()
	}
	switch c.life.State() {
	case anim.StateIdle:
		c.batch = anim.Plan(g, c.cfg)
		c.life.Capture()
		if err = c.drawStart(); err == nil {
			c.releaseIfVisible()
		}
	case anim.StateQueued:
		c.batch = anim.Plan(g, c.cfg)
		if err = c.drawStart(); err == nil {
			c.releaseIfVisible()
		}
	case anim.StatePlaying:
		c.sched.Discard()
		c.startPending = false
		c.life.Finish()
		err = c.drawFinal()
	default:
		err = c.drawFinal()
	}
	if err != nil {
		c.rendered = false
		c.log().Error("view: draw failed", slog.Any("error", err))
		return fmt.Errorf("view: draw: %w", err)
	}
	c.rendered = true
	c.log().Debug("view: rendered",
		slog.String("type", string(g.Type)),
		slog.Int("primitives", len(g.Primitives)),
		slog.String("state", string(c.life.State())))
	return nil
}

// SetVisibility reports the visible fraction of the chart. The first ratio
// at or above anim.VisibilityThreshold starts a queued animation. A ratio
// reported before the batch is queued is kept and applied when it is.
func (c *Chart) SetVisibility(ratio float64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visibility = ratio
	if c.life.State() != anim.StateQueued || !c.gate.Observe(ratio) {
		return
	}
	c.life.Play()
	c.sched.Start(c.batch, now)
}

// releaseIfVisible plays the queued batch when the last reported
// visibility already opens the gate. The scheduler starts on the next Tick.
func (c *Chart) releaseIfVisible() {
	if c.life.State() != anim.StateQueued || !c.gate.Observe(c.visibility) {
		return
	}
	c.life.Play()
	c.startPending = true
}

// Resize schedules a render at the new size once resizes stop for the
// debounce period. Pending and running animation tasks are discarded when
// it fires.
func (c *Chart) Resize(width, height float64, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = [2]float64{width, height}
	c.debounce.Trigger(now)
}

// Tick advances a debounced resize and the running animation. It reports
// whether more ticks are needed, so a Chart is an anim.Ticker.
func (c *Chart) Tick(now time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.debounce.Fire(now) {
		c.cfg.Width, c.cfg.Height = c.size[0], c.size[1]
		c.log().Debug("view: resize", slog.Float64("width", c.cfg.Width), slog.Float64("height", c.cfg.Height))
		if c.spec != nil {
			if err := c.render(); err != nil {
				c.log().Error("view: render after resize failed", slog.Any("error", err))
			}
		}
	}

	if c.startPending {
		c.startPending = false
		c.sched.Start(c.batch, now)
	}
	if c.sched.Running() {
		frames, done := c.sched.Tick(now)
		err := c.apply(frames)
		if done {
			c.life.Finish()
			if err == nil {
				err = c.surf.ClearClip()
			}
		}
		if err == nil {
			err = c.surf.End()
		}
		if err != nil {
			c.log().Error("view: frame failed", slog.Any("error", err))
			c.sched.Discard()
			c.life.Finish()
		}
	}
	return c.sched.Running() || c.debounce.Pending()
}
