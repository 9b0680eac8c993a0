package anim

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gogpu/chart"
)

// SweepRef is the Ref of the clip-sweep task of pie and donut charts. Its
// value is the swept angle in radians, from 0 to 2pi.
const SweepRef = "sweep"

// Batch is the set of tasks captured for one render pass.
type Batch struct {
	Tasks []*Task
}

// Len returns the number of tasks.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Tasks)
}

// End returns the time at which the last task completes.
func (b *Batch) End() time.Duration {
	var end time.Duration
	if b == nil {
		return end
	}
	for _, t := range b.Tasks {
		end = max(end, t.End())
	}
	return end
}

// Frames returns the value of every target at elapsed time since the start.
func (b *Batch) Frames(elapsed time.Duration) []Frame {
	if b == nil {
		return nil
	}
	out := make([]Frame, 0, len(b.Tasks))
	for _, t := range b.Tasks {
		out = t.frames(out, elapsed)
	}
	return out
}

// Plan captures the animation batch for a built geometry.
func Plan(g *chart.Geometry, cfg chart.Config) *Batch {
	cfg = cfg.Normalize()
	b := &Batch{}
	if g == nil || len(g.Primitives) == 0 {
		return b
	}
	switch {
	case g.Type == chart.TypePie || g.Type == chart.TypeDonut:
		b.Tasks = []*Task{Sweep(cfg)}
	case g.Type.Stacked():
		b.Tasks = Stacks(g.Primitives, cfg)
	default:
		b.Tasks = Independent(g.Primitives, cfg)
	}
	return b
}

// Independent gives every primitive its own ease-out timer, delayed by
// index*stagger. With the default stagger (duration/count) the last
// primitive starts one stagger before the first one would finish.
func Independent(prims []chart.Primitive, cfg chart.Config) []*Task {
	stagger := cfg.StaggerFor(len(prims))
	tasks := make([]*Task, 0, len(prims))
	for i, p := range prims {
		tasks = append(tasks, &Task{
			Ref:      p.Base().ID,
			From:     0,
			To:       1,
			Duration: cfg.Duration,
			Delay:    time.Duration(i) * stagger,
			Easing:   EaseOutCubic,
		})
	}
	return tasks
}

// Stacks groups stacked segments by category and gives each stack one
// ease-in-out timer. Categories are staggered like independent primitives.
func Stacks(prims []chart.Primitive, cfg chart.Config) []*Task {
	type segment struct {
		id    string
		order int
	}
	byCategory := make(map[int][]segment)
	var categories []int
	for _, p := range prims {
		bar, ok := p.(*chart.RectBar)
		if !ok {
			continue
		}
		if _, seen := byCategory[bar.Category]; !seen {
			categories = append(categories, bar.Category)
		}
		byCategory[bar.Category] = append(byCategory[bar.Category], segment{bar.ID, bar.Segment})
	}
	sort.Ints(categories)

	stagger := cfg.StaggerFor(len(categories))
	tasks := make([]*Task, 0, len(categories))
	for i, cat := range categories {
		segs := byCategory[cat]
		sort.SliceStable(segs, func(a, b int) bool { return segs[a].order < segs[b].order })
		ids := make([]string, len(segs))
		for j, s := range segs {
			ids[j] = s.id
		}
		tasks = append(tasks, &Task{
			Ref:      fmt.Sprintf("stack-%d", cat),
			From:     0,
			To:       1,
			Duration: cfg.Duration,
			Delay:    time.Duration(i) * stagger,
			Easing:   EaseInOutCubic,
			Segments: ids,
		})
	}
	return tasks
}

// Sweep returns the single clip-sweep task of a polar reveal.
func Sweep(cfg chart.Config) *Task {
	return &Task{
		Ref:      SweepRef,
		From:     0,
		To:       2 * math.Pi,
		Duration: cfg.Duration,
		Easing:   EaseInOutCubic,
	}
}
