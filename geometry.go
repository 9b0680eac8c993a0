package chart

import (
	"fmt"
	"log/slog"
)

// Geometry is the result of one render pass: the scale and layout the
// primitives were built against, plus the primitives in draw order.
type Geometry struct {
	Type       Type
	Scale      Scale
	Layout     Layout
	Primitives []Primitive
}

// Build runs the scale calculator, layout engine and the geometry builder
// for cfg.Type. It is pure: the same inputs always produce the same
// geometry. Non-finite values count as 0. A polar chart whose values sum
// to zero yields no primitives and no error.
func Build(spec *Spec, cfg Config) (*Geometry, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec = spec.Finite()
	cfg = cfg.Normalize()
	if !cfg.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, cfg.Type)
	}

	g := &Geometry{
		Type:   cfg.Type,
		Scale:  ScaleFor(spec, cfg),
		Layout: ComputeLayout(cfg.Width, cfg.Height, cfg),
	}
	switch cfg.Type {
	case TypeLine:
		g.Primitives = BuildLine(spec, g.Scale, g.Layout, cfg)
	case TypeColumn, TypeBar:
		g.Primitives = BuildBars(spec, g.Scale, g.Layout, cfg)
	case TypeStackedColumn, TypeStackedBar:
		g.Primitives = BuildStacked(spec, g.Scale, g.Layout, cfg)
	case TypePie, TypeDonut:
		g.Primitives = BuildSlices(spec, g.Scale, g.Layout, cfg)
	case TypeRadial:
		g.Primitives = BuildRadial(spec, g.Scale, g.Layout, cfg)
	}

	Logger().Debug("chart: geometry built",
		slog.String("type", string(cfg.Type)),
		slog.Float64("scale_min", g.Scale.Min),
		slog.Float64("scale_max", g.Scale.Max),
		slog.Int("primitives", len(g.Primitives)))
	return g, nil
}

// ScaleFor computes the tick scale over the values relevant to cfg.Type:
// per-category totals for stacked charts, the first dataset for radial
// charts, and every value otherwise. Pie and donut charts still get a scale
// (for tooltips and legends) although their geometry does not use it.
func ScaleFor(spec *Spec, cfg Config) Scale {
	var lo, hi float64
	switch {
	case cfg.Type.Stacked():
		lo, hi = spec.stackRange()
	case cfg.Type == TypeRadial:
		if len(spec.Datasets) > 0 {
			first := Spec{Categories: spec.Categories, Datasets: spec.Datasets[:1]}
			lo, hi = first.valueRange()
		}
	default:
		lo, hi = spec.valueRange()
	}
	return NiceScale(lo, hi, cfg.Ticks)
}

func primitiveID(kind string, series, category int) string {
	if category < 0 {
		return fmt.Sprintf("%s-%d", kind, series)
	}
	return fmt.Sprintf("%s-%d-%d", kind, series, category)
}
