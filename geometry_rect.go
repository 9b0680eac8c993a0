package chart

import "math"

const (
	// groupPadding is the share of a category slot left empty on each side.
	groupPadding = 0.1
	// seriesGap separates bars of different series within one group.
	seriesGap = 2.0
)

// bandAxis maps categories and values for rectangular charts, hiding the
// difference between vertical columns and horizontal bars.
type bandAxis struct {
	horizontal bool
	area       Rect
	sc         Scale
	span       float64 // category slot size
}

func newBandAxis(spec *Spec, sc Scale, area Rect, horizontal bool) bandAxis {
	b := bandAxis{horizontal: horizontal, area: area, sc: sc}
	n := float64(len(spec.Categories))
	if horizontal {
		b.span = area.Height / n
	} else {
		b.span = area.Width / n
	}
	return b
}

// slot returns the start coordinate of category i on the category axis.
func (b bandAxis) slot(i int) float64 {
	if b.horizontal {
		return b.area.Y + float64(i)*b.span
	}
	return b.area.X + float64(i)*b.span
}

// value projects v onto the value axis.
func (b bandAxis) value(v float64) float64 {
	if b.horizontal {
		return b.sc.Map(v, b.area.X, b.area.Right())
	}
	return b.sc.Map(v, b.area.Bottom(), b.area.Y)
}

// rect builds the rectangle spanning [from, to] on the value axis and
// [off, off+thick] on the category axis.
func (b bandAxis) rect(off, thick, from, to float64) Rect {
	lo, hi := math.Min(from, to), math.Max(from, to)
	if b.horizontal {
		return Rect{X: lo, Y: off, Width: hi - lo, Height: thick}
	}
	return Rect{X: off, Y: lo, Width: thick, Height: hi - lo}
}

// clampRadius keeps a corner radius within half the short side of r.
func clampRadius(radius float64, r Rect) float64 {
	return math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
}

// BuildBars produces grouped columns (vertical) or bars (horizontal).
// Per-group bar thickness is (groupSpan - 2*padding - totalGap)/seriesCount.
func BuildBars(spec *Spec, sc Scale, l Layout, cfg Config) []Primitive {
	n, series := len(spec.Categories), len(spec.Datasets)
	if n == 0 || series == 0 {
		return nil
	}
	ax := newBandAxis(spec, sc, l.Area, cfg.Type.Horizontal())
	pad := ax.span * groupPadding
	totalGap := seriesGap * float64(series-1)
	thick := math.Max((ax.span-2*pad-totalGap)/float64(series), 0)
	base := ax.value(sc.Baseline())

	prims := make([]Primitive, 0, n*series)
	for i := 0; i < n; i++ {
		for s, ds := range spec.Datasets {
			v := ds.Values[i]
			off := ax.slot(i) + pad + float64(s)*(thick+seriesGap)
			r := ax.rect(off, thick, base, ax.value(v))
			prims = append(prims, &RectBar{
				Info: Info{
					ID:       primitiveID("bar", s, i),
					Series:   s,
					Category: i,
					Value:    v,
					Color:    cfg.Color(s),
				},
				Rect:   r,
				Start:  ax.rect(off, thick, base, base),
				Radius: clampRadius(cfg.BarRadius, r),
			})
		}
	}
	return prims
}

// BuildStacked produces stacked columns or bars. Each category accumulates
// a running offset; negative values contribute nothing. The inter-segment
// gap is taken from a segment's base side only when StackGap > 0, and
// corners are rounded only in that case, so gapless stacks look continuous.
func BuildStacked(spec *Spec, sc Scale, l Layout, cfg Config) []Primitive {
	n, series := len(spec.Categories), len(spec.Datasets)
	if n == 0 || series == 0 {
		return nil
	}
	ax := newBandAxis(spec, sc, l.Area, cfg.Type.Horizontal())
	pad := ax.span * groupPadding
	thick := math.Max(ax.span-2*pad, 0)
	gap := cfg.StackGap

	prims := make([]Primitive, 0, n*series)
	for i := 0; i < n; i++ {
		off := ax.slot(i) + pad
		cum := 0.0
		for s, ds := range spec.Datasets {
			v := math.Max(ds.Values[i], 0)
			from, to := ax.value(cum), ax.value(cum+v)
			if gap > 0 && cum > 0 {
				from = insetToward(from, to, gap)
			}
			r := ax.rect(off, thick, from, to)
			radius := 0.0
			if gap > 0 {
				radius = clampRadius(cfg.BarRadius, r)
			}
			prims = append(prims, &RectBar{
				Info: Info{
					ID:       primitiveID("stack", s, i),
					Series:   s,
					Category: i,
					Value:    ds.Values[i],
					Color:    cfg.Color(s),
				},
				Rect:    r,
				Start:   ax.rect(off, thick, from, from),
				Radius:  radius,
				Segment: s,
			})
			cum += v
		}
	}
	return prims
}

// insetToward moves from toward to by d without passing it.
func insetToward(from, to, d float64) float64 {
	if to >= from {
		return math.Min(from+d, to)
	}
	return math.Max(from-d, to)
}
