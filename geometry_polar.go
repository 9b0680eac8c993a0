package chart

import "math"

// radialGapRatio is the share of each category's angular slot left empty
// between radial segments.
const radialGapRatio = 0.3

// firstSeries returns the first dataset's values with negatives clamped to
// zero; polar charts draw one series.
func firstSeries(spec *Spec) []float64 {
	if len(spec.Datasets) == 0 {
		return nil
	}
	src := spec.Datasets[0].Values
	vals := make([]float64, len(src))
	for i, v := range src {
		vals[i] = math.Max(v, 0)
	}
	return vals
}

// BuildSlices produces pie slices (Polar.Inner == 0) or donut segments.
// Each category spans value/total*2pi, swept clockwise from 12 o'clock in
// input order. A zero total produces nothing.
func BuildSlices(spec *Spec, _ Scale, l Layout, cfg Config) []Primitive {
	vals := firstSeries(spec)
	total := 0.0
	for _, v := range vals {
		total += v
	}
	if total <= 0 {
		return nil
	}

	shape := SliceShape{Gap: cfg.PolarGap, CornerRadius: cfg.PolarRadius}
	pa := l.Polar
	prims := make([]Primitive, 0, len(vals))
	angle := startAngle
	for i, v := range vals {
		span := v / total * twoPi
		prims = append(prims, &SlicePath{
			Info: Info{
				ID:       primitiveID("slice", 0, i),
				Category: i,
				Value:    v,
				Color:    cfg.Color(i),
			},
			Center:     pa.Center,
			Outer:      pa.Outer,
			Inner:      pa.Inner,
			StartAngle: angle,
			EndAngle:   angle + span,
			Variant:    shape.Variant(),
			Path:       shape.Path(pa.Center, pa.Outer, pa.Inner, angle, angle+span),
		})
		angle += span
	}
	return prims
}

// BuildRadial produces one radial segment per category. Segments share the
// inner radius; the outer radius grows with value/scale.Max. Each category
// owns an equal angular slot, 30% of which is left as a gap.
func BuildRadial(spec *Spec, sc Scale, l Layout, cfg Config) []Primitive {
	vals := firstSeries(spec)
	n := len(vals)
	if n == 0 {
		return nil
	}
	pa := l.Polar
	slot := twoPi / float64(n)
	gap := slot * radialGapRatio
	shape := SliceShape{CornerRadius: cfg.PolarRadius}

	prims := make([]Primitive, 0, n)
	for i, v := range vals {
		a0 := startAngle + float64(i)*slot + gap/2
		a1 := a0 + slot - gap
		outer := pa.Inner
		if sc.Max > 0 {
			outer = pa.Inner + (pa.Outer-pa.Inner)*math.Min(v/sc.Max, 1)
		}
		prims = append(prims, &RadialSegment{
			Info: Info{
				ID:       primitiveID("radial", 0, i),
				Category: i,
				Value:    v,
				Color:    cfg.Color(i),
			},
			Center:     pa.Center,
			Inner:      pa.Inner,
			Outer:      outer,
			StartAngle: a0,
			EndAngle:   a1,
			Shape:      shape,
			Path:       shape.Path(pa.Center, outer, pa.Inner, a0, a1),
		})
	}
	return prims
}
