package chart

// lineTension scales the Catmull-Rom tangent: control points sit
// tension/2 of the neighbour chord away from each point.
const lineTension = 0.3

// BuildLine produces one LinePath per dataset. Category i sits at
// area.X + i*step with even spacing; a single category is centered.
func BuildLine(spec *Spec, sc Scale, l Layout, cfg Config) []Primitive {
	n := len(spec.Categories)
	if n == 0 {
		return nil
	}
	area := l.Area
	step := 0.0
	if n > 1 {
		step = area.Width / float64(n-1)
	}
	baseY := sc.Map(sc.Baseline(), area.Bottom(), area.Y)

	prims := make([]Primitive, 0, len(spec.Datasets))
	for s, ds := range spec.Datasets {
		pts := make([]Point, n)
		start := make([]Point, n)
		for i, v := range ds.Values {
			x := area.X + float64(i)*step
			if n == 1 {
				x = area.X + area.Width/2
			}
			pts[i] = Pt(x, sc.Map(v, area.Bottom(), area.Y))
			start[i] = Pt(x, baseY)
		}
		prims = append(prims, &LinePath{
			Info: Info{
				ID:       primitiveID("line", s, -1),
				Series:   s,
				Category: -1,
				Color:    cfg.Color(s),
			},
			Points: pts,
			Start:  start,
			Smooth: cfg.Smooth,
			Path:   linePath(pts, cfg.Smooth),
		})
	}
	return prims
}

// linePath connects pts with straight segments, or with cubic segments
// derived from a sliding window of four points (p0, p1, p2, p3) when smooth.
// The window is clamped at both ends by repeating the end point.
func linePath(pts []Point, smooth bool) *Path {
	p := NewPath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	if !smooth || len(pts) < 3 {
		for _, pt := range pts[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		return p
	}
	last := len(pts) - 1
	for i := 0; i < last; i++ {
		p0 := pts[max(i-1, 0)]
		p1 := pts[i]
		p2 := pts[i+1]
		p3 := pts[min(i+2, last)]
		c1 := p1.Add(p2.Sub(p0).Mul(lineTension / 2))
		c2 := p2.Sub(p3.Sub(p1).Mul(lineTension / 2))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p2.X, p2.Y)
	}
	return p
}
