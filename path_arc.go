package chart

import "math"

// Cubics returns a copy of the path with every ArcTo replaced by cubic
// Bezier segments of at most 90 degrees each. Rasterizers that only speak
// lines and Beziers consume this form.
func (p *Path) Cubics() *Path {
	result := NewPath()
	var current Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X, e.Point.Y)
			current = e.Point
		case LineTo:
			result.LineTo(e.Point.X, e.Point.Y)
			current = e.Point
		case ArcTo:
			result.appendArc(current, e)
			current = e.Point
		case QuadTo:
			result.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
			current = e.Point
		case CubicTo:
			result.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
			current = e.Point
		case Close:
			result.Close()
			current = result.start
		}
	}
	return result
}

// appendArc converts an endpoint-parameterized circular arc to center form
// and emits it as cubic segments.
func (p *Path) appendArc(from Point, a ArcTo) {
	to := a.Point
	r := math.Abs(a.Radius)
	if r == 0 || from.Approx(to, 1e-12) {
		p.LineTo(to.X, to.Y)
		return
	}

	// Half chord in the local frame (no rotation for circles).
	hx := (from.X - to.X) / 2
	hy := (from.Y - to.Y) / 2
	d2 := hx*hx + hy*hy
	if d2 > r*r {
		r = math.Sqrt(d2)
	}
	coef := math.Sqrt(math.Max(0, (r*r-d2)/d2))
	if a.Large == a.Sweep {
		coef = -coef
	}
	cxp := coef * hy
	cyp := -coef * hx
	center := Pt(cxp+(from.X+to.X)/2, cyp+(from.Y+to.Y)/2)

	a1 := math.Atan2(hy-cyp, hx-cxp)
	a2 := math.Atan2(-hy-cyp, -hx-cxp)
	delta := a2 - a1
	if a.Sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !a.Sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(delta) / maxAngle))
	if n == 0 {
		n = 1
	}
	step := delta / float64(n)
	for i := 0; i < n; i++ {
		s := a1 + float64(i)*step
		p.arcSegment(center, r, s, s+step)
	}
	// Land exactly on the requested endpoint.
	p.current = to
	if last, ok := p.elements[len(p.elements)-1].(CubicTo); ok {
		last.Point = to
		p.elements[len(p.elements)-1] = last
	}
}

// arcSegment appends a single cubic approximating an arc of at most 90
// degrees. a2 may be smaller than a1 for counter-clockwise arcs.
func (p *Path) arcSegment(c Point, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := c.X + r*cos1
	y1 := c.Y + r*sin1
	x2 := c.X + r*cos2
	y2 := c.Y + r*sin2

	p.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}
