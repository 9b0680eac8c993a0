// Package flatten converts chart paths into polylines and expands
// polylines into fillable stroke outlines.
package flatten

import (
	"math"

	"github.com/gogpu/chart"
)

// Tolerance is the maximum distance from the curve for flattening.
const Tolerance = 0.1

// Polyline is one flattened subpath.
type Polyline struct {
	Points []chart.Point
	Closed bool
}

// Path flattens p into one polyline per subpath. Arcs are converted to
// cubics first.
func Path(p *chart.Path, tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = Tolerance
	}
	var (
		lines   []Polyline
		cur     *Polyline
		current chart.Point
	)
	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			lines = append(lines, *cur)
		}
		cur = nil
	}
	for _, elem := range p.Cubics().Elements() {
		switch e := elem.(type) {
		case chart.MoveTo:
			flush()
			cur = &Polyline{Points: []chart.Point{e.Point}}
			current = e.Point
		case chart.LineTo:
			if cur == nil {
				cur = &Polyline{Points: []chart.Point{current}}
			}
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case chart.QuadTo:
			if cur == nil {
				cur = &Polyline{Points: []chart.Point{current}}
			}
			flattenQuadratic(current, e.Control, e.Point, tolerance, &cur.Points)
			current = e.Point
		case chart.CubicTo:
			if cur == nil {
				cur = &Polyline{Points: []chart.Point{current}}
			}
			flattenCubic(current, e.Control1, e.Control2, e.Point, tolerance, &cur.Points)
			current = e.Point
		case chart.Close:
			if cur != nil {
				cur.Closed = true
				current = cur.Points[0]
			}
			flush()
		}
	}
	flush()
	return lines
}

// flattenQuadratic recursively subdivides a quadratic Bezier curve.
func flattenQuadratic(p0, p1, p2 chart.Point, tolerance float64, points *[]chart.Point) {
	if distanceToLine(p1, p0, p2) < tolerance {
		*points = append(*points, p2)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)

	flattenQuadratic(p0, q0, q2, tolerance, points)
	flattenQuadratic(q2, q1, p2, tolerance, points)
}

// flattenCubic recursively subdivides a cubic Bezier curve using de
// Casteljau's algorithm.
func flattenCubic(p0, p1, p2, p3 chart.Point, tolerance float64, points *[]chart.Point) {
	dist := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if dist < tolerance {
		*points = append(*points, p3)
		return
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)

	flattenCubic(p0, q0, r0, s, tolerance, points)
	flattenCubic(s, r1, q2, p3, tolerance, points)
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b chart.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
