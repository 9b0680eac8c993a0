package flatten

import (
	"math"

	"github.com/gogpu/chart"
)

// joinSegments is the number of sides of the polygon approximating a
// round join.
const joinSegments = 12

// Stroke expands polylines into closed polygons whose non-zero union
// covers a stroke of the given width with round joins and caps.
func Stroke(lines []Polyline, width float64) [][]chart.Point {
	if width <= 0 {
		return nil
	}
	hw := width / 2
	var polys [][]chart.Point
	for _, l := range lines {
		pts := l.Points
		if l.Closed && len(pts) > 1 && !pts[0].Approx(pts[len(pts)-1], 1e-12) {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if q := segmentQuad(pts[i-1], pts[i], hw); q != nil {
				polys = append(polys, q)
			}
		}
		for _, p := range pts {
			polys = append(polys, disc(p, hw))
		}
	}
	return polys
}

// segmentQuad returns the rectangle around segment (a, b), wound
// clockwise on screen so every piece shares one orientation.
func segmentQuad(a, b chart.Point, hw float64) []chart.Point {
	d := b.Sub(a)
	if d.Length() < 1e-12 {
		return nil
	}
	u := d.Normalize()
	n := chart.Pt(-u.Y, u.X).Mul(hw)
	return []chart.Point{a.Sub(n), b.Sub(n), b.Add(n), a.Add(n)}
}

// disc approximates a circle of radius r around c, clockwise on screen.
func disc(c chart.Point, r float64) []chart.Point {
	pts := make([]chart.Point, joinSegments)
	for i := range pts {
		pts[i] = chart.Polar(c, r, 2*math.Pi*float64(i)/joinSegments)
	}
	return pts
}
