package chart

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc from the current point to Point.
// Large and Sweep follow SVG elliptical-arc flag semantics; Sweep=true is
// clockwise on screen.
type ArcTo struct {
	Radius float64
	Large  bool
	Sweep  bool
	Point  Point
}

func (ArcTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path: an ordered sequence of drawing commands.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc of radius r to (x, y).
func (p *Path) ArcTo(r float64, large, sweep bool, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, ArcTo{Radius: r, Large: large, Sweep: sweep, Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p.Len() == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Count returns how many elements of the same concrete type as kind the path
// holds, e.g. p.Count(QuadTo{}).
func (p *Path) Count(kind PathElement) int {
	n := 0
	for _, e := range p.elements {
		if sameKind(e, kind) {
			n++
		}
	}
	return n
}

func sameKind(a, b PathElement) bool {
	switch a.(type) {
	case MoveTo:
		_, ok := b.(MoveTo)
		return ok
	case LineTo:
		_, ok := b.(LineTo)
		return ok
	case ArcTo:
		_, ok := b.(ArcTo)
		return ok
	case QuadTo:
		_, ok := b.(QuadTo)
		return ok
	case CubicTo:
		_, ok := b.(CubicTo)
		return ok
	case Close:
		_, ok := b.(Close)
		return ok
	}
	return false
}

// Lerp interpolates between p (t=0) and q (t=1) element by element.
// Both paths must share the same command structure; otherwise q is returned.
func (p *Path) Lerp(q *Path, t float64) *Path {
	if p.Len() != q.Len() {
		return q.Clone()
	}
	result := NewPath()
	for i, a := range p.elements {
		b := q.elements[i]
		if !sameKind(a, b) {
			return q.Clone()
		}
		switch e := b.(type) {
		case MoveTo:
			pt := a.(MoveTo).Point.Lerp(e.Point, t)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := a.(LineTo).Point.Lerp(e.Point, t)
			result.LineTo(pt.X, pt.Y)
		case ArcTo:
			from := a.(ArcTo)
			pt := from.Point.Lerp(e.Point, t)
			r := from.Radius + (e.Radius-from.Radius)*t
			result.ArcTo(r, e.Large, e.Sweep, pt.X, pt.Y)
		case QuadTo:
			from := a.(QuadTo)
			c := from.Control.Lerp(e.Control, t)
			pt := from.Point.Lerp(e.Point, t)
			result.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			from := a.(CubicTo)
			c1 := from.Control1.Lerp(e.Control1, t)
			c2 := from.Control2.Lerp(e.Control2, t)
			pt := from.Point.Lerp(e.Point, t)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			sb.WriteString("M")
			writePoint(&sb, e.Point)
		case LineTo:
			sb.WriteString("L")
			writePoint(&sb, e.Point)
		case ArcTo:
			sb.WriteString("A")
			sb.WriteString(formatFloat(e.Radius))
			sb.WriteByte(' ')
			sb.WriteString(formatFloat(e.Radius))
			sb.WriteString(" 0 ")
			sb.WriteString(flag(e.Large))
			sb.WriteByte(' ')
			sb.WriteString(flag(e.Sweep))
			sb.WriteByte(' ')
			writePoint(&sb, e.Point)
		case QuadTo:
			sb.WriteString("Q")
			writePoint(&sb, e.Control)
			sb.WriteByte(' ')
			writePoint(&sb, e.Point)
		case CubicTo:
			sb.WriteString("C")
			writePoint(&sb, e.Control1)
			sb.WriteByte(' ')
			writePoint(&sb, e.Control2)
			sb.WriteByte(' ')
			writePoint(&sb, e.Point)
		case Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}

func writePoint(sb *strings.Builder, pt Point) {
	sb.WriteString(formatFloat(pt.X))
	sb.WriteByte(',')
	sb.WriteString(formatFloat(pt.Y))
}

func formatFloat(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
