package chart

import "math"

// Kind identifies the concrete type of a Primitive.
type Kind uint8

// Primitive kinds.
const (
	KindLine Kind = iota
	KindRect
	KindSlice
	KindRadial
)

var kindNames = [...]string{
	KindLine:   "LinePath",
	KindRect:   "RectBar",
	KindSlice:  "SlicePath",
	KindRadial: "RadialSegment",
}

// String returns the primitive type name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Info is the metadata shared by all primitives.
type Info struct {
	// ID is stable across renders of the same data, so adapters can update
	// elements in place.
	ID string
	// Series is the dataset index (polar charts: 0).
	Series int
	// Category is the category index, or -1 for a whole-series line.
	Category int
	// Value is the data value drawn (lines: 0).
	Value float64
	// Color is the palette color assigned to the primitive.
	Color string
}

// Primitive is a final geometric shape produced by a geometry builder.
// Its concrete type is one of *LinePath, *RectBar, *SlicePath, *RadialSegment.
type Primitive interface {
	Kind() Kind
	Base() Info
}

// LinePath is one line series.
type LinePath struct {
	Info
	Points []Point
	// Start holds the animation start position of every point (the baseline).
	Start  []Point
	Smooth bool
	Path   *Path
}

func (*LinePath) Kind() Kind   { return KindLine }
func (l *LinePath) Base() Info { return l.Info }

// At returns the line path at animation progress t.
func (l *LinePath) At(t float64) *Path {
	if t >= 1 || len(l.Start) != len(l.Points) {
		return l.Path
	}
	pts := make([]Point, len(l.Points))
	for i := range l.Points {
		pts[i] = l.Start[i].Lerp(l.Points[i], t)
	}
	return linePath(pts, l.Smooth)
}

// RectBar is one bar, column, or stacked segment.
type RectBar struct {
	Info
	Rect   Rect
	Start  Rect
	Radius float64
	// Segment is the index within the category stack; 0 for plain bars.
	Segment int
}

func (*RectBar) Kind() Kind   { return KindRect }
func (b *RectBar) Base() Info { return b.Info }

// At returns the bar rectangle at animation progress t.
func (b *RectBar) At(t float64) Rect {
	if t >= 1 {
		return b.Rect
	}
	return b.Start.Lerp(b.Rect, t)
}

// SlicePath is one pie slice or donut segment. Polar charts reveal slices
// with a sweep clip rather than per-slice tweening, so there is no start
// shape.
type SlicePath struct {
	Info
	Center     Point
	Outer      float64
	Inner      float64
	StartAngle float64
	EndAngle   float64
	Variant    SliceVariant
	Path       *Path
}

func (*SlicePath) Kind() Kind   { return KindSlice }
func (s *SlicePath) Base() Info { return s.Info }

// Span returns the angular width of the slice.
func (s *SlicePath) Span() float64 {
	return s.EndAngle - s.StartAngle
}

// RadialSegment is one radial bar anchored at a shared inner radius.
type RadialSegment struct {
	Info
	Center     Point
	Inner      float64
	Outer      float64
	StartAngle float64
	EndAngle   float64
	Shape      SliceShape
	Path       *Path
}

func (*RadialSegment) Kind() Kind   { return KindRadial }
func (r *RadialSegment) Base() Info { return r.Info }

// At returns the segment path with its outer radius grown to progress t.
func (r *RadialSegment) At(t float64) *Path {
	if t >= 1 {
		return r.Path
	}
	t = math.Max(t, 0)
	outer := r.Inner + (r.Outer-r.Inner)*t
	return r.Shape.Path(r.Center, outer, r.Inner, r.StartAngle, r.EndAngle)
}
