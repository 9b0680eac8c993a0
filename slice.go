package chart

import "math"

const (
	twoPi = 2 * math.Pi

	// startAngle is 12 o'clock; angles grow clockwise on screen.
	startAngle = -math.Pi / 2

	angleEpsilon = 1e-9
	// fullCircleEpsilon treats spans this close to 2pi as a full circle,
	// which a single arc command cannot express.
	fullCircleEpsilon = 1e-6

	// cornerThicknessRatio caps the corner radius relative to the radial
	// thickness of a slice.
	cornerThicknessRatio = 0.4
)

// SliceVariant is the slice outline style.
type SliceVariant uint8

// Slice variants.
const (
	SliceSharp SliceVariant = iota
	SliceGapped
	SliceRounded
	SliceGappedRounded
)

var sliceVariantNames = [...]string{
	SliceSharp:         "sharp",
	SliceGapped:        "gapped",
	SliceRounded:       "rounded",
	SliceGappedRounded: "gapped-rounded",
}

func (v SliceVariant) String() string {
	if int(v) < len(sliceVariantNames) {
		return sliceVariantNames[v]
	}
	return "unknown"
}

// SliceShape builds pie slices, donut segments and radial segments.
// Gap is the full visual gap between neighbouring slices; CornerRadius is
// the maximum corner rounding.
type SliceShape struct {
	Gap          float64
	CornerRadius float64
}

// Variant reports which of the four outlines the shape produces.
func (s SliceShape) Variant() SliceVariant {
	switch {
	case s.Gap > 0 && s.CornerRadius > 0:
		return SliceGappedRounded
	case s.Gap > 0:
		return SliceGapped
	case s.CornerRadius > 0:
		return SliceRounded
	}
	return SliceSharp
}

// innerKind describes how the inner side of a slice closes.
type innerKind uint8

const (
	innerArc      innerKind = iota // donut segment: arc between q1 and q0
	innerApex                      // single point where the edges meet
	innerStraight                  // reflex gapped slice: line from q1 to q0
)

// sliceCorners holds the four sharp corners of a slice in drawing order:
// outer start, outer end, inner end, inner start.
type sliceCorners struct {
	c              Point
	outer, inner   float64
	p0, p1, q1, q0 Point
	kind           innerKind
}

// Path returns the outline of the slice between angles a0 and a1 (a0 < a1,
// clockwise) bounded by the inner and outer radius. inner == 0 yields a pie
// slice. An empty path means nothing is visible: zero span, or a slice too
// narrow to survive the gap.
func (s SliceShape) Path(c Point, outer, inner, a0, a1 float64) *Path {
	span := a1 - a0
	inner = math.Max(inner, 0)
	if span <= angleEpsilon || outer <= 0 || inner >= outer {
		return NewPath()
	}
	if span >= twoPi-fullCircleEpsilon {
		return fullRing(c, outer, inner)
	}

	k, ok := s.corners(c, outer, inner, a0, a1)
	if !ok {
		return NewPath()
	}
	if cr := s.cornerRadius(k); cr > angleEpsilon {
		return k.rounded(cr)
	}
	return k.sharp()
}

// corners computes the sharp corners. With a gap, both radial edges are
// shifted perpendicular to their own direction by gap/2, so the visual gap
// has constant width at every radius.
func (s SliceShape) corners(c Point, outer, inner, a0, a1 float64) (sliceCorners, bool) {
	span := a1 - a0
	half := span / 2
	g := s.Gap / 2
	if g >= outer {
		return sliceCorners{}, false
	}

	u0 := Pt(math.Cos(a0), math.Sin(a0))
	u1 := Pt(math.Cos(a1), math.Sin(a1))
	n0 := Pt(-u0.Y, u0.X) // into the slice from the start edge
	n1 := Pt(u1.Y, -u1.X) // into the slice from the end edge

	// edge returns the point of the shifted edge at radius r.
	edge := func(u, n Point, r float64) Point {
		return c.Add(n.Mul(g)).Add(u.Mul(math.Sqrt(r*r - g*g)))
	}

	k := sliceCorners{c: c, outer: outer, inner: inner}
	if span-2*math.Asin(g/outer) <= angleEpsilon {
		return k, false
	}
	k.p0 = edge(u0, n0, outer)
	k.p1 = edge(u1, n1, outer)

	switch {
	case inner > g && span-2*math.Asin(g/inner) > angleEpsilon:
		k.kind = innerArc
		k.q0 = edge(u0, n0, inner)
		k.q1 = edge(u1, n1, inner)
	case g == 0 || half < math.Pi/2:
		// The shifted edges meet on the bisector.
		d := g / math.Sin(half)
		if d >= outer {
			return k, false
		}
		k.kind = innerApex
		k.q0 = Polar(c, d, a0+half)
		k.q1 = k.q0
	default:
		k.kind = innerStraight
		k.q0 = c.Add(n0.Mul(g))
		k.q1 = c.Add(n1.Mul(g))
	}
	return k, true
}

// cornerRadius clamps the configured radius so corner curves never overlap:
// by 40% of the radial thickness and by the half chord of each arc.
func (s SliceShape) cornerRadius(k sliceCorners) float64 {
	cr := s.CornerRadius
	if cr <= 0 {
		return 0
	}
	innerR := k.inner
	if k.kind != innerArc {
		innerR = k.q0.Distance(k.c)
	}
	cr = math.Min(cr, cornerThicknessRatio*(k.outer-innerR))
	cr = math.Min(cr, k.outer*math.Sin(math.Min(k.outerSpan()/2, math.Pi/2)))
	switch k.kind {
	case innerArc:
		cr = math.Min(cr, k.inner*math.Sin(math.Min(k.innerSpan()/2, math.Pi/2)))
	case innerStraight:
		cr = math.Min(cr, k.q0.Distance(k.q1)/2)
	}
	return math.Max(cr, 0)
}

// outerSpan returns the clockwise angle from p0 to p1.
func (k sliceCorners) outerSpan() float64 {
	return normAngle(k.p1.Angle(k.c) - k.p0.Angle(k.c))
}

// innerSpan returns the clockwise angle from q0 to q1.
func (k sliceCorners) innerSpan() float64 {
	return normAngle(k.q1.Angle(k.c) - k.q0.Angle(k.c))
}

func (k sliceCorners) sharp() *Path {
	p := NewPath()
	switch k.kind {
	case innerApex:
		p.MoveTo(k.q0.X, k.q0.Y)
		p.LineTo(k.p0.X, k.p0.Y)
		p.ArcTo(k.outer, k.outerSpan() > math.Pi, true, k.p1.X, k.p1.Y)
	case innerArc:
		p.MoveTo(k.p0.X, k.p0.Y)
		p.ArcTo(k.outer, k.outerSpan() > math.Pi, true, k.p1.X, k.p1.Y)
		p.LineTo(k.q1.X, k.q1.Y)
		p.ArcTo(k.inner, k.innerSpan() > math.Pi, false, k.q0.X, k.q0.Y)
	case innerStraight:
		p.MoveTo(k.p0.X, k.p0.Y)
		p.ArcTo(k.outer, k.outerSpan() > math.Pi, true, k.p1.X, k.p1.Y)
		p.LineTo(k.q1.X, k.q1.Y)
		p.LineTo(k.q0.X, k.q0.Y)
	}
	p.Close()
	return p
}

// rounded replaces each sharp corner with a quadratic curve whose control
// point is the sharp corner and whose endpoints are inset by cr along the
// arc and the edge.
func (k sliceCorners) rounded(cr float64) *Path {
	c := k.c
	a0 := k.p0.Angle(c)
	a1 := a0 + k.outerSpan()

	start := k.p0.Toward(k.q0, cr)
	b := Polar(c, k.outer, a0+cr/k.outer)
	e := Polar(c, k.outer, a1-cr/k.outer)
	f := k.p1.Toward(k.q1, cr)

	p := NewPath()
	p.MoveTo(start.X, start.Y)
	p.QuadraticTo(k.p0.X, k.p0.Y, b.X, b.Y)
	p.ArcTo(k.outer, k.outerSpan()-2*cr/k.outer > math.Pi, true, e.X, e.Y)
	p.QuadraticTo(k.p1.X, k.p1.Y, f.X, f.Y)

	switch k.kind {
	case innerArc:
		b0 := k.q0.Angle(c)
		b1 := b0 + k.innerSpan()
		g := k.q1.Toward(k.p1, cr)
		h := Polar(c, k.inner, b1-cr/k.inner)
		i := Polar(c, k.inner, b0+cr/k.inner)
		j := k.q0.Toward(k.p0, cr)
		p.LineTo(g.X, g.Y)
		p.QuadraticTo(k.q1.X, k.q1.Y, h.X, h.Y)
		p.ArcTo(k.inner, k.innerSpan()-2*cr/k.inner > math.Pi, false, i.X, i.Y)
		p.QuadraticTo(k.q0.X, k.q0.Y, j.X, j.Y)
	case innerApex:
		// One quadratic around the apex, split at t=0.5 into an inner-end
		// and an inner-start half so every slice keeps four corners.
		apex := k.q0
		g := apex.Toward(k.p1, cr)
		j := apex.Toward(k.p0, cr)
		m := g.Mul(0.25).Add(apex.Mul(0.5)).Add(j.Mul(0.25))
		c1 := g.Lerp(apex, 0.5)
		c2 := apex.Lerp(j, 0.5)
		p.LineTo(g.X, g.Y)
		p.QuadraticTo(c1.X, c1.Y, m.X, m.Y)
		p.QuadraticTo(c2.X, c2.Y, j.X, j.Y)
	case innerStraight:
		g := k.q1.Toward(k.p1, cr)
		h := k.q1.Toward(k.q0, cr)
		i := k.q0.Toward(k.q1, cr)
		j := k.q0.Toward(k.p0, cr)
		p.LineTo(g.X, g.Y)
		p.QuadraticTo(k.q1.X, k.q1.Y, h.X, h.Y)
		p.LineTo(i.X, i.Y)
		p.QuadraticTo(k.q0.X, k.q0.Y, j.X, j.Y)
	}
	p.Close()
	return p
}

// fullRing draws a full circle (inner == 0) or ring as two half arcs per
// circle. The inner circle winds the other way so it cuts a hole under the
// non-zero fill rule.
func fullRing(c Point, outer, inner float64) *Path {
	p := NewPath()
	p.MoveTo(c.X, c.Y-outer)
	p.ArcTo(outer, false, true, c.X, c.Y+outer)
	p.ArcTo(outer, false, true, c.X, c.Y-outer)
	p.Close()
	if inner > 0 {
		p.MoveTo(c.X, c.Y-inner)
		p.ArcTo(inner, false, false, c.X, c.Y+inner)
		p.ArcTo(inner, false, false, c.X, c.Y-inner)
		p.Close()
	}
	return p
}

// SweepClip returns the clip region revealing polar charts: a wedge of the
// given radius swept clockwise from 12 o'clock by angle. A nil path means
// no clipping (the sweep is complete); an empty path hides everything.
func SweepClip(c Point, radius, angle float64) *Path {
	switch {
	case angle >= twoPi-fullCircleEpsilon:
		return nil
	case angle <= angleEpsilon:
		return NewPath()
	}
	return SliceShape{}.Path(c, radius, 0, startAngle, startAngle+angle)
}

// normAngle maps a to [0, 2pi).
func normAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
