package chart

import (
	"math"
	"math/rand"
	"testing"
)

// pointsOf returns the end point of every element that has one.
func pointsOf(p *Path) []Point {
	var pts []Point
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case MoveTo:
			pts = append(pts, e.Point)
		case LineTo:
			pts = append(pts, e.Point)
		case ArcTo:
			pts = append(pts, e.Point)
		case QuadTo:
			pts = append(pts, e.Point)
		case CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// lineDistance returns the signed distance of p from the line through c
// along angle a; positive is the clockwise side.
func lineDistance(p, c Point, a float64) float64 {
	u := Pt(math.Cos(a), math.Sin(a))
	d := p.Sub(c)
	return u.X*d.Y - u.Y*d.X
}

func TestSliceShape_Variant(t *testing.T) {
	tests := []struct {
		shape SliceShape
		want  SliceVariant
	}{
		{SliceShape{}, SliceSharp},
		{SliceShape{Gap: 4}, SliceGapped},
		{SliceShape{CornerRadius: 6}, SliceRounded},
		{SliceShape{Gap: 4, CornerRadius: 6}, SliceGappedRounded},
	}
	for _, tt := range tests {
		if got := tt.shape.Variant(); got != tt.want {
			t.Errorf("%+v.Variant() = %v, want %v", tt.shape, got, tt.want)
		}
	}
}

func TestSliceShape_SharpPie(t *testing.T) {
	c := Pt(100, 100)
	p := SliceShape{}.Path(c, 50, 0, -math.Pi/2, 0)

	els := p.Elements()
	if len(els) != 4 {
		t.Fatalf("elements = %d (%s), want 4", len(els), p)
	}
	if m, ok := els[0].(MoveTo); !ok || !m.Point.Approx(c, 1e-9) {
		t.Errorf("first element = %#v, want MoveTo center", els[0])
	}
	if l, ok := els[1].(LineTo); !ok || !l.Point.Approx(Pt(100, 50), 1e-9) {
		t.Errorf("second element = %#v, want LineTo 12 o'clock", els[1])
	}
	a, ok := els[2].(ArcTo)
	if !ok {
		t.Fatalf("third element = %#v, want ArcTo", els[2])
	}
	if !a.Point.Approx(Pt(150, 100), 1e-9) || a.Radius != 50 || a.Large || !a.Sweep {
		t.Errorf("arc = %+v, want quarter clockwise arc to 3 o'clock", a)
	}
}

func TestSliceShape_LargeArc(t *testing.T) {
	p := SliceShape{}.Path(Pt(0, 0), 10, 0, -math.Pi/2, math.Pi)
	for _, e := range p.Elements() {
		if a, ok := e.(ArcTo); ok && !a.Large {
			t.Errorf("arc spanning 270 degrees must set the large-arc flag")
		}
	}
}

func TestSliceShape_GappedEdgesAreParallel(t *testing.T) {
	c := Pt(0, 0)
	gap := 8.0
	a0, a1 := -math.Pi/2, 0.3
	p := SliceShape{Gap: gap}.Path(c, 100, 0, a0, a1)

	pts := pointsOf(p)
	if len(pts) != 3 {
		t.Fatalf("points = %v, want apex and two rim corners", pts)
	}
	apex, p0, p1 := pts[0], pts[1], pts[2]

	// Both points of each shifted edge keep gap/2 from the original radius.
	for _, tc := range []struct {
		name string
		pt   Point
		a    float64
		sign float64
	}{
		{"apex/start", apex, a0, 1},
		{"rim/start", p0, a0, 1},
		{"apex/end", apex, a1, -1},
		{"rim/end", p1, a1, -1},
	} {
		if d := tc.sign * lineDistance(tc.pt, c, tc.a); math.Abs(d-gap/2) > 1e-9 {
			t.Errorf("%s: distance = %v, want %v", tc.name, d, gap/2)
		}
	}
	if r := p0.Distance(c); math.Abs(r-100) > 1e-9 {
		t.Errorf("rim corner radius = %v, want 100", r)
	}
}

func TestSliceShape_GappedRoundedQuarters(t *testing.T) {
	spec := &Spec{
		Categories: []string{"a", "b", "c", "d"},
		Datasets:   []Dataset{{Name: "v", Values: []float64{1, 1, 1, 1}}},
	}
	g, err := Build(spec, NewConfig(WithType(TypePie), WithPolarGap(4), WithPolarRadius(6)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Primitives) != 4 {
		t.Fatalf("primitives = %d, want 4", len(g.Primitives))
	}
	for i, prim := range g.Primitives {
		s := prim.(*SlicePath)
		if math.Abs(s.Span()-math.Pi/2) > 1e-12 {
			t.Errorf("slice %d span = %v, want pi/2", i, s.Span())
		}
		if s.Variant != SliceGappedRounded {
			t.Errorf("slice %d variant = %v, want gapped-rounded", i, s.Variant)
		}
		if n := s.Path.Count(QuadTo{}); n != 4 {
			t.Errorf("slice %d has %d quadratic corners, want 4: %s", i, n, s.Path)
		}
		for _, pt := range pointsOf(s.Path) {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
				t.Fatalf("slice %d has NaN point: %s", i, s.Path)
			}
		}
	}
}

func TestSliceShape_RoundedCornersUseSharpControl(t *testing.T) {
	c := Pt(0, 0)
	sharp := SliceShape{}.Path(c, 100, 40, 0, math.Pi/2)
	round := SliceShape{CornerRadius: 5}.Path(c, 100, 40, 0, math.Pi/2)

	corners := pointsOf(sharp)[:4] // p0, p1, q1, q0
	var controls []Point
	for _, e := range round.Elements() {
		if q, ok := e.(QuadTo); ok {
			controls = append(controls, q.Control)
		}
	}
	if len(controls) != 4 {
		t.Fatalf("quadratic corners = %d, want 4", len(controls))
	}
	for i := range controls {
		if !controls[i].Approx(corners[i], 1e-9) {
			t.Errorf("corner %d control = %v, want sharp corner %v", i, controls[i], corners[i])
		}
	}
	// First point is inset from the outer start corner by the radius.
	start := pointsOf(round)[0]
	if d := start.Distance(corners[0]); math.Abs(d-5) > 1e-9 {
		t.Errorf("inset = %v, want 5", d)
	}
}

func TestSliceShape_CornerRadiusClamp(t *testing.T) {
	// A thin ring forces the 40% thickness bound.
	k, ok := SliceShape{}.corners(Pt(0, 0), 100, 90, 0, math.Pi/2)
	if !ok {
		t.Fatal("corners rejected a valid segment")
	}
	if cr := (SliceShape{CornerRadius: 50}).cornerRadius(k); math.Abs(cr-4) > 1e-9 {
		t.Errorf("thickness-clamped radius = %v, want 4", cr)
	}

	// A narrow slice forces the trigonometric bound.
	span := 0.02
	k, _ = SliceShape{}.corners(Pt(0, 0), 100, 0, 0, span)
	cr := (SliceShape{CornerRadius: 50}).cornerRadius(k)
	if want := 100 * math.Sin(span/2); math.Abs(cr-want) > 1e-9 {
		t.Errorf("trig-clamped radius = %v, want %v", cr, want)
	}
}

func TestSliceShape_NarrowSliceVanishesUnderGap(t *testing.T) {
	p := SliceShape{Gap: 10}.Path(Pt(0, 0), 50, 0, 0, 0.05)
	if !p.IsEmpty() {
		t.Errorf("slice narrower than the gap should be empty, got %s", p)
	}
}

func TestSliceShape_FullCircle(t *testing.T) {
	c := Pt(50, 50)
	for _, shape := range []SliceShape{{}, {Gap: 4}, {CornerRadius: 6}, {Gap: 4, CornerRadius: 6}} {
		pie := shape.Path(c, 40, 0, -math.Pi/2, 3*math.Pi/2)
		if n := pie.Count(ArcTo{}); n != 2 {
			t.Errorf("%v full pie arcs = %d, want 2 half arcs", shape.Variant(), n)
		}
		ring := shape.Path(c, 40, 20, -math.Pi/2, 3*math.Pi/2)
		if n := ring.Count(ArcTo{}); n != 4 {
			t.Errorf("%v full ring arcs = %d, want 4", shape.Variant(), n)
		}
	}
}

func TestSliceShape_ReflexGappedSlice(t *testing.T) {
	p := SliceShape{Gap: 6, CornerRadius: 3}.Path(Pt(0, 0), 100, 0, 0, 1.5*math.Pi)
	if p.IsEmpty() {
		t.Fatal("reflex slice should not vanish")
	}
	if n := p.Count(QuadTo{}); n != 4 {
		t.Errorf("quadratic corners = %d, want 4", n)
	}
}

func TestSliceAngles_SumToFullCircle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(12)
		spec := &Spec{Categories: make([]string, n), Datasets: []Dataset{{Values: make([]float64, n)}}}
		for i := range spec.Categories {
			spec.Categories[i] = string(rune('a' + i))
			spec.Datasets[0].Values[i] = rng.Float64() * 100
		}
		g, err := Build(spec, NewConfig(WithType(TypeDonut)))
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		sum := 0.0
		want := -math.Pi / 2
		for _, prim := range g.Primitives {
			s := prim.(*SlicePath)
			if math.Abs(s.StartAngle-want) > 1e-9 {
				t.Fatalf("slice starts at %v, want %v", s.StartAngle, want)
			}
			sum += s.Span()
			want = s.EndAngle
		}
		if math.Abs(sum-2*math.Pi) > 1e-9 {
			t.Fatalf("spans sum to %v, want 2pi", sum)
		}
	}
}

func TestSweepClip(t *testing.T) {
	c := Pt(0, 0)
	if p := SweepClip(c, 10, 2*math.Pi); p != nil {
		t.Errorf("complete sweep clip = %s, want nil", p)
	}
	if p := SweepClip(c, 10, 0); p == nil || !p.IsEmpty() {
		t.Errorf("zero sweep clip = %v, want empty path", p)
	}
	p := SweepClip(c, 10, math.Pi)
	pts := pointsOf(p)
	if len(pts) < 3 || !pts[1].Approx(Pt(0, -10), 1e-9) || !pts[2].Approx(Pt(0, 10), 1e-9) {
		t.Errorf("half sweep clip = %s, want wedge from 12 to 6 o'clock", p)
	}
}
