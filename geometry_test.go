package chart

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func sampleSpec() *Spec {
	return &Spec{
		Categories: []string{"Jan", "Feb", "Mar", "Apr"},
		Datasets: []Dataset{
			{Name: "North", Values: []float64{10, 20, 30, 5}},
			{Name: "South", Values: []float64{4, 0, 12, 8}},
			{Name: "West", Values: []float64{6, 9, 3, 14}},
		},
	}
}

var allTypes = []Type{
	TypeLine, TypeColumn, TypeStackedColumn, TypeBar,
	TypeStackedBar, TypePie, TypeDonut, TypeRadial,
}

func TestBuild_UnknownType(t *testing.T) {
	_, err := Build(sampleSpec(), NewConfig(WithType("gauge")))
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("err = %v, want ErrUnknownType", err)
	}
}

func TestBuild_InvalidSpec(t *testing.T) {
	spec := sampleSpec()
	spec.Datasets[1].Values = spec.Datasets[1].Values[:2]
	_, err := Build(spec, NewConfig())
	if !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("err = %v, want ErrInvalidSpec", err)
	}
}

func TestBuild_ZeroTotalPolarIsSilent(t *testing.T) {
	spec := &Spec{
		Categories: []string{"a", "b"},
		Datasets:   []Dataset{{Name: "z", Values: []float64{0, 0}}},
	}
	for _, typ := range []Type{TypePie, TypeDonut} {
		g, err := Build(spec, NewConfig(WithType(typ)))
		if err != nil {
			t.Fatalf("%s: err = %v, want nil", typ, err)
		}
		if len(g.Primitives) != 0 {
			t.Errorf("%s: %d primitives, want none", typ, len(g.Primitives))
		}
	}
}

func TestBuild_Idempotent(t *testing.T) {
	opts := []cmp.Option{
		cmp.AllowUnexported(Path{}),
		cmpopts.EquateApprox(0, 1e-12),
	}
	for _, typ := range allTypes {
		t.Run(string(typ), func(t *testing.T) {
			cfg := NewConfig(WithType(typ), WithPolarGap(3), WithPolarRadius(4),
				WithStackGap(2), WithBarRadius(3), WithSmooth(true))
			first, err := Build(sampleSpec(), cfg)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			second, err := Build(sampleSpec(), cfg)
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if diff := cmp.Diff(first, second, opts...); diff != "" {
				t.Errorf("second render differs (-first +second):\n%s", diff)
			}
		})
	}
}

func TestBuildBars_Thickness(t *testing.T) {
	cfg := NewConfig(WithType(TypeColumn))
	g, err := Build(sampleSpec(), cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	span := g.Layout.Area.Width / 4
	want := (span - 2*span*groupPadding - 2*seriesGap) / 3
	for _, p := range g.Primitives {
		bar := p.(*RectBar)
		if math.Abs(bar.Rect.Width-want) > 1e-9 {
			t.Fatalf("%s width = %v, want %v", bar.ID, bar.Rect.Width, want)
		}
		if base := g.Layout.Area.Bottom(); math.Abs(bar.Rect.Bottom()-base) > 1e-9 {
			t.Errorf("%s bottom = %v, want baseline %v", bar.ID, bar.Rect.Bottom(), base)
		}
		if bar.Start.Height != 0 || math.Abs(bar.Start.Y-g.Layout.Area.Bottom()) > 1e-9 {
			t.Errorf("%s start = %+v, want zero height on the baseline", bar.ID, bar.Start)
		}
	}
}

func TestBuildBars_Horizontal(t *testing.T) {
	g, err := Build(sampleSpec(), NewConfig(WithType(TypeBar)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	area := g.Layout.Area
	for _, p := range g.Primitives {
		bar := p.(*RectBar)
		if math.Abs(bar.Rect.X-area.X) > 1e-9 {
			t.Errorf("%s starts at x=%v, want %v", bar.ID, bar.Rect.X, area.X)
		}
		want := bar.Value / g.Scale.Max * area.Width
		if math.Abs(bar.Rect.Width-want) > 1e-9 {
			t.Errorf("%s width = %v, want %v", bar.ID, bar.Rect.Width, want)
		}
	}
}

func TestBuildBars_NegativeValues(t *testing.T) {
	spec := &Spec{
		Categories: []string{"a", "b"},
		Datasets:   []Dataset{{Name: "t", Values: []float64{-10, 20}}},
	}
	g, err := Build(spec, NewConfig(WithType(TypeColumn)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	base := g.Scale.Map(0, g.Layout.Area.Bottom(), g.Layout.Area.Y)
	neg := g.Primitives[0].(*RectBar)
	if math.Abs(neg.Rect.Y-base) > 1e-9 || neg.Rect.Height <= 0 {
		t.Errorf("negative bar = %+v, want to hang below baseline %v", neg.Rect, base)
	}
}

func TestBuildStacked_TotalHeight(t *testing.T) {
	for _, typ := range []Type{TypeStackedColumn, TypeStackedBar} {
		t.Run(string(typ), func(t *testing.T) {
			spec := sampleSpec()
			g, err := Build(spec, NewConfig(WithType(typ)))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			extent := func(r Rect) float64 {
				if typ.Horizontal() {
					return r.Width
				}
				return r.Height
			}
			axisLen := g.Layout.Area.Height
			if typ.Horizontal() {
				axisLen = g.Layout.Area.Width
			}
			sums := make([]float64, len(spec.Categories))
			for _, p := range g.Primitives {
				bar := p.(*RectBar)
				sums[bar.Category] += extent(bar.Rect)
				if bar.Radius != 0 {
					t.Errorf("%s rounded without a stack gap", bar.ID)
				}
			}
			for i := range spec.Categories {
				total := 0.0
				for _, ds := range spec.Datasets {
					total += ds.Values[i]
				}
				want := total / g.Scale.Span() * axisLen
				if math.Abs(sums[i]-want) > 1e-6 {
					t.Errorf("category %d stack = %v, want %v", i, sums[i], want)
				}
			}
		})
	}
}

func TestBuildStacked_GapAndRounding(t *testing.T) {
	spec := sampleSpec()
	g, err := Build(spec, NewConfig(WithType(TypeStackedColumn), WithStackGap(3), WithBarRadius(4)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	bars := make(map[string]*RectBar)
	for _, p := range g.Primitives {
		b := p.(*RectBar)
		bars[b.ID] = b
	}
	// Jan: 10, 4, 6 stacked bottom-up; every upper segment loses the gap.
	north, south := bars["stack-0-0"], bars["stack-1-0"]
	if d := north.Rect.Y - south.Rect.Bottom(); math.Abs(d-3) > 1e-9 {
		t.Errorf("gap between segments = %v, want 3", d)
	}
	if south.Radius != 4 {
		t.Errorf("radius = %v, want 4 when gap > 0", south.Radius)
	}
}

func TestBuildLine(t *testing.T) {
	g, err := Build(sampleSpec(), NewConfig(WithType(TypeLine)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.Primitives) != 3 {
		t.Fatalf("primitives = %d, want one line per dataset", len(g.Primitives))
	}
	area := g.Layout.Area
	line := g.Primitives[0].(*LinePath)
	step := area.Width / 3
	for i, pt := range line.Points {
		if math.Abs(pt.X-(area.X+float64(i)*step)) > 1e-9 {
			t.Errorf("point %d x = %v, want %v", i, pt.X, area.X+float64(i)*step)
		}
	}
	if n := line.Path.Count(LineTo{}); n != 3 {
		t.Errorf("polyline segments = %d, want 3", n)
	}
	if got := line.At(0); !pointsOf(got)[2].Approx(Pt(area.X+2*step, area.Bottom()), 1e-9) {
		t.Errorf("start shape should sit on the baseline: %s", got)
	}
}

func TestBuildLine_Smooth(t *testing.T) {
	g, err := Build(sampleSpec(), NewConfig(WithType(TypeLine), WithSmooth(true)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	line := g.Primitives[0].(*LinePath)
	if n := line.Path.Count(CubicTo{}); n != 3 {
		t.Fatalf("cubic segments = %d, want 3", n)
	}
	// The first window repeats p1 as p0, so the first control point leans
	// toward p2 by tension/2 of the p1->p2 chord.
	c := line.Path.Elements()[1].(CubicTo)
	p1, p2 := line.Points[0], line.Points[1]
	want := p1.Add(p2.Sub(p1).Mul(lineTension / 2))
	if !c.Control1.Approx(want, 1e-9) {
		t.Errorf("control1 = %v, want %v", c.Control1, want)
	}
}

func TestBuildRadial(t *testing.T) {
	g, err := Build(sampleSpec(), NewConfig(WithType(TypeRadial)))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	pa := g.Layout.Polar
	slot := 2 * math.Pi / 4
	for i, p := range g.Primitives {
		seg := p.(*RadialSegment)
		if span := seg.EndAngle - seg.StartAngle; math.Abs(span-0.7*slot) > 1e-12 {
			t.Errorf("segment %d span = %v, want %v", i, span, 0.7*slot)
		}
		want := pa.Inner + (pa.Outer-pa.Inner)*seg.Value/g.Scale.Max
		if math.Abs(seg.Outer-want) > 1e-9 {
			t.Errorf("segment %d outer = %v, want %v", i, seg.Outer, want)
		}
		if !seg.At(0).IsEmpty() {
			t.Errorf("segment %d start shape should be empty", i)
		}
	}
}

func TestBuild_NonFiniteValuesCountAsZero(t *testing.T) {
	spec := &Spec{
		Categories: []string{"a", "b", "c"},
		Datasets:   []Dataset{{Name: "v", Values: []float64{math.NaN(), 10, math.Inf(1)}}},
	}
	for _, typ := range allTypes {
		t.Run(string(typ), func(t *testing.T) {
			g, err := Build(spec, NewConfig(WithType(typ)))
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if g.Scale.Max != 10 {
				t.Errorf("scale max = %v, want 10", g.Scale.Max)
			}
			for _, p := range g.Primitives {
				for _, pt := range primitivePoints(p) {
					if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
						t.Fatalf("%s has non-finite point %v", typ, pt)
					}
				}
			}
		})
	}
	if !math.IsNaN(spec.Datasets[0].Values[0]) {
		t.Error("Build modified the caller's spec")
	}
}

func TestSpec_Finite(t *testing.T) {
	clean := sampleSpec()
	if clean.Finite() != clean {
		t.Error("Finite() copied a spec without non-finite values")
	}
	dirty := &Spec{
		Categories: []string{"a", "b"},
		Datasets:   []Dataset{{Name: "v", Values: []float64{math.Inf(-1), 2}}},
	}
	got := dirty.Finite()
	if diff := cmp.Diff([]float64{0, 2}, got.Datasets[0].Values); diff != "" {
		t.Errorf("Finite() values (-want +got):\n%s", diff)
	}
}

func primitivePoints(p Primitive) []Point {
	switch p := p.(type) {
	case *LinePath:
		return append(pointsOf(p.Path), p.Start...)
	case *RectBar:
		return []Point{{p.Rect.X, p.Rect.Y}, {p.Rect.Right(), p.Rect.Bottom()},
			{p.Start.X, p.Start.Y}, {p.Start.Right(), p.Start.Bottom()}}
	case *SlicePath:
		return pointsOf(p.Path)
	case *RadialSegment:
		return pointsOf(p.Path)
	}
	return nil
}
