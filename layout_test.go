package chart

import "testing"

func TestComputeLayout(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Rect
	}{
		{"column", NewConfig(WithType(TypeColumn)), Rect{X: 50, Y: 20, Width: 530, Height: 340}},
		{"bar", NewConfig(WithType(TypeBar)), Rect{X: 100, Y: 20, Width: 480, Height: 340}},
		{"stacked bar", NewConfig(WithType(TypeStackedBar)), Rect{X: 100, Y: 20, Width: 480, Height: 340}},
		{"axis titles", NewConfig(WithType(TypeLine), WithAxisTitles("Month", "Sales")),
			Rect{X: 70, Y: 20, Width: 510, Height: 320}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLayout(600, 400, tt.cfg).Area
			if got != tt.want {
				t.Errorf("Area = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeLayout_Polar(t *testing.T) {
	pie := ComputeLayout(600, 400, NewConfig(WithType(TypePie)))
	if pie.Polar.Center != Pt(300, 200) {
		t.Errorf("Center = %v, want (300, 200)", pie.Polar.Center)
	}
	if pie.Polar.Outer != 180 || pie.Polar.Inner != 0 {
		t.Errorf("pie radii = (%v, %v), want (180, 0)", pie.Polar.Outer, pie.Polar.Inner)
	}

	donut := ComputeLayout(600, 400, NewConfig(WithType(TypeDonut), WithRingWidth(50)))
	if donut.Polar.Inner != 130 {
		t.Errorf("donut inner = %v, want 130", donut.Polar.Inner)
	}

	thick := ComputeLayout(600, 400, NewConfig(WithType(TypeDonut), WithRingWidth(500)))
	if thick.Polar.Inner != 0 {
		t.Errorf("donut inner = %v, want clamp to 0", thick.Polar.Inner)
	}

	radial := ComputeLayout(600, 400, NewConfig(WithType(TypeRadial)))
	if radial.Polar.Inner != 45 {
		t.Errorf("radial inner = %v, want 45", radial.Polar.Inner)
	}
}

func TestComputeLayout_Tiny(t *testing.T) {
	l := ComputeLayout(30, 30, NewConfig(WithType(TypeColumn)))
	if l.Area.Width != 0 || l.Area.Height != 0 {
		t.Errorf("Area = %+v, want zero size", l.Area)
	}
	p := ComputeLayout(30, 30, NewConfig(WithType(TypePie)))
	if p.Polar.Outer != 0 {
		t.Errorf("Outer = %v, want 0", p.Polar.Outer)
	}
}
