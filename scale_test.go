package chart

import (
	"math"
	"math/rand"
	"testing"
)

// isNiceStep reports whether step is 1, 2, 5 or 10 times a power of ten.
func isNiceStep(step float64) bool {
	mag := math.Pow(10, math.Floor(math.Log10(step)))
	f := step / mag
	for _, want := range []float64{1, 2, 5, 10} {
		if math.Abs(f-want) < 1e-9 {
			return true
		}
	}
	return false
}

func TestNiceScale_Table(t *testing.T) {
	tests := []struct {
		name             string
		lo, hi           float64
		desired          int
		wantMin, wantMax float64
		wantStep         float64
	}{
		{"positive range", 10, 30, 5, 0, 30, 5},
		{"unit range", 0, 1, 5, 0, 1, 0.2},
		{"degenerate", 7, 7, 5, 0, 8, 2},
		{"negative", -25, 40, 5, -30, 40, 10},
		{"large", 0, 9800, 5, 0, 10000, 2000},
		{"default count", 0, 100, 0, 0, 100, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NiceScale(tt.lo, tt.hi, tt.desired)
			if s.Min != tt.wantMin || s.Max != tt.wantMax {
				t.Errorf("NiceScale(%v, %v) = [%v, %v], want [%v, %v]",
					tt.lo, tt.hi, s.Min, s.Max, tt.wantMin, tt.wantMax)
			}
			if math.Abs(s.Step-tt.wantStep) > 1e-12 {
				t.Errorf("step = %v, want %v", s.Step, tt.wantStep)
			}
		})
	}
}

func TestNiceScale_TicksSpanRange(t *testing.T) {
	s := NiceScale(10, 30, 5)
	if s.Max < 30 {
		t.Fatalf("Max = %v, want >= 30", s.Max)
	}
	for i := 1; i < len(s.Ticks); i++ {
		if d := s.Ticks[i] - s.Ticks[i-1]; math.Abs(d-s.Step) > 1e-9 {
			t.Errorf("tick gap %d = %v, want %v", i, d, s.Step)
		}
	}
	if s.Ticks[0] != s.Min || s.Ticks[len(s.Ticks)-1] != s.Max {
		t.Errorf("ticks %v do not span [%v, %v]", s.Ticks, s.Min, s.Max)
	}
}

func TestNiceScale_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		mag := math.Pow(10, float64(rng.Intn(8)-2))
		lo := (rng.Float64() - 0.5) * 2 * mag
		hi := lo + (0.01+rng.Float64())*mag
		desired := 1 + rng.Intn(10)

		s := NiceScale(lo, hi, desired)
		tol := 1e-9 * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))

		if s.Min > lo+tol {
			t.Fatalf("NiceScale(%v, %v, %d): Min %v > lo", lo, hi, desired, s.Min)
		}
		if s.Max < hi-tol {
			t.Fatalf("NiceScale(%v, %v, %d): Max %v < hi", lo, hi, desired, s.Max)
		}
		if s.Min > 0 {
			t.Fatalf("NiceScale(%v, %v, %d): Min %v > 0", lo, hi, desired, s.Min)
		}
		if lo <= 0 && hi >= 0 && (s.Min > 0 || s.Max < 0) {
			t.Fatalf("NiceScale(%v, %v, %d): zero not in [%v, %v]", lo, hi, desired, s.Min, s.Max)
		}
		if !isNiceStep(s.Step) {
			t.Fatalf("NiceScale(%v, %v, %d): step %v is not nice", lo, hi, desired, s.Step)
		}
		if r := s.Min / s.Step; math.Abs(r-math.Round(r)) > 1e-6 {
			t.Fatalf("Min %v not a multiple of step %v", s.Min, s.Step)
		}
		if r := s.Max / s.Step; math.Abs(r-math.Round(r)) > 1e-6 {
			t.Fatalf("Max %v not a multiple of step %v", s.Max, s.Step)
		}
	}
}

func TestScale_Map(t *testing.T) {
	s := NiceScale(0, 100, 5)
	if got := s.Map(50, 300, 100); got != 200 {
		t.Errorf("Map(50) = %v, want 200", got)
	}
	if got := s.Map(0, 300, 100); got != 300 {
		t.Errorf("Map(0) = %v, want 300", got)
	}
	if got := (Scale{}).Map(5, 10, 20); got != 10 {
		t.Errorf("zero-span Map = %v, want lo", got)
	}
}

func TestScale_Labels(t *testing.T) {
	s := NiceScale(0, 5000, 5)
	en := s.Labels("en")
	if got := en[len(en)-1]; got != "5,000" {
		t.Errorf("en label = %q, want %q", got, "5,000")
	}
	de := s.Labels("de")
	if got := de[len(de)-1]; got != "5.000" {
		t.Errorf("de label = %q, want %q", got, "5.000")
	}

	frac := NiceScale(0, 1, 5).Labels("en")
	if frac[1] != "0.2" {
		t.Errorf("fractional label = %q, want %q", frac[1], "0.2")
	}
}

func TestNiceScale_NonFinite(t *testing.T) {
	tests := []struct {
		name    string
		lo, hi  float64
		desired int
	}{
		{"NaN low", math.NaN(), 10, 5},
		{"NaN both", math.NaN(), math.NaN(), 5},
		{"positive infinity", 0, math.Inf(1), 5},
		{"negative infinity", math.Inf(-1), 10, 5},
		{"overflowing span", -1e308, 1e308, 5},
		{"max float", 0, math.MaxFloat64, 5},
		{"subnormal span", 0, 5e-324, 5},
		{"tiny span", 1e-320, 2e-320, 5},
		{"huge tick count", 0, 10, math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NiceScale(tt.lo, tt.hi, tt.desired)
			for _, v := range []float64{s.Min, s.Max, s.Step} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("NiceScale(%v, %v) = %+v, want finite bounds", tt.lo, tt.hi, s)
				}
			}
			if s.Step <= 0 || s.Min > 0 || s.Max <= s.Min {
				t.Errorf("NiceScale(%v, %v) = [%v, %v] step %v", tt.lo, tt.hi, s.Min, s.Max, s.Step)
			}
			if len(s.Ticks) < 2 || s.Ticks[0] != s.Min || s.Ticks[len(s.Ticks)-1] != s.Max {
				t.Errorf("ticks %v do not span [%v, %v]", s.Ticks, s.Min, s.Max)
			}
		})
	}
}
