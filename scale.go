package chart

import (
	"log/slog"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultTicks is the desired tick count when none is configured.
const DefaultTicks = 5

// Scale is a "nice" linear tick scale.
//
// Ticks ascend from Min to Max in increments of Step; Min and Max are
// multiples of Step and Min is never positive.
type Scale struct {
	Min   float64
	Max   float64
	Step  float64
	Ticks []float64
}

// Bounds on the inputs NiceScale accepts. Values beyond valueLimit are
// clamped so that the span and the step stay finite.
const (
	valueLimit = 1e306
	maxTicks   = 1000
)

// NiceScale computes a tick scale bracketing [lo, hi] with roughly desired
// ticks. Step is always 1, 2, 5 or 10 times a power of ten.
//
// Non-finite bounds count as 0. A range too narrow to subdivide in float64
// yields the scale of [0, 1].
func NiceScale(lo, hi float64, desired int) Scale {
	desired = min(desired, maxTicks)
	if desired <= 0 {
		desired = DefaultTicks
	}
	lo = clampValue(lo)
	hi = clampValue(hi)
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		hi = lo + 1
	}
	if s, ok := niceScale(min(lo, 0), hi, desired); ok {
		return s
	}
	Logger().Warn("chart: value range cannot be subdivided, using unit scale",
		slog.Float64("lo", lo), slog.Float64("hi", hi))
	s, _ := niceScale(0, 1, desired)
	return s
}

func niceScale(lo, hi float64, desired int) (Scale, bool) {
	step := niceStep((hi - lo) / float64(desired))
	if !finite(step) || step <= 0 {
		return Scale{}, false
	}
	niceMin := math.Floor(lo/step) * step
	niceMax := math.Ceil(hi/step) * step
	niceMin = min(niceMin, 0)

	decimals := stepDecimals(step)
	niceMin = roundTo(niceMin, decimals)
	niceMax = roundTo(niceMax, decimals)
	if !finite(niceMin) || !finite(niceMax) {
		return Scale{}, false
	}

	count := math.Round((niceMax - niceMin) / step)
	if !(count >= 1 && count <= 2*maxTicks) {
		return Scale{}, false
	}
	n := int(count)
	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, roundTo(niceMin+float64(i)*step, decimals))
	}
	return Scale{Min: niceMin, Max: niceMax, Step: step, Ticks: ticks}, true
}

func clampValue(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return math.Max(-valueLimit, math.Min(v, valueLimit))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// niceStep rounds a raw step up to 1, 2, 5 or 10 times a power of ten.
func niceStep(rough float64) float64 {
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	residual := rough / magnitude
	var f float64
	switch {
	case residual <= 1.5:
		f = 1
	case residual <= 3:
		f = 2
	case residual <= 7:
		f = 5
	default:
		f = 10
	}
	return f * magnitude
}

// stepDecimals returns the fractional digits needed to print multiples of step.
func stepDecimals(step float64) int {
	d := -int(math.Floor(math.Log10(step)))
	return max(d, 0)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	r := math.Round(v*p) / p
	if r == 0 {
		return 0
	}
	return r
}

// Span returns Max - Min.
func (s Scale) Span() float64 {
	return s.Max - s.Min
}

// Baseline returns the value bars grow from: zero clamped into the scale.
func (s Scale) Baseline() float64 {
	return math.Min(math.Max(0, s.Min), s.Max)
}

// Map projects v linearly so that Min lands on lo and Max on hi.
// Pass lo > hi for a vertical axis with y growing downward.
func (s Scale) Map(v, lo, hi float64) float64 {
	span := s.Span()
	if span == 0 {
		return lo
	}
	return lo + (v-s.Min)/span*(hi-lo)
}

// Labels formats the ticks for the given BCP 47 locale, e.g. "1,000" for
// "en" and "1.000" for "de". Unknown locales fall back to English.
func (s Scale) Labels(locale string) []string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	decimals := 0
	if s.Step > 0 {
		decimals = stepDecimals(s.Step)
	}
	labels := make([]string, len(s.Ticks))
	for i, t := range s.Ticks {
		labels[i] = p.Sprint(number.Decimal(t,
			number.MaxFractionDigits(decimals),
			number.MinFractionDigits(decimals)))
	}
	return labels
}
