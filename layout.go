package chart

import "math"

// Layout padding, in canvas units.
const (
	padTop        = 20.0
	padRight      = 20.0
	padBottom     = 40.0
	padLeft       = 50.0
	padLeftBar    = 100.0 // horizontal bars print category names on the left
	axisTitleSize = 20.0
	polarMargin   = 20.0
)

// Rect is an axis-aligned rectangle. Width and Height are never negative.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Lerp interpolates each field between r (t=0) and q (t=1).
func (r Rect) Lerp(q Rect, t float64) Rect {
	return Rect{
		X:      r.X + (q.X-r.X)*t,
		Y:      r.Y + (q.Y-r.Y)*t,
		Width:  r.Width + (q.Width-r.Width)*t,
		Height: r.Height + (q.Height-r.Height)*t,
	}
}

// PolarArea is the drawing region of pie, donut and radial charts.
type PolarArea struct {
	Center Point
	Outer  float64
	Inner  float64
}

// Layout is the output of the layout engine for one canvas size.
type Layout struct {
	Width, Height float64
	Area          Rect
	Polar         PolarArea
}

// ComputeLayout derives the drawing region from the canvas size and config.
// It is a pure function.
func ComputeLayout(width, height float64, cfg Config) Layout {
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	l := Layout{Width: width, Height: height}

	if cfg.Type.Polar() {
		outer := math.Max(math.Min(width/2, height/2)-polarMargin, 0)
		l.Polar = PolarArea{Center: Pt(width/2, height/2), Outer: outer}
		switch cfg.Type {
		case TypeDonut:
			l.Polar.Inner = math.Max(outer-cfg.RingWidth, 0)
		case TypeRadial:
			l.Polar.Inner = outer * cfg.RadialInner
		}
		return l
	}

	top, right, bottom, left := padTop, padRight, padBottom, padLeft
	if cfg.Type.Horizontal() {
		left = padLeftBar
	}
	if cfg.XAxisTitle != "" {
		bottom += axisTitleSize
	}
	if cfg.YAxisTitle != "" {
		left += axisTitleSize
	}
	l.Area = Rect{
		X:      left,
		Y:      top,
		Width:  math.Max(width-left-right, 0),
		Height: math.Max(height-top-bottom, 0),
	}
	return l
}
