// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"github.com/gogpu/chart"
)

// RectPath returns r as a closed path, with circular corners of radius
// clamped to half the short side.
func RectPath(r chart.Rect, radius float64) *chart.Path {
	p := chart.NewPath()
	if r.Width <= 0 || r.Height <= 0 {
		return p
	}
	rad := math.Max(0, math.Min(radius, math.Min(r.Width, r.Height)/2))
	x0, y0, x1, y1 := r.X, r.Y, r.Right(), r.Bottom()
	if rad == 0 {
		p.MoveTo(x0, y0)
		p.LineTo(x1, y0)
		p.LineTo(x1, y1)
		p.LineTo(x0, y1)
		p.Close()
		return p
	}
	p.MoveTo(x0+rad, y0)
	p.LineTo(x1-rad, y0)
	p.ArcTo(rad, false, true, x1, y0+rad)
	p.LineTo(x1, y1-rad)
	p.ArcTo(rad, false, true, x1-rad, y1)
	p.LineTo(x0+rad, y1)
	p.ArcTo(rad, false, true, x0, y1-rad)
	p.LineTo(x0, y0+rad)
	p.ArcTo(rad, false, true, x0+rad, y0)
	p.Close()
	return p
}
