// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster presents chart scenes as PNG images.
//
// Elements are flattened to polygons and filled with an anti-aliasing
// rasterizer from golang.org/x/image/vector. Strokes are expanded to
// polygons first. A scene clip is rasterized once per frame into a
// coverage mask that every element is multiplied by.
//
// Importing the package registers it as the "png" surface.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/internal/flatten"
	"github.com/gogpu/chart/surface"
)

func init() {
	surface.Register(surface.Adapter{
		Name:        "png",
		Priority:    10,
		NeedsOutput: true,
		New: func(opts surface.Options) (surface.Surface, error) {
			return New(opts.Output), nil
		},
	})
}

// Surface rasterizes scenes and encodes them as PNG.
//
// Surface is not safe for concurrent use.
type Surface struct {
	surface.Scene

	// Background fills the canvas before drawing; nil leaves it transparent.
	Background color.Color

	w      io.Writer
	img    *image.RGBA
	frames int
}

// New creates a raster surface. Every End encodes a PNG to w; a nil w only
// keeps the last image.
func New(w io.Writer) *Surface {
	return &Surface{w: w}
}

// Image returns the last rendered frame, or nil.
func (s *Surface) Image() *image.RGBA { return s.img }

// Frames returns how many frames were rendered.
func (s *Surface) Frames() int { return s.frames }

// End rasterizes the scene and encodes it.
func (s *Surface) End() error {
	if !s.Begun() {
		return surface.ErrNotBegun
	}
	s.img = s.render()
	s.frames++
	if s.w == nil {
		return nil
	}
	return png.Encode(s.w, s.img)
}

func (s *Surface) render() *image.RGBA {
	w, h := pixels(s.Width), pixels(s.Height)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if s.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(s.Background), image.Point{}, draw.Src)
	}

	var clip *image.Alpha
	if c := s.Clip(); c != nil {
		clip = coverage(w, h, polygons(flatten.Path(c, flatten.Tolerance)))
	}

	for _, e := range s.Elements() {
		lines := flatten.Path(e.Outline(), flatten.Tolerance)
		st := e.Style
		if c, ok := surface.ParseHex(st.Fill); ok {
			paint(dst, coverage(w, h, polygons(lines)), clip, c, st.Opacity)
		}
		if c, ok := surface.ParseHex(st.Stroke); ok && st.StrokeWidth > 0 {
			paint(dst, coverage(w, h, flatten.Stroke(lines, st.StrokeWidth)), clip, c, st.Opacity)
		}
	}
	return dst
}

func pixels(v float64) int {
	return max(1, int(math.Ceil(v)))
}

func polygons(lines []flatten.Polyline) [][]chart.Point {
	polys := make([][]chart.Point, 0, len(lines))
	for _, l := range lines {
		polys = append(polys, l.Points)
	}
	return polys
}

// coverage rasterizes closed polygons into an alpha mask.
func coverage(w, h int, polys [][]chart.Point) *image.Alpha {
	z := vector.NewRasterizer(w, h)
	for _, poly := range polys {
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X), float32(poly[0].Y))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X), float32(p.Y))
		}
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func paint(dst *image.RGBA, mask, clip *image.Alpha, c color.NRGBA, opacity float64) {
	if clip != nil {
		for i, a := range clip.Pix {
			mask.Pix[i] = uint8(uint16(mask.Pix[i]) * uint16(a) / 255)
		}
	}
	if opacity > 0 && opacity < 1 {
		c.A = uint8(math.Round(float64(c.A) * opacity))
	}
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
}

var _ surface.Surface = (*Surface)(nil)
