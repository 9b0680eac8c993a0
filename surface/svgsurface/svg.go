// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svgsurface presents chart scenes as SVG documents.
//
// Every End writes one complete document to the output. A scene clip
// becomes a clipPath definition applied to a group around all elements.
//
// Importing the package registers it as the "svg" surface.
package svgsurface

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo"
	"github.com/google/uuid"

	"github.com/gogpu/chart/surface"
)

func init() {
	surface.Register(surface.Adapter{
		Name:        "svg",
		Priority:    50,
		NeedsOutput: true,
		New: func(opts surface.Options) (surface.Surface, error) {
			return New(opts.Output), nil
		},
	})
}

// Surface writes SVG documents.
//
// Surface is not safe for concurrent use.
type Surface struct {
	surface.Scene

	w      io.Writer
	clipID string
	frames int
}

// New creates an SVG surface writing to w.
func New(w io.Writer) *Surface {
	return &Surface{w: w, clipID: "clip-" + uuid.NewString()}
}

// Frames returns how many documents were written.
func (s *Surface) Frames() int { return s.frames }

// End writes the scene as a complete SVG document.
func (s *Surface) End() error {
	if !s.Begun() {
		return surface.ErrNotBegun
	}
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(int(math.Ceil(s.Width)), int(math.Ceil(s.Height)))

	clip := s.Clip()
	if clip != nil {
		canvas.Def()
		canvas.ClipPath(attr("id", s.clipID))
		canvas.Path(clip.String())
		canvas.ClipEnd()
		canvas.DefEnd()
		canvas.Group(attr("clip-path", "url(#"+s.clipID+")"))
	}
	for _, e := range s.Elements() {
		canvas.Path(e.Outline().String(), styleAttrs(e)...)
	}
	if clip != nil {
		canvas.Gend()
	}
	canvas.End()
	if _, err := s.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("svg: write document: %w", err)
	}
	s.frames++
	return nil
}

func attr(name, value string) string {
	return name + `="` + html.EscapeString(value) + `"`
}

func styleAttrs(e *surface.Element) []string {
	st := e.Style
	attrs := []string{attr("id", e.ID), attr("fill", paint(st.Fill))}
	if st.Stroke != "" {
		attrs = append(attrs, attr("stroke", st.Stroke))
		if st.StrokeWidth > 0 {
			attrs = append(attrs, attr("stroke-width", formatFloat(st.StrokeWidth)))
		}
		if e.Kind == surface.ElementPath {
			attrs = append(attrs, attr("stroke-linejoin", "round"), attr("stroke-linecap", "round"))
		}
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		attrs = append(attrs, attr("opacity", formatFloat(st.Opacity)))
	}
	return attrs
}

func paint(c string) string {
	if c == "" {
		return "none"
	}
	return c
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64)
}

var _ surface.Surface = (*Surface)(nil)
