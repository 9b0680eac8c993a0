// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"io"

	"github.com/gogpu/chart"
)

// Errors returned by surfaces.
var (
	// ErrNotBegun is returned when drawing before Begin.
	ErrNotBegun = errors.New("surface: Begin not called")

	// ErrUnknownElement is returned when updating an element that was never drawn.
	ErrUnknownElement = errors.New("surface: unknown element")
)

// Style describes how an element is painted. Colors are CSS hex strings
// ("#rgb", "#rrggbb", "#rrggbbaa"); an empty color paints nothing.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	// Opacity in [0, 1]; 0 means fully opaque.
	Opacity float64
}

// Surface is a retained drawing target for chart primitives.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Begin clears the scene and sizes the canvas.
	Begin(width, height float64) error

	// DrawPath adds a path element. Drawing an existing id replaces it.
	DrawPath(id string, p *chart.Path, style Style) error

	// UpdatePath replaces the path data of an existing element.
	UpdatePath(id string, p *chart.Path) error

	// DrawRect adds a rectangle element with rounded corners of radius.
	DrawRect(id string, r chart.Rect, radius float64, style Style) error

	// UpdateRectGeometry moves and resizes an existing rectangle.
	UpdateRectGeometry(id string, r chart.Rect) error

	// SetClip restricts every element to the inside of p.
	SetClip(p *chart.Path) error

	// ClearClip removes the clip.
	ClearClip() error

	// End presents the current scene.
	End() error
}

// Options configure a surface created through the registry.
type Options struct {
	Width  int
	Height int

	// Output receives presented frames. Adapters that present nothing
	// ignore it.
	Output io.Writer
}
