// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface defines the presentation adapter contract of chart.
//
// A Surface is a retained scene of identified elements. The geometry engine
// draws every primitive once per render pass, then the animation scheduler
// updates path data and rectangle geometry in place, frame by frame. End
// presents the current scene: an SVG adapter writes a document, a raster
// adapter encodes an image, the headless adapter records the call.
//
// # Architecture
//
// Drawing happens in three phases:
//
//   - Begin resets the scene for a canvas size
//   - DrawPath / DrawRect add elements; UpdatePath / UpdateRectGeometry,
//     SetClip and ClearClip mutate them
//   - End presents the scene; further updates followed by End present the
//     next frame
//
// Adapters share the Scene type, which implements the element bookkeeping
// and leaves only presentation to the adapter.
//
// # Registry
//
// Adapters register themselves by name, database/sql style:
//
//	import _ "github.com/gogpu/chart/surface/svgsurface"
//
//	s, err := surface.NewSurfaceByName("svg", surface.Options{Width: 600, Height: 400, Output: w})
//
// NewSurface picks the highest-priority adapter instead. Adapters that
// present to a writer are only candidates when Options.Output is set, so
// without one the selection falls through to the headless recorder.
package surface
