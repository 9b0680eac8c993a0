// Package chart is the geometry engine of a vector chart renderer.
//
// # Overview
//
// chart turns category/series data into exact vector primitives for eight
// chart types: line, column, stacked column, bar, stacked bar, pie, donut
// and radial. Drawing happens elsewhere: a presentation surface (see the
// surface package) consumes the primitives, and the anim package drives
// them through an entrance animation.
//
// # Quick Start
//
//	spec := &chart.Spec{
//	    Categories: []string{"Jan", "Feb", "Mar"},
//	    Datasets:   []chart.Dataset{{Name: "Sales", Values: []float64{10, 20, 30}}},
//	}
//	g, err := chart.Build(spec, chart.NewConfig(chart.WithType(chart.TypeColumn)))
//	if err != nil {
//	    // unknown type or inconsistent spec
//	}
//	for _, p := range g.Primitives {
//	    bar := p.(*chart.RectBar)
//	    fmt.Println(bar.ID, bar.Rect)
//	}
//
// # Pipeline
//
// Build runs four pure stages:
//   - ScaleFor / NiceScale: "nice" ticks whose step is 1, 2, 5 or 10 times a
//     power of ten, always including zero
//   - ComputeLayout: the plot rectangle, or center and radii for polar types
//   - a per-type builder (BuildLine, BuildBars, BuildStacked, BuildSlices,
//     BuildRadial) producing LinePath, RectBar, SlicePath or RadialSegment
//   - SliceShape: sharp, gapped, rounded and gapped-rounded slice outlines
//
// # Coordinate System
//
// Canvas coordinates: origin at top-left, X grows right, Y grows down.
// Angles are radians; 0 points right and angles grow clockwise on screen.
// Polar charts start at 12 o'clock (-pi/2).
package chart
