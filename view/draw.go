package view

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/anim"
	"github.com/gogpu/chart/surface"
)

func style(p chart.Primitive) surface.Style {
	if p.Kind() == chart.KindLine {
		return surface.Style{Stroke: p.Base().Color, StrokeWidth: lineWidth}
	}
	return surface.Style{Fill: p.Base().Color}
}

// drawStart draws every primitive at its start shape. Polar reveals start
// fully clipped.
func (c *Chart) drawStart() error {
	return c.drawAll(0)
}

// drawFinal draws every primitive at its target shape, unclipped.
func (c *Chart) drawFinal() error {
	return c.drawAll(1)
}

func (c *Chart) drawAll(t float64) error {
	g := c.geom
	if err := c.surf.Begin(c.cfg.Width, c.cfg.Height); err != nil {
		return err
	}
	for _, p := range g.Primitives {
		if err := c.draw(p, t); err != nil {
			return err
		}
	}
	if t < 1 && g.Type.Polar() && g.Type != chart.TypeRadial {
		if err := c.sweep(0); err != nil {
			return err
		}
	}
	return c.surf.End()
}

func (c *Chart) draw(p chart.Primitive, t float64) error {
	id, st := p.Base().ID, style(p)
	switch p := p.(type) {
	case *chart.LinePath:
		return c.surf.DrawPath(id, p.At(t), st)
	case *chart.RectBar:
		return c.surf.DrawRect(id, p.At(t), p.Radius, st)
	case *chart.SlicePath:
		return c.surf.DrawPath(id, p.Path, st)
	case *chart.RadialSegment:
		return c.surf.DrawPath(id, p.At(t), st)
	}
	return nil
}

// sweep clips the scene to the polar reveal wedge at angle.
func (c *Chart) sweep(angle float64) error {
	pa := c.geom.Layout.Polar
	clip := chart.SweepClip(pa.Center, pa.Outer+sweepMargin, angle)
	if clip == nil {
		return c.surf.ClearClip()
	}
	return c.surf.SetClip(clip)
}

// apply updates the drawn elements to one animation frame.
func (c *Chart) apply(frames []anim.Frame) error {
	if len(frames) == 0 {
		return nil
	}
	byID := make(map[string]chart.Primitive, len(c.geom.Primitives))
	for _, p := range c.geom.Primitives {
		byID[p.Base().ID] = p
	}
	for _, f := range frames {
		if f.Ref == anim.SweepRef {
			if err := c.sweep(f.Value); err != nil {
				return err
			}
			continue
		}
		var err error
		switch p := byID[f.Ref].(type) {
		case *chart.LinePath:
			err = c.surf.UpdatePath(p.ID, p.At(f.Value))
		case *chart.RectBar:
			err = c.surf.UpdateRectGeometry(p.ID, p.At(f.Value))
		case *chart.RadialSegment:
			err = c.surf.UpdatePath(p.ID, p.At(f.Value))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
