// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a surface that records every call instead of
// drawing. It backs tests and the frame dump of the chartgen command.
//
// Importing the package registers it as the "headless" surface.
package headless

import (
	"fmt"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/surface"
)

func init() {
	surface.Register(surface.Adapter{
		Name:     "headless",
		Priority: 1,
		New: func(surface.Options) (surface.Surface, error) {
			return New(), nil
		},
	})
}

// Frame is a snapshot of the scene taken at End.
type Frame struct {
	Width, Height float64
	Elements      []surface.Element
	Clip          *chart.Path
}

// Element returns the element with the given id.
func (f *Frame) Element(id string) (surface.Element, bool) {
	for _, e := range f.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return surface.Element{}, false
}

// Recorder is a surface that records commands and snapshots frames.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	surface.Scene

	commands []Command
	frames   []Frame
}

// New creates an empty Recorder.
func New() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// Begin implements surface.Surface.
func (r *Recorder) Begin(width, height float64) error {
	r.record(BeginCommand{Width: width, Height: height})
	return r.Scene.Begin(width, height)
}

// DrawPath implements surface.Surface.
func (r *Recorder) DrawPath(id string, p *chart.Path, style surface.Style) error {
	r.record(DrawPathCommand{ID: id, Path: p.Clone(), Style: style})
	return r.Scene.DrawPath(id, p, style)
}

// UpdatePath implements surface.Surface.
func (r *Recorder) UpdatePath(id string, p *chart.Path) error {
	r.record(UpdatePathCommand{ID: id, Path: p.Clone()})
	return r.Scene.UpdatePath(id, p)
}

// DrawRect implements surface.Surface.
func (r *Recorder) DrawRect(id string, rect chart.Rect, radius float64, style surface.Style) error {
	r.record(DrawRectCommand{ID: id, Rect: rect, Radius: radius, Style: style})
	return r.Scene.DrawRect(id, rect, radius, style)
}

// UpdateRectGeometry implements surface.Surface.
func (r *Recorder) UpdateRectGeometry(id string, rect chart.Rect) error {
	r.record(UpdateRectCommand{ID: id, Rect: rect})
	return r.Scene.UpdateRectGeometry(id, rect)
}

// SetClip implements surface.Surface.
func (r *Recorder) SetClip(p *chart.Path) error {
	r.record(SetClipCommand{Path: p.Clone()})
	return r.Scene.SetClip(p)
}

// ClearClip implements surface.Surface.
func (r *Recorder) ClearClip() error {
	r.record(ClearClipCommand{})
	return r.Scene.ClearClip()
}

// End snapshots the scene as a frame.
func (r *Recorder) End() error {
	r.record(EndCommand{})
	if !r.Begun() {
		return surface.ErrNotBegun
	}
	f := Frame{Width: r.Width, Height: r.Height, Clip: r.Clip().Clone()}
	for _, e := range r.Elements() {
		cp := *e
		cp.Path = e.Path.Clone()
		f.Elements = append(f.Elements, cp)
	}
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// Commands returns every recorded command in call order.
func (r *Recorder) Commands() []Command { return r.commands }

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Frames returns the presented frames.
func (r *Recorder) Frames() []Frame { return r.frames }

// LastFrame returns the most recent frame, or nil.
func (r *Recorder) LastFrame() *Frame {
	if len(r.frames) == 0 {
		return nil
	}
	return &r.frames[len(r.frames)-1]
}

// Reset drops recorded commands and frames.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.frames = nil
}

// Playback replays the recorded commands to dst.
func (r *Recorder) Playback(dst surface.Surface) error {
	for i, c := range r.commands {
		var err error
		switch c := c.(type) {
		case BeginCommand:
			err = dst.Begin(c.Width, c.Height)
		case DrawPathCommand:
			err = dst.DrawPath(c.ID, c.Path, c.Style)
		case UpdatePathCommand:
			err = dst.UpdatePath(c.ID, c.Path)
		case DrawRectCommand:
			err = dst.DrawRect(c.ID, c.Rect, c.Radius, c.Style)
		case UpdateRectCommand:
			err = dst.UpdateRectGeometry(c.ID, c.Rect)
		case SetClipCommand:
			err = dst.SetClip(c.Path)
		case ClearClipCommand:
			err = dst.ClearClip()
		case EndCommand:
			err = dst.End()
		}
		if err != nil {
			return fmt.Errorf("headless: playback command %d (%s): %w", i, c.Type(), err)
		}
	}
	return nil
}
