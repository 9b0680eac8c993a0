// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"

	"github.com/gogpu/chart"
)

// ElementKind distinguishes path and rectangle elements.
type ElementKind uint8

const (
	ElementPath ElementKind = iota
	ElementRect
)

// String returns the element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElementPath:
		return "path"
	case ElementRect:
		return "rect"
	}
	return "unknown"
}

// Element is one retained drawing.
type Element struct {
	ID     string
	Kind   ElementKind
	Path   *chart.Path // ElementPath only
	Rect   chart.Rect  // ElementRect only
	Radius float64     // ElementRect only
	Style  Style
}

// Outline returns the element as a path.
func (e *Element) Outline() *chart.Path {
	if e.Kind == ElementRect {
		return RectPath(e.Rect, e.Radius)
	}
	return e.Path
}

// Scene is the element bookkeeping shared by adapters. Elements keep
// their draw order; redrawing an id replaces it in place.
type Scene struct {
	Width, Height float64

	begun    bool
	elements []*Element
	index    map[string]*Element
	clip     *chart.Path
}

// Begin resets the scene.
func (s *Scene) Begin(width, height float64) error {
	s.Width, s.Height = width, height
	s.begun = true
	s.elements = s.elements[:0]
	s.index = make(map[string]*Element)
	s.clip = nil
	return nil
}

// Begun reports whether Begin was called.
func (s *Scene) Begun() bool { return s.begun }

func (s *Scene) add(e *Element) error {
	if !s.begun {
		return ErrNotBegun
	}
	if old, ok := s.index[e.ID]; ok {
		*old = *e
		return nil
	}
	s.elements = append(s.elements, e)
	s.index[e.ID] = e
	return nil
}

// DrawPath adds a path element.
func (s *Scene) DrawPath(id string, p *chart.Path, style Style) error {
	return s.add(&Element{ID: id, Kind: ElementPath, Path: p.Clone(), Style: style})
}

// DrawRect adds a rectangle element.
func (s *Scene) DrawRect(id string, r chart.Rect, radius float64, style Style) error {
	return s.add(&Element{ID: id, Kind: ElementRect, Rect: r, Radius: radius, Style: style})
}

// UpdatePath replaces the path of element id.
func (s *Scene) UpdatePath(id string, p *chart.Path) error {
	e, err := s.lookup(id, ElementPath)
	if err != nil {
		return err
	}
	e.Path = p.Clone()
	return nil
}

// UpdateRectGeometry replaces the rectangle of element id.
func (s *Scene) UpdateRectGeometry(id string, r chart.Rect) error {
	e, err := s.lookup(id, ElementRect)
	if err != nil {
		return err
	}
	e.Rect = r
	return nil
}

func (s *Scene) lookup(id string, kind ElementKind) (*Element, error) {
	if !s.begun {
		return nil, ErrNotBegun
	}
	e, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, id)
	}
	if e.Kind != kind {
		return nil, fmt.Errorf("%w: %q is a %s", ErrUnknownElement, id, e.Kind)
	}
	return e, nil
}

// SetClip sets the scene clip.
func (s *Scene) SetClip(p *chart.Path) error {
	if !s.begun {
		return ErrNotBegun
	}
	s.clip = p.Clone()
	return nil
}

// ClearClip removes the scene clip.
func (s *Scene) ClearClip() error {
	if !s.begun {
		return ErrNotBegun
	}
	s.clip = nil
	return nil
}

// Clip returns the current clip, or nil.
func (s *Scene) Clip() *chart.Path { return s.clip }

// Elements returns the elements in draw order.
func (s *Scene) Elements() []*Element { return s.elements }

// Element returns the element with the given id.
func (s *Scene) Element(id string) (*Element, bool) {
	e, ok := s.index[id]
	return e, ok
}
