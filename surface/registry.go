// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Errors returned by the registry.
var (
	// ErrNoSurface is returned by NewSurface when no registered adapter can
	// serve the options.
	ErrNoSurface = errors.New("surface: no adapter can serve the options")

	// ErrNoOutput is returned when an adapter that presents frames to
	// Options.Output is requested without one.
	ErrNoOutput = errors.New("surface: adapter needs an output writer")
)

// UnknownSurfaceError reports a name no adapter registered.
type UnknownSurfaceError struct {
	Name string
}

func (e *UnknownSurfaceError) Error() string {
	return "surface: unknown adapter " + e.Name
}

// Adapter describes a registered presentation adapter.
type Adapter struct {
	// Name selects the adapter, e.g. "svg".
	Name string

	// Priority orders automatic selection, higher first. Built-in
	// adapters use 50 (svg), 10 (png) and 1 (headless).
	Priority int

	// NeedsOutput marks adapters that present frames to Options.Output.
	// NewSurface skips them when the options carry no writer.
	NeedsOutput bool

	// New creates a surface.
	New func(opts Options) (Surface, error)
}

var adapters = &registry{}

// Register makes an adapter available by name. Adapters call it from an
// init function, so importing an adapter package for its side effect is
// enough:
//
//	import _ "github.com/gogpu/chart/surface/svgsurface"
//
// Register panics if the name is empty, New is nil, or the name is taken.
func Register(a Adapter) {
	adapters.register(a)
}

// Adapters returns the registered adapters ordered by priority, then name.
func Adapters() []Adapter {
	return adapters.list()
}

// NewSurface creates a surface with the highest-priority adapter that can
// serve opts. Adapters whose factory fails are skipped; if every candidate
// fails, the last error is returned.
func NewSurface(opts Options) (Surface, error) {
	return adapters.newSurface(opts)
}

// NewSurfaceByName creates a surface with the named adapter.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return adapters.newSurfaceByName(name, opts)
}

type registry struct {
	mu     sync.RWMutex
	byName map[string]Adapter
}

func (r *registry) register(a Adapter) {
	if a.Name == "" || a.New == nil {
		panic("surface: Register needs a name and a factory")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.byName[a.Name]; dup {
		panic("surface: Register called twice for adapter " + a.Name)
	}
	if r.byName == nil {
		r.byName = make(map[string]Adapter)
	}
	r.byName[a.Name] = a
}

func (r *registry) list() []Adapter {
	r.mu.RLock()
	out := make([]Adapter, 0, len(r.byName))
	for _, a := range r.byName {
		out = append(out, a)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (r *registry) newSurface(opts Options) (Surface, error) {
	lastErr := ErrNoSurface
	for _, a := range r.list() {
		if a.NeedsOutput && opts.Output == nil {
			continue
		}
		s, err := a.New(opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (r *registry) newSurfaceByName(name string, opts Options) (Surface, error) {
	r.mu.RLock()
	a, ok := r.byName[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownSurfaceError{Name: name}
	}
	if a.NeedsOutput && opts.Output == nil {
		return nil, ErrNoOutput
	}
	return a.New(opts)
}
