// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package svgsurface

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/surface"
)

func triangle() *chart.Path {
	p := chart.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(0, 10)
	p.Close()
	return p
}

// wellFormed decodes the whole document.
func wellFormed(t *testing.T, doc string) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(doc))
	for {
		_, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("malformed SVG: %v\n%s", err, doc)
		}
	}
}

func TestSurface_Document(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Begin(120.5, 80)
	s.DrawPath("line-0", triangle(), surface.Style{Stroke: "#4e79a7", StrokeWidth: 2})
	s.DrawRect("bar-0-0", chart.Rect{X: 1, Y: 2, Width: 3, Height: 4}, 0, surface.Style{Fill: "#f28e2b", Opacity: 0.5})
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	doc := buf.String()
	wellFormed(t, doc)
	for _, want := range []string{
		`width="121" height="80"`,
		`d="M0,0 L10,0 L0,10 Z"`,
		`id="line-0" fill="none" stroke="#4e79a7" stroke-width="2"`,
		`d="M1,2 L4,2 L4,6 L1,6 Z"`,
		`opacity="0.5"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
	if strings.Contains(doc, "clipPath") {
		t.Error("unclipped scene wrote a clipPath")
	}
	if s.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", s.Frames())
	}
}

func TestSurface_Clip(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Begin(50, 50)
	s.DrawPath("slice-0", triangle(), surface.Style{Fill: "#000"})
	s.SetClip(triangle())
	if err := s.End(); err != nil {
		t.Fatalf("End: %v", err)
	}

	doc := buf.String()
	wellFormed(t, doc)
	ref := `clip-path="url(#` + s.clipID + `)"`
	if !strings.Contains(doc, ref) || !strings.Contains(doc, `<clipPath id="`+s.clipID+`"`) {
		t.Errorf("clip not applied:\n%s", doc)
	}
}

func TestSurface_UniqueClipIDs(t *testing.T) {
	a, b := New(io.Discard), New(io.Discard)
	if a.clipID == b.clipID {
		t.Errorf("two surfaces share clip id %q", a.clipID)
	}
}

func TestSurface_EscapesAttributes(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	s.Begin(10, 10)
	s.DrawPath(`a"<b`, triangle(), surface.Style{Fill: "#fff"})
	s.End()
	wellFormed(t, buf.String())
	if !strings.Contains(buf.String(), `id="a&#34;&lt;b"`) {
		t.Errorf("id not escaped:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSurface_WriteError(t *testing.T) {
	s := New(failingWriter{})
	if err := s.Begin(10, 10); err != nil {
		t.Fatal(err)
	}
	if err := s.End(); err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("End() = %v, want the write error", err)
	}
	if s.Frames() != 0 {
		t.Errorf("Frames() = %d after a failed write", s.Frames())
	}
}

func TestSurface_EndBeforeBegin(t *testing.T) {
	if err := New(io.Discard).End(); !errors.Is(err, surface.ErrNotBegun) {
		t.Errorf("End() = %v, want ErrNotBegun", err)
	}
}

func TestSurface_Registered(t *testing.T) {
	if _, err := surface.NewSurfaceByName("svg", surface.Options{}); !errors.Is(err, surface.ErrNoOutput) {
		t.Errorf("nil output: %v, want ErrNoOutput", err)
	}
	s, err := surface.NewSurfaceByName("svg", surface.Options{Output: io.Discard})
	if err != nil {
		t.Fatalf("NewSurfaceByName: %v", err)
	}
	if _, ok := s.(*Surface); !ok {
		t.Errorf("surface = %T, want *Surface", s)
	}
}
