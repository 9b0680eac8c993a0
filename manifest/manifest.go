// Package manifest reads YAML chart manifests: a chart configuration, a
// data source, and where to write the result.
//
//	chart:
//	  type: donut
//	  polarGap: 4
//	  polarRadius: 6
//	  animated: true
//	  duration: 800ms
//	data:
//	  file: sales.csv
//	output:
//	  surface: svg
//	  path: sales.svg
//
// Exactly one of data.url, data.file, data.inline or data.spec must be set.
// Relative file paths resolve against the manifest's directory, and
// ${VAR} references are expanded from the environment.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/chart"
	"github.com/gogpu/chart/ingest"
)

// Errors returned while loading a manifest.
var (
	ErrNotFound      = errors.New("manifest: not found")
	ErrInvalidFormat = errors.New("manifest: invalid format")
	ErrNoSource      = errors.New("manifest: no data source")
	ErrManySources   = errors.New("manifest: more than one data source")
)

// Manifest describes one chart to render.
type Manifest struct {
	Chart  chart.Config `yaml:"chart"`
	Data   Data         `yaml:"data"`
	Output Output       `yaml:"output"`

	// dir resolves relative paths; empty means the working directory.
	dir string
}

// Data selects where chart data comes from.
type Data struct {
	URL    string        `yaml:"url"`
	File   string        `yaml:"file"`
	Inline string        `yaml:"inline"`
	Spec   *chart.Spec   `yaml:"spec"`
	Format ingest.Format `yaml:"format"`
}

// Output selects the surface and destination.
type Output struct {
	Surface string `yaml:"surface"`
	Path    string `yaml:"path"`
}

// LoadFile reads the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, err
	}
	m.dir = filepath.Dir(path)
	return m, nil
}

// Load reads a manifest from r. Unset chart options keep their defaults.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: read: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	m := &Manifest{Chart: chart.DefaultConfig()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the chart type and the data source.
func (m *Manifest) Validate() error {
	t, err := chart.ParseType(string(m.Chart.Type))
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	m.Chart.Type = t

	n := 0
	for _, set := range []bool{m.Data.URL != "", m.Data.File != "", m.Data.Inline != "", m.Data.Spec != nil} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return ErrNoSource
	case n > 1:
		return ErrManySources
	}
	return nil
}

// Source returns the ingest source of the manifest's data.
func (m *Manifest) Source() ingest.Source {
	d := m.Data
	switch {
	case d.URL != "":
		return ingest.URL{URL: d.URL, Format: d.Format}
	case d.File != "":
		return ingest.File{Path: m.resolve(d.File), Format: d.Format}
	case d.Inline != "":
		return ingest.Inline{Data: []byte(d.Inline)}
	default:
		return ingest.Literal{Spec: d.Spec}
	}
}

// OutputPath returns the output path resolved like data files, or "" for
// standard output.
func (m *Manifest) OutputPath() string {
	if m.Output.Path == "" || m.Output.Path == "-" {
		return ""
	}
	return m.resolve(m.Output.Path)
}

func (m *Manifest) resolve(path string) string {
	if filepath.IsAbs(path) || m.dir == "" {
		return path
	}
	return filepath.Join(m.dir, path)
}
