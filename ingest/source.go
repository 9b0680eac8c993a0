package ingest

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gogpu/chart"
)

// maxDocumentSize bounds what a source will read.
const maxDocumentSize = 32 << 20

// Format is the encoding of a data source.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat guesses the format from a file name or URL path, then from
// a MIME content type. It returns "" when neither is conclusive.
func DetectFormat(name, contentType string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return FormatJSON
	case ".csv":
		return FormatCSV
	case ".tsv", ".tab":
		return FormatTSV
	case ".xlsx":
		return FormatXLSX
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	switch {
	case mt == "application/json" || strings.HasSuffix(mt, "+json"):
		return FormatJSON
	case mt == "text/csv":
		return FormatCSV
	case mt == "text/tab-separated-values":
		return FormatTSV
	case mt == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return FormatXLSX
	}
	return ""
}

// Parse decodes r in the given format.
func Parse(r io.Reader, f Format) (*chart.Spec, error) {
	r = io.LimitReader(r, maxDocumentSize)
	switch f {
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return ParseJSON(data)
	case FormatCSV:
		return ParseCSV(r)
	case FormatTSV:
		return ParseDelimited(r, '\t')
	case FormatXLSX:
		return ParseXLSX(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Source produces a Spec. Key identifies the source for request joining.
type Source interface {
	Key() string
	Load(ctx context.Context) (*chart.Spec, error)
}

// Inline is a JSON literal embedded in the page or manifest.
type Inline struct {
	Data []byte
}

func (s Inline) Key() string {
	h := fnv.New64a()
	h.Write(s.Data)
	return fmt.Sprintf("inline:%x", h.Sum64())
}

func (s Inline) Load(context.Context) (*chart.Spec, error) {
	return ParseJSON(s.Data)
}

// Literal wraps an already built Spec. Non-finite values load as 0.
type Literal struct {
	Spec *chart.Spec
}

func (s Literal) Key() string { return fmt.Sprintf("literal:%p", s.Spec) }

func (s Literal) Load(context.Context) (*chart.Spec, error) {
	if err := s.Spec.Validate(); err != nil {
		return nil, err
	}
	return s.Spec.Finite(), nil
}

// URL fetches a document over HTTP. An empty Format is detected from the
// URL path and the response content type.
type URL struct {
	URL    string
	Format Format
	Client *http.Client
}

func (s URL) Key() string { return "url:" + s.URL }

func (s URL) Load(ctx context.Context) (*chart.Spec, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrFetch, s.URL, resp.Status)
	}

	f := s.Format
	if f == "" {
		f = DetectFormat(req.URL.Path, resp.Header.Get("Content-Type"))
	}
	if f == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, s.URL)
	}
	return Parse(resp.Body, f)
}

// File reads a local file. An empty Format is detected from the extension.
type File struct {
	Path   string
	Format Format
}

func (s File) Key() string { return "file:" + filepath.Clean(s.Path) }

func (s File) Load(context.Context) (*chart.Spec, error) {
	f := s.Format
	if f == "" {
		f = DetectFormat(s.Path, "")
	}
	if f == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, s.Path)
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	return Parse(bytes.NewReader(data), f)
}
