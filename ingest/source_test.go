package ingest

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/chart"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name, contentType string
		want              Format
	}{
		{"/data/sales.CSV", "", FormatCSV},
		{"/data/sales.json", "text/plain", FormatJSON},
		{"/data", "application/json; charset=utf-8", FormatJSON},
		{"/data", "application/vnd.api+json", FormatJSON},
		{"/data", "text/csv", FormatCSV},
		{"/data.tsv", "", FormatTSV},
		{"/book.xlsx", "", FormatXLSX},
		{"/data", "text/html", ""},
		{"/data", "", ""},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.name, tt.contentType); got != tt.want {
			t.Errorf("DetectFormat(%q, %q) = %q, want %q", tt.name, tt.contentType, got, tt.want)
		}
	}
}

func TestURL_Load(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/sales.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Label,Value,Link\nA,1,https://x\nB,2,\n"))
	})
	mux.HandleFunc("/api/sales", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"categories":["a"],"datasets":[{"name":"v","values":[4]}]}`))
	})
	mux.HandleFunc("/short.csv", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Label,Value\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	spec, err := URL{URL: srv.URL + "/sales.csv"}.Load(context.Background())
	if err != nil {
		t.Fatalf("csv Load() error = %v", err)
	}
	if spec.Link(1) != nil || spec.Link(0).URL != "https://x" {
		t.Errorf("links = %+v", spec.Links)
	}

	spec, err = URL{URL: srv.URL + "/api/sales"}.Load(context.Background())
	if err != nil {
		t.Fatalf("json Load() error = %v", err)
	}
	if spec.Datasets[0].Values[0] != 4 {
		t.Errorf("values = %v", spec.Datasets[0].Values)
	}

	if _, err := (URL{URL: srv.URL + "/short.csv"}).Load(context.Background()); !errors.Is(err, ErrTooFewRows) {
		t.Errorf("short csv err = %v, want ErrTooFewRows", err)
	}
	if _, err := (URL{URL: srv.URL + "/missing.csv"}).Load(context.Background()); !errors.Is(err, ErrFetch) {
		t.Errorf("404 err = %v, want ErrFetch", err)
	}
}

func TestFile_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.tsv")
	if err := os.WriteFile(path, []byte("k\tv\nx\t9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	spec, err := File{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if spec.Categories[0] != "x" || spec.Datasets[0].Values[0] != 9 {
		t.Errorf("spec = %+v", spec)
	}

	if _, err := (File{Path: filepath.Join(dir, "data.bin")}).Load(context.Background()); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("err = %v, want ErrUnknownFormat", err)
	}
}

func TestInline_Key(t *testing.T) {
	a := Inline{Data: []byte(`{"categories":["a"]}`)}
	b := Inline{Data: []byte(`{"categories":["b"]}`)}
	if a.Key() == b.Key() {
		t.Error("different literals share a key")
	}
	if a.Key() != (Inline{Data: []byte(`{"categories":["a"]}`)}).Key() {
		t.Error("equal literals have different keys")
	}
}

func TestLiteral_NonFiniteValues(t *testing.T) {
	spec := &chart.Spec{
		Categories: []string{"a", "b", "c"},
		Datasets:   []chart.Dataset{{Name: "v", Values: []float64{math.NaN(), 4, math.Inf(1)}}},
	}
	got, err := Literal{Spec: spec}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff([]float64{0, 4, 0}, got.Datasets[0].Values); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}

	if _, err := (Literal{Spec: &chart.Spec{
		Categories: []string{"a"},
		Datasets:   []chart.Dataset{{Name: "v"}},
	}}).Load(context.Background()); !errors.Is(err, chart.ErrInvalidSpec) {
		t.Errorf("short dataset: err = %v, want ErrInvalidSpec", err)
	}
}
