package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gogpu/chart"
)

// document is the JSON shape of a chart literal.
type document struct {
	Categories []tolerantString `json:"categories"`
	Datasets   []struct {
		Name   string          `json:"name"`
		Label  string          `json:"label"`
		Values []tolerantFloat `json:"values"`
		Data   []tolerantFloat `json:"data"`
	} `json:"datasets"`
	Links []jsonLink `json:"links"`
}

// ParseJSON decodes a chart literal. Two shapes are accepted: an object
// with categories, datasets and optional links, or an array of rows read
// like delimited text. Values may be numbers, numeric strings or null.
func ParseJSON(data []byte) (*chart.Spec, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformed)
	}
	if data[0] == '[' {
		var rows [][]tolerantString
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return FromRows(stringRows(rows))
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrMalformed)
	}

	n := len(doc.Categories)
	spec := &chart.Spec{Categories: make([]string, n)}
	for i, c := range doc.Categories {
		spec.Categories[i] = string(c)
	}
	for _, ds := range doc.Datasets {
		name, src := ds.Name, ds.Values
		if name == "" {
			name = ds.Label
		}
		if src == nil {
			src = ds.Data
		}
		values := make([]float64, n)
		for i := 0; i < n && i < len(src); i++ {
			values[i] = float64(src[i])
		}
		spec.Datasets = append(spec.Datasets, chart.Dataset{Name: name, Values: values})
	}
	if len(doc.Links) > 0 {
		spec.Links = make([]*chart.Link, n)
		for i := 0; i < n && i < len(doc.Links); i++ {
			spec.Links[i] = doc.Links[i].link
		}
	}
	return spec, nil
}

func stringRows(rows [][]tolerantString) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, c := range row {
			out[i][j] = string(c)
		}
	}
	return out
}

// tolerantFloat decodes numbers and numeric strings; anything else is 0.
type tolerantFloat float64

func (f *tolerantFloat) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case float64:
		*f = tolerantFloat(x)
	case string:
		*f = tolerantFloat(parseNumber(x))
	default:
		*f = 0
	}
	return nil
}

// tolerantString decodes strings and prints numbers; null is empty.
type tolerantString string

func (s *tolerantString) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case string:
		*s = tolerantString(x)
	case float64:
		*s = tolerantString(strconv.FormatFloat(x, 'f', -1, 64))
	case bool:
		*s = tolerantString(strconv.FormatBool(x))
	default:
		*s = ""
	}
	return nil
}

// jsonLink accepts null, a bare URL string or {"url", "target"}.
type jsonLink struct {
	link *chart.Link
}

func (l *jsonLink) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		l.link = nil
	case len(b) > 0 && b[0] == '"':
		var url string
		if err := json.Unmarshal(b, &url); err != nil {
			return err
		}
		l.link = makeLink(url, "")
	default:
		var obj struct {
			URL    string `json:"url"`
			Href   string `json:"href"`
			Target string `json:"target"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.URL == "" {
			obj.URL = obj.Href
		}
		l.link = makeLink(obj.URL, obj.Target)
	}
	return nil
}
