package ingest

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/chart"
)

const (
	linkColumn       = "link"
	linkTargetColumn = "link target"
)

// FromRows normalizes a header row plus data rows into a Spec. Rows may be
// ragged; missing cells read as empty.
func FromRows(rows [][]string) (*chart.Spec, error) {
	if len(rows) < 2 {
		return nil, ErrTooFewRows
	}
	header := rows[0]
	linkCol, targetCol := -1, -1
	var dataCols []int
	for j := 1; j < len(header); j++ {
		switch strings.ToLower(strings.TrimSpace(header[j])) {
		case linkColumn:
			linkCol = j
		case linkTargetColumn:
			targetCol = j
		default:
			dataCols = append(dataCols, j)
		}
	}

	body := rows[1:]
	spec := &chart.Spec{
		Categories: make([]string, len(body)),
		Datasets:   make([]chart.Dataset, len(dataCols)),
	}
	for d, j := range dataCols {
		spec.Datasets[d] = chart.Dataset{
			Name:   strings.TrimSpace(header[j]),
			Values: make([]float64, len(body)),
		}
	}
	if linkCol >= 0 {
		spec.Links = make([]*chart.Link, len(body))
	}
	for i, row := range body {
		spec.Categories[i] = strings.TrimSpace(cell(row, 0))
		for d, j := range dataCols {
			spec.Datasets[d].Values[i] = parseNumber(cell(row, j))
		}
		if linkCol >= 0 {
			spec.Links[i] = makeLink(cell(row, linkCol), cell(row, targetCol))
		}
	}
	return spec, nil
}

func cell(row []string, j int) string {
	if j < 0 || j >= len(row) {
		return ""
	}
	return row[j]
}

// makeLink returns nil for an empty URL.
func makeLink(url, target string) *chart.Link {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil
	}
	return &chart.Link{URL: url, Target: strings.TrimSpace(target)}
}

// parseNumber reads a numeric cell; anything else is 0.
func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
