package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gogpu/chart"
)

// ParseCSV reads comma-separated text. Quoted fields may contain the
// delimiter and line breaks; a doubled quote is a literal quote.
func ParseCSV(r io.Reader) (*chart.Spec, error) {
	return ParseDelimited(r, ',')
}

// ParseDelimited reads delimited text with the given separator.
func ParseDelimited(r io.Reader, comma rune) (*chart.Spec, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = false
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return FromRows(rows)
}
