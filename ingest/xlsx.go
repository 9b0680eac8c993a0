package ingest

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/gogpu/chart"
)

// ParseXLSX reads the first worksheet of a workbook. When the sheet has no
// link column, cell hyperlinks on the category column become links.
func ParseXLSX(r io.Reader) (*chart.Spec, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrTooFewRows
	}
	return sheetSpec(f, sheets[0])
}

func sheetSpec(f *excelize.File, sheet string) (*chart.Spec, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrMalformed, sheet, err)
	}
	spec, err := FromRows(rows)
	if err != nil {
		return nil, err
	}
	if len(spec.Links) == 0 {
		spec.Links = categoryHyperlinks(f, sheet, len(spec.Categories))
	}
	return spec, nil
}

// categoryHyperlinks collects hyperlinks of column A below the header. It
// returns nil when no category carries one.
func categoryHyperlinks(f *excelize.File, sheet string, n int) []*chart.Link {
	var links []*chart.Link
	for i := 0; i < n; i++ {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			continue
		}
		ok, target, err := f.GetCellHyperLink(sheet, cellName)
		if err != nil || !ok || target == "" {
			continue
		}
		if links == nil {
			links = make([]*chart.Link, n)
		}
		links[i] = makeLink(target, "")
	}
	return links
}
