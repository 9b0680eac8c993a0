package ingest

import "errors"

var (
	// ErrTooFewRows reports tabular data without at least a header and one row.
	ErrTooFewRows = errors.New("ingest: too few rows")

	// ErrMalformed reports input that cannot be decoded.
	ErrMalformed = errors.New("ingest: malformed data")

	// ErrFetch reports a failed remote fetch.
	ErrFetch = errors.New("ingest: fetch failed")

	// ErrStale reports a load superseded by a request for another source.
	ErrStale = errors.New("ingest: stale result")

	// ErrUnknownFormat reports a source whose format cannot be determined.
	ErrUnknownFormat = errors.New("ingest: unknown format")
)
