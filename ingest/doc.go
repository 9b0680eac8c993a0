// Package ingest turns external chart data into a normalized chart.Spec.
//
// Supported inputs are an inline JSON literal, a JSON document or a
// delimited text file fetched by URL or read from disk, and XLSX
// workbooks. Whatever the input, the resulting chart.Spec has one
// value per category in every dataset, with unparseable cells stored as 0.
//
// Delimited text and spreadsheets share one row model: the first row is the
// header, the first column holds categories and every other column is a
// dataset named by its header. Columns titled "link" and "link target"
// (case-insensitive) attach hyperlinks to categories instead.
//
// Failures are reported, never retried.
package ingest
