// Package labscan extracts structured health-parameter readings from
// scanned lab reports.
//
// A document is converted into page images, each page is run through OCR,
// and the recognized text is matched against a catalog of expected
// parameters.
//
// Basic usage:
//
//	results, warnings, err := labscan.Open("report.pdf").Results()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", labscan.FormatWarnings(warnings))
//	}
//	for _, r := range results {
//	    fmt.Println(r)
//	}
//
// With options:
//
//	results, _, err := labscan.Open("report.pdf").
//	    Catalog(myCatalog).
//	    Source(labscan.SourceAuto).
//	    Workers(4).
//	    Results()
//
// The extract and catalog packages can be used on their own when the text is
// already available.
package labscan

import (
	"context"

	"github.com/tsawler/labscan/model"
)

// Open returns an Extractor for the document at path. Nothing is read until
// a terminal operation such as Results or Text is called.
//
// Example:
//
//	text, warnings, err := labscan.Open("report.png").Text()
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultOptions(),
	}
}

// Process runs the default pipeline on the document at path: OCR every page
// and extract the catalog readings and impressions.
//
// A document that cannot be converted to images yields an empty list and no
// error; the cause is logged. Recognition failures are returned.
func Process(ctx context.Context, path string) ([]model.Result, error) {
	results, _, err := Open(path).Context(ctx).Results()
	return results, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	results := labscan.Must(labscan.Process(ctx, "report.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResults is a helper that wraps a call to a terminal operation such as
// Results or Text and panics if the error is non-nil. It discards warnings
// and returns just the value.
//
// Example:
//
//	text := labscan.MustResults(labscan.Open("report.pdf").Text())
func MustResults[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
