package labscan

import (
	"context"
	"fmt"
	"strings"

	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/ocr"
	"github.com/tsawler/labscan/raster"
)

// Source selects where page text comes from.
type Source int

const (
	// SourceOCR rasterizes the document and recognizes every page image.
	SourceOCR Source = iota
	// SourceTextLayer reads the embedded text of a born-digital PDF.
	SourceTextLayer
	// SourceAuto uses the text layer when it holds text and OCR otherwise.
	SourceAuto
)

// String returns the name accepted by ParseSource.
func (s Source) String() string {
	switch s {
	case SourceOCR:
		return "ocr"
	case SourceTextLayer:
		return "text"
	case SourceAuto:
		return "auto"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// ParseSource parses "ocr", "text" or "auto".
func ParseSource(s string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ocr", "":
		return SourceOCR, nil
	case "text", "textlayer":
		return SourceTextLayer, nil
	case "auto":
		return SourceAuto, nil
	default:
		return SourceOCR, fmt.Errorf("unknown source %q", s)
	}
}

// ExtractOptions holds configuration for a pipeline run.
type ExtractOptions struct {
	// Page selection (1-indexed, as passed to Pages)
	pages []int

	// Collaborators; nil selects the defaults
	catalog    *catalog.Catalog
	rasterizer raster.Rasterizer
	recognizer ocr.Recognizer

	source    Source
	workers   int
	normalize bool

	// Settings for the default recognizer and rasterizer
	language    string
	pageSegMode ocr.PageSegMode
	dpi         int

	ctx context.Context
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:       nil, // nil means all pages
		source:      SourceOCR,
		workers:     1,
		normalize:   true,
		language:    "eng",
		pageSegMode: ocr.PSM_AUTO,
		dpi:         raster.DefaultDPI,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	newOpts.pages = nil

	// Deep copy pages slice
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}

	return newOpts
}

func (o ExtractOptions) context() context.Context {
	if o.ctx != nil {
		return o.ctx
	}
	return context.Background()
}
