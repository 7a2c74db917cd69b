package ocr

import (
	"context"
	"errors"
	"fmt"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable OCR support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// ErrPoolClosed is returned by Pool.Recognize after Close.
var ErrPoolClosed = errors.New("OCR pool is closed")

// Recognizer converts one encoded page image (PNG, JPEG, TIFF...) into text.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// RecognizerFunc adapts an ordinary function to the Recognizer interface.
type RecognizerFunc func(ctx context.Context, image []byte) (string, error)

// Recognize calls f(ctx, image).
func (f RecognizerFunc) Recognize(ctx context.Context, image []byte) (string, error) {
	return f(ctx, image)
}

// Error reports a recognition failure on a specific page.
type Error struct {
	Page int // 1-based page number
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("recognition failed on page %d: %v", e.Page, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PageSegMode represents page segmentation modes for OCR.
// These control how Tesseract analyzes the page layout.
type PageSegMode int

// Page segmentation modes (matching Tesseract's numbering).
const (
	PSM_OSD_ONLY               PageSegMode = 0  // Orientation and script detection only
	PSM_AUTO_OSD               PageSegMode = 1  // Automatic with OSD
	PSM_AUTO_ONLY              PageSegMode = 2  // Automatic, no OSD or OCR
	PSM_AUTO                   PageSegMode = 3  // Fully automatic (default)
	PSM_SINGLE_COLUMN          PageSegMode = 4  // Single column of variable sizes
	PSM_SINGLE_BLOCK_VERT_TEXT PageSegMode = 5  // Single uniform block of vertically aligned text
	PSM_SINGLE_BLOCK           PageSegMode = 6  // Single uniform block of text
	PSM_SINGLE_LINE            PageSegMode = 7  // Single text line
	PSM_SINGLE_WORD            PageSegMode = 8  // Single word
	PSM_CIRCLE_WORD            PageSegMode = 9  // Single word in a circle
	PSM_SINGLE_CHAR            PageSegMode = 10 // Single character
	PSM_SPARSE_TEXT            PageSegMode = 11 // Find as much text as possible
	PSM_SPARSE_TEXT_OSD        PageSegMode = 12 // Sparse text with OSD
	PSM_RAW_LINE               PageSegMode = 13 // Treat image as single text line
)

// Valid reports whether m is a known page segmentation mode.
func (m PageSegMode) Valid() bool {
	return m >= PSM_OSD_ONLY && m <= PSM_RAW_LINE
}

// options holds engine configuration shared by Client and Pool.
type options struct {
	language    string
	pageSegMode PageSegMode
	dpi         int
}

// Option configures a Client or Pool.
type Option func(*options)

// WithLanguage sets the OCR language(s).
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func WithLanguage(lang string) Option {
	return func(o *options) {
		if lang != "" {
			o.language = lang
		}
	}
}

// WithPageSegMode sets the page segmentation mode. Invalid modes are
// ignored and the default (PSM_AUTO) is kept.
func WithPageSegMode(mode PageSegMode) Option {
	return func(o *options) {
		if mode.Valid() {
			o.pageSegMode = mode
		}
	}
}

// WithDPI tells the engine the resolution of the page images. Zero leaves
// the decision to Tesseract.
func WithDPI(dpi int) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		language:    "eng",
		pageSegMode: PSM_AUTO,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
