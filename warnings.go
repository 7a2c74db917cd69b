package labscan

import (
	"fmt"
	"strings"
)

// Warning codes.
const (
	// WarnRasterize means the document could not be converted to page
	// images; the run produced no results.
	WarnRasterize = "rasterize"
	// WarnTextLayer means the PDF text layer could not be read.
	WarnTextLayer = "textlayer"
	// WarnEmptyPage means a page produced no text.
	WarnEmptyPage = "empty_page"
	// WarnNoMatch means no catalog parameter was found in the text.
	WarnNoMatch = "no_match"
)

// Warning describes a non-fatal condition met while processing a document.
// Page is 0 for warnings about the whole document.
type Warning struct {
	Code    string `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	Page    int    `json:"page,omitempty" yaml:"page,omitempty"`
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
