// Package textlayer reads the embedded text of born-digital PDFs.
//
// Lab portals often issue reports as generated PDFs rather than scans. Their
// text can be read directly, which is faster and more accurate than running
// OCR on a rendered page.
package textlayer

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Page is the text of one PDF page.
type Page struct {
	Number int
	Text   string
}

// Read returns the text of every page of the PDF at path, in page order.
// Pages without a text layer are returned with empty text.
func Read(ctx context.Context, path string) ([]Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to get file info: %w", err)
	}

	r, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF reader: %w", err)
	}

	n := r.NumPage()
	pages := make([]Page, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pages = append(pages, Page{Number: i, Text: pageText(r, i)})
	}
	return pages, nil
}

func pageText(r *pdf.Reader, i int) string {
	page := r.Page(i)
	if page.V.IsNull() {
		return ""
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return text
}

// HasText reports whether any page holds non-blank text.
func HasText(pages []Page) bool {
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			return true
		}
	}
	return false
}
