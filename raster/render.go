//go:build fitz

package raster

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// Renderer renders whole PDF pages with MuPDF.
type Renderer struct {
	// DPI is the render resolution. Zero selects DefaultDPI.
	DPI int
}

// Rasterize renders every page of the PDF at path.
func (r Renderer) Rasterize(ctx context.Context, path string) ([]Page, error) {
	dpi := r.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("open PDF: %w", err)}
	}
	defer doc.Close()

	n := doc.NumPage()
	if n == 0 {
		return nil, &Error{Path: path, Err: ErrNoPageImages}
	}

	pages := make([]Page, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("render page %d: %w", i+1, err)}
		}
		page, err := encodePage(i+1, img)
		if err != nil {
			return nil, &Error{Path: path, Err: err}
		}
		pages = append(pages, page)
	}
	return pages, nil
}
