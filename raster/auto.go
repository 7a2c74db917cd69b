package raster

import (
	"context"
	"errors"

	"github.com/tsawler/labscan/format"
	"github.com/tsawler/labscan/log"
)

// Auto picks a rasterizer from the document's detected format.
type Auto struct {
	// DPI is passed to Renderer for PDF documents.
	DPI int
}

// Rasterize detects the format of path and converts it with the matching
// implementation. PDFs are rendered when MuPDF support is compiled in and
// fall back to embedded image extraction otherwise.
func (a Auto) Rasterize(ctx context.Context, path string) ([]Page, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return nil, wrap(path, err)
	}

	switch {
	case f == format.PDF:
		pages, err := Renderer{DPI: a.DPI}.Rasterize(ctx, path)
		if errors.Is(err, ErrRenderNotEnabled) {
			log.Debugf("%s: page rendering unavailable, extracting embedded images", path)
			return Embedded{}.Rasterize(ctx, path)
		}
		return pages, err
	case f.IsImage():
		return ImageFile{}.Rasterize(ctx, path)
	default:
		return nil, &Error{Path: path, Err: ErrUnsupportedFormat}
	}
}
