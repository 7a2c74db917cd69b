package raster

import (
	"context"
	"fmt"
	"os"
)

// ImageFile rasterizes a single image file into one page.
type ImageFile struct{}

// Rasterize reads the image at path and returns it as page 1.
func (ImageFile) Rasterize(ctx context.Context, path string) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	page, err := decodePage(1, data)
	if err != nil {
		return nil, &Error{Path: path, Err: fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)}
	}
	return []Page{page}, nil
}
