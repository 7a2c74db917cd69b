//go:build !fitz

package raster

import "context"

// Renderer is a stub used when labscan is built without the fitz tag.
type Renderer struct {
	DPI int
}

// Rasterize always fails with ErrRenderNotEnabled.
func (Renderer) Rasterize(ctx context.Context, path string) ([]Page, error) {
	return nil, &Error{Path: path, Err: ErrRenderNotEnabled}
}
