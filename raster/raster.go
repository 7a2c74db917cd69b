package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	// Decoders for the formats ImageFile and Embedded accept.
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultDPI is the resolution used when rendering PDF pages.
const DefaultDPI = 200

var (
	// ErrUnsupportedFormat is returned for documents that are neither a PDF
	// nor a decodable raster image.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrNoPageImages is returned when a PDF yields no usable page image.
	ErrNoPageImages = errors.New("no page images found")

	// ErrRenderNotEnabled is returned by Renderer when labscan was built
	// without the fitz build tag.
	ErrRenderNotEnabled = errors.New("PDF page rendering not enabled: build with -tags fitz")
)

// Page is one rasterized page of a document.
type Page struct {
	// Number is the 1-based page number in the source document.
	Number int
	// Image is the page image, PNG encoded.
	Image []byte
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
}

// Rasterizer converts the document at path into page images.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string) ([]Page, error)
}

// RasterizerFunc adapts a function to the Rasterizer interface.
type RasterizerFunc func(ctx context.Context, path string) ([]Page, error)

// Rasterize calls f(ctx, path).
func (f RasterizerFunc) Rasterize(ctx context.Context, path string) ([]Page, error) {
	return f(ctx, path)
}

// Error describes a document that could not be converted to images.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rasterize %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap returns err as an *Error for path unless it already is one.
func wrap(path string, err error) error {
	var re *Error
	if errors.As(err, &re) {
		return err
	}
	return &Error{Path: path, Err: err}
}

// decodePage decodes an image in any registered format and re-encodes it
// as a PNG page.
func decodePage(number int, data []byte) (Page, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Page{}, fmt.Errorf("decode page %d: %w", number, err)
	}
	return encodePage(number, img)
}

func encodePage(number int, img image.Image) (Page, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Page{}, fmt.Errorf("encode page %d: %w", number, err)
	}
	b := img.Bounds()
	return Page{
		Number: number,
		Image:  buf.Bytes(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
