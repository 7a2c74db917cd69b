// Package raster converts source documents into ordered page images.
//
// Every Rasterizer returns its pages as PNG-encoded images numbered from 1
// in source order, so a recognizer only ever has to understand one image
// format.
//
// # Implementations
//
//   - [ImageFile] handles a single raster image (PNG, JPEG, TIFF, BMP, GIF,
//     WebP) and yields exactly one page.
//   - [Embedded] pulls the scanned image out of each PDF page with pdfcpu.
//     It is pure Go and works for the common case of a scanner or phone app
//     wrapping one image per page in a PDF.
//   - [Renderer] renders whole PDF pages with MuPDF through go-fitz. It needs
//     cgo and is only compiled in with the fitz build tag:
//
//     go build -tags fitz ./...
//
//     Without the tag it fails with [ErrRenderNotEnabled].
//   - [Auto] detects the document format and dispatches: images go to
//     ImageFile, PDFs to Renderer when available and to Embedded otherwise.
//
// # Errors
//
// All failures are reported as *[Error], carrying the document path. Use
// errors.Is with [ErrUnsupportedFormat], [ErrNoPageImages] or
// [ErrRenderNotEnabled] to tell the causes apart.
package raster
