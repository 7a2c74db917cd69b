// Package format provides document format detection for lab report inputs.
package format

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// PNG indicates a PNG image.
	PNG
	// JPEG indicates a JPEG image.
	JPEG
	// TIFF indicates a TIFF image (possibly multi-page fax scans).
	TIFF
	// BMP indicates a Windows bitmap.
	BMP
	// GIF indicates a GIF image.
	GIF
	// WebP indicates a WebP image.
	WebP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	case BMP:
		return "BMP"
	case GIF:
		return "GIF"
	case WebP:
		return "WebP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PNG:
		return ".png"
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tif"
	case BMP:
		return ".bmp"
	case GIF:
		return ".gif"
	case WebP:
		return ".webp"
	default:
		return ""
	}
}

// IsImage reports whether the format is a single raster image.
func (f Format) IsImage() bool {
	switch f {
	case PNG, JPEG, TIFF, BMP, GIF, WebP:
		return true
	default:
		return false
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".png":
		return PNG
	case ".jpg", ".jpeg":
		return JPEG
	case ".tif", ".tiff":
		return TIFF
	case ".bmp":
		return BMP
	case ".gif":
		return GIF
	case ".webp":
		return WebP
	default:
		return Unknown
	}
}

var (
	magicPDF     = []byte("%PDF")
	magicPNG     = []byte("\x89PNG\r\n\x1a\n")
	magicJPEG    = []byte{0xFF, 0xD8, 0xFF}
	magicTIFFLE  = []byte("II*\x00")
	magicTIFFBE  = []byte("MM\x00*")
	magicBMP     = []byte("BM")
	magicGIF87   = []byte("GIF87a")
	magicGIF89   = []byte("GIF89a")
	magicRIFF    = []byte("RIFF")
	magicWebPTag = []byte("WEBP")
)

// DetectFromMagic checks file magic bytes to determine format.
// This provides more reliable detection than extension-based detection.
func DetectFromMagic(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, magicPDF):
		return PDF
	case bytes.HasPrefix(data, magicPNG):
		return PNG
	case bytes.HasPrefix(data, magicJPEG):
		return JPEG
	case bytes.HasPrefix(data, magicTIFFLE), bytes.HasPrefix(data, magicTIFFBE):
		return TIFF
	case bytes.HasPrefix(data, magicGIF87), bytes.HasPrefix(data, magicGIF89):
		return GIF
	case len(data) >= 12 && bytes.HasPrefix(data, magicRIFF) && bytes.Equal(data[8:12], magicWebPTag):
		return WebP
	case len(data) >= 14 && bytes.HasPrefix(data, magicBMP):
		return BMP
	}

	// Some generators prepend junk before the PDF header; readers accept
	// the header anywhere in the first kilobyte.
	if i := bytes.Index(data, magicPDF); i > 0 && i < 1024 {
		return PDF
	}
	return Unknown
}

// DetectFromReader inspects the first bytes of r to determine format.
func DetectFromReader(r io.Reader) (Format, error) {
	magic := make([]byte, 1024)
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return DetectFromMagic(magic[:n]), nil
}

// DetectFile determines the format of the file at path. Content is checked
// first; the extension is used only when the content is not recognized.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	format, err := DetectFromReader(f)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read file: %w", err)
	}
	if format == Unknown {
		format = Detect(path)
	}
	return format, nil
}
