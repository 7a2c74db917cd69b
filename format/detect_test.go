package format

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{PNG, "PNG"},
		{JPEG, "JPEG"},
		{TIFF, "TIFF"},
		{BMP, "BMP"},
		{GIF, "GIF"},
		{WebP, "WebP"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, ".pdf"},
		{PNG, ".png"},
		{JPEG, ".jpg"},
		{TIFF, ".tif"},
		{BMP, ".bmp"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsImage(t *testing.T) {
	if PDF.IsImage() {
		t.Error("PDF should not be an image format")
	}
	if Unknown.IsImage() {
		t.Error("Unknown should not be an image format")
	}
	for _, f := range []Format{PNG, JPEG, TIFF, BMP, GIF, WebP} {
		if !f.IsImage() {
			t.Errorf("%s should be an image format", f)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"report.pdf", PDF},
		{"report.PDF", PDF},
		{"scan.png", PNG},
		{"scan.jpg", JPEG},
		{"scan.JPEG", JPEG},
		{"fax.tif", TIFF},
		{"fax.tiff", TIFF},
		{"scan.bmp", BMP},
		{"scan.gif", GIF},
		{"scan.webp", WebP},
		{"report.docx", Unknown},
		{"report", Unknown},
		{"", Unknown},
		{"/path/to/report.pdf", PDF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromMagic(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"PDF magic bytes", []byte("%PDF-1.4"), PDF},
		{"PDF after junk", append([]byte("\x00\x00garbage\n"), []byte("%PDF-1.7")...), PDF},
		{"PNG", []byte("\x89PNG\r\n\x1a\n\x00\x00"), PNG},
		{"JPEG", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, JPEG},
		{"TIFF little endian", []byte("II*\x00\x08\x00"), TIFF},
		{"TIFF big endian", []byte("MM\x00*\x00\x08"), TIFF},
		{"GIF", []byte("GIF89a\x01\x00"), GIF},
		{"WebP", []byte("RIFF\x00\x00\x00\x00WEBPVP8 "), WebP},
		{"RIFF but not WebP", []byte("RIFF\x00\x00\x00\x00WAVEfmt "), Unknown},
		{"BMP", append([]byte("BM"), make([]byte, 20)...), BMP},
		{"BM too short", []byte("BM"), Unknown},
		{"empty data", []byte{}, Unknown},
		{"text file", []byte("Hemoglobin 13.5 g/dL"), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromMagic(tt.data); got != tt.want {
				t.Errorf("DetectFromMagic() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_PDF(t *testing.T) {
	data := []byte("%PDF-1.4\n%%EOF")

	format, err := DetectFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != PDF {
		t.Errorf("DetectFromReader() = %v, want PDF", format)
	}
}

func TestDetectFile(t *testing.T) {
	dir := t.TempDir()

	// Content wins over a misleading extension.
	pngAsPDF := filepath.Join(dir, "scan.pdf")
	if err := os.WriteFile(pngAsPDF, []byte("\x89PNG\r\n\x1a\nrest"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got, err := DetectFile(pngAsPDF); err != nil || got != PNG {
		t.Errorf("DetectFile(%q) = %v, %v; want PNG", pngAsPDF, got, err)
	}

	// Extension is the fallback for unrecognized content.
	unknown := filepath.Join(dir, "report.tiff")
	if err := os.WriteFile(unknown, []byte("not really a tiff"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got, err := DetectFile(unknown); err != nil || got != TIFF {
		t.Errorf("DetectFile(%q) = %v, %v; want TIFF", unknown, got, err)
	}

	if _, err := DetectFile(filepath.Join(dir, "missing.pdf")); err == nil {
		t.Error("expected error for missing file")
	}
}
