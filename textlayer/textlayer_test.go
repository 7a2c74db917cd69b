package textlayer

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newReportPDF generates a PDF with one line of text per page.
func newReportPDF(t *testing.T, lines ...string) string {
	t.Helper()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range lines {
		pdf.AddPage()
		if line != "" {
			pdf.Cell(40, 10, line)
		}
	}

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestRead(t *testing.T) {
	path := newReportPDF(t, "Hemoglobin 13.5", "Impression: Normal")

	pages, err := Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, pages[0].Number)
	assert.Contains(t, pages[0].Text, "Hemoglobin")
	assert.Equal(t, 2, pages[1].Number)
	assert.Contains(t, pages[1].Text, "Impression")
	assert.True(t, HasText(pages))
}

func TestRead_BlankPage(t *testing.T) {
	path := newReportPDF(t, "")

	pages, err := Read(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.False(t, HasText(pages))
}

func TestRead_Errors(t *testing.T) {
	_, err := Read(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "junk.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o600))
	_, err = Read(context.Background(), path)
	assert.Error(t, err)
}

func TestHasText(t *testing.T) {
	assert.False(t, HasText(nil))
	assert.False(t, HasText([]Page{{Number: 1, Text: " \n\t"}}))
	assert.True(t, HasText([]Page{{Number: 1}, {Number: 2, Text: "x"}}))
}
