package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/tsawler/labscan/model"
)

// Column widths in millimetres; they add up to the A4 text width.
var pdfWidths = []float64{60, 35, 35, 50}

// WritePDF writes a one-table PDF report.
func WritePDF(w io.Writer, results []model.Result) error {
	rs := model.Results(results)

	pdf := fpdf.New("P", "mm", "A4", "")
	// The core fonts are cp1252; translate so units like µmol/L survive.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Lab Report", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Lab Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	readings := rs.Readings()
	if len(readings) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 8, "No parameters found.", "", 1, "L", false, 0, "")
	} else {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetFillColor(235, 235, 235)
		for i, col := range columns {
			pdf.CellFormat(pdfWidths[i], 8, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 11)
		for _, r := range readings {
			for i, cell := range []string{r.Parameter, r.Value, r.Unit, r.Range} {
				pdf.CellFormat(pdfWidths[i], 7, tr(cell), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if impressions := rs.Impressions(); len(impressions) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Impression", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range impressions {
			pdf.MultiCell(0, 6, tr(r.Value), "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
