package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/tsawler/labscan/model"
)

var columns = []string{"Parameter", "Value", "Unit", "Reference Range"}

// ToMarkdown renders the readings as a table followed by the impression
// remarks as a list.
func ToMarkdown(results []model.Result) string {
	rs := model.Results(results)
	readings := rs.Readings()
	impressions := rs.Impressions()

	var sb strings.Builder
	sb.WriteString("# Lab Report\n\n")

	if len(readings) == 0 {
		sb.WriteString("No parameters found.\n")
	} else {
		writeRow(&sb, columns)
		for j := range columns {
			sb.WriteString("|---")
			if j == len(columns)-1 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		for _, r := range readings {
			writeRow(&sb, []string{r.Parameter, r.Value, r.Unit, r.Range})
		}
	}

	if len(impressions) > 0 {
		sb.WriteString("\n## Impression\n\n")
		for _, r := range impressions {
			sb.WriteString("- ")
			sb.WriteString(escapeCell(r.Value))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string) {
	for j, cell := range cells {
		sb.WriteString("| ")
		sb.WriteString(escapeCell(cell))
		sb.WriteString(" ")
		if j == len(cells)-1 {
			sb.WriteString("|")
		}
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", `\|`)
	return s
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Lab Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
</style>
</head>
<body>
`

const htmlTail = "</body>\n</html>\n"

// WriteHTML writes a standalone HTML page rendered from the Markdown report.
func WriteHTML(w io.Writer, results []model.Result) error {
	var body bytes.Buffer
	if err := md.Convert([]byte(ToMarkdown(results)), &body); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	if _, err := io.WriteString(w, htmlHead); err != nil {
		return err
	}
	if _, err := body.WriteTo(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, htmlTail)
	return err
}
