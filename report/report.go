// Package report renders extraction results for people and programs.
//
// JSON is the wire format of the upload service and matches the array the
// web frontend expects. The other formats are for the command line.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/tsawler/labscan/model"
)

// Format names an output format.
type Format string

// Supported formats.
const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
	PDF      Format = "pdf"
	CSV      Format = "csv"
)

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, Markdown, HTML, PDF, CSV}

// ParseFormat parses a format name. "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSON, YAML, Markdown, HTML, PDF, CSV:
		return f, nil
	case "md":
		return Markdown, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []model.Result) error {
	switch f {
	case JSON:
		return WriteJSON(w, results)
	case YAML:
		return WriteYAML(w, results)
	case Markdown:
		_, err := io.WriteString(w, ToMarkdown(results))
		return err
	case HTML:
		return WriteHTML(w, results)
	case PDF:
		return WritePDF(w, results)
	case CSV:
		return WriteCSV(w, results)
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}

// WriteJSON writes results as an indented JSON array. An empty list is
// written as [] rather than null.
func WriteJSON(w io.Writer, results []model.Result) error {
	if results == nil {
		results = []model.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []model.Result) error {
	if results == nil {
		results = []model.Result{}
	}
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
