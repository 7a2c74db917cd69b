// Package tool exposes labscan extraction as MCP tools.
package tool

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tsawler/labscan"
	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/extract"
	"github.com/tsawler/labscan/model"
)

// Extraction modes accepted by extract_lab_parameters.
const (
	ModeCatalog = "catalog"
	ModeGeneric = "generic"
)

// MetadataExtractLabParameters describes the extract_lab_parameters tool.
var MetadataExtractLabParameters = &mcp.Tool{
	Name: "extract_lab_parameters",
	Description: "Extract health-parameter readings from the text of a lab report. " +
		"In catalog mode (default) each known parameter is reported at most once with the " +
		"catalog's unit and reference range, followed by any Impression remarks. " +
		"In generic mode every line shaped like 'Name 12.3 unit 1.0-2.0' is reported.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Text of the lab report, one reading per line",
			},
			"mode": map[string]interface{}{
				"type":        "string",
				"description": "Extraction mode. One of: catalog, generic. Defaults to catalog.",
				"enum":        []string{ModeCatalog, ModeGeneric},
			},
		},
	},
}

// MetadataScanLabReport describes the scan_lab_report tool.
var MetadataScanLabReport = &mcp.Tool{
	Name: "scan_lab_report",
	Description: "Run OCR on a scanned lab report (PDF or image) on the server's file system " +
		"and extract the catalog readings and Impression remarks.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"path"},
		"properties": map[string]interface{}{
			"path": map[string]interface{}{
				"type":        "string",
				"description": "Path of the document to scan",
			},
		},
	},
}

// MetadataListLabCatalog describes the list_lab_catalog tool.
var MetadataListLabCatalog = &mcp.Tool{
	Name:        "list_lab_catalog",
	Description: "List the parameters the extractor looks for, with their units and reference ranges.",
	InputSchema: map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	},
}

// InputExtractLabParameters is the input for the ExtractLabParameters tool.
type InputExtractLabParameters struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

// OutputResults is the output of the extraction tools.
type OutputResults struct {
	Results []model.Result `json:"results"`
	// Warnings describe non-fatal problems met while scanning a document.
	Warnings []labscan.Warning `json:"warnings,omitempty"`
}

// InputScanLabReport is the input for the ScanLabReport tool.
type InputScanLabReport struct {
	Path string `json:"path"`
}

// InputListLabCatalog is the input for the ListLabCatalog tool.
type InputListLabCatalog struct{}

// OutputListLabCatalog is the output for the ListLabCatalog tool.
type OutputListLabCatalog struct {
	Parameters []catalog.Parameter `json:"parameters"`
}

// Tools holds the state shared by the labscan tools.
type Tools struct {
	catalog   *catalog.Catalog
	configure func(*labscan.Extractor) *labscan.Extractor
}

// New returns the labscan tools matching against c (catalog.Default() when
// nil). configure, if non-nil, customizes the pipeline used by
// scan_lab_report.
func New(c *catalog.Catalog, configure func(*labscan.Extractor) *labscan.Extractor) *Tools {
	if c == nil {
		c = catalog.Default()
	}
	if configure == nil {
		configure = func(e *labscan.Extractor) *labscan.Extractor { return e }
	}
	return &Tools{catalog: c, configure: configure}
}

// Register adds every tool to server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, MetadataExtractLabParameters, t.ExtractLabParameters)
	mcp.AddTool(server, MetadataScanLabReport, t.ScanLabReport)
	mcp.AddTool(server, MetadataListLabCatalog, t.ListLabCatalog)
}

// NewServer returns an MCP server named labscan with every tool registered.
func NewServer(version string, t *Tools) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "labscan", Version: version}, nil)
	t.Register(server)
	return server
}

// ExtractLabParameters extracts readings from report text.
func (t *Tools) ExtractLabParameters(ctx context.Context, _ *mcp.CallToolRequest, input InputExtractLabParameters) (*mcp.CallToolResult, OutputResults, error) {
	if input.Text == "" {
		return nil, OutputResults{}, fmt.Errorf("text is required")
	}

	var results []model.Result
	switch input.Mode {
	case "", ModeCatalog:
		results = extract.New(t.catalog).Extract(input.Text)
	case ModeGeneric:
		results = extract.Generic(input.Text)
	default:
		return nil, OutputResults{}, fmt.Errorf("unknown mode %q: must be %s or %s", input.Mode, ModeCatalog, ModeGeneric)
	}
	return nil, OutputResults{Results: results}, nil
}

// ScanLabReport runs the full OCR pipeline on a document.
func (t *Tools) ScanLabReport(ctx context.Context, _ *mcp.CallToolRequest, input InputScanLabReport) (*mcp.CallToolResult, OutputResults, error) {
	if input.Path == "" {
		return nil, OutputResults{}, fmt.Errorf("path is required")
	}

	results, warnings, err := t.configure(labscan.Open(input.Path).Catalog(t.catalog).Context(ctx)).Results()
	if err != nil {
		return nil, OutputResults{}, err
	}
	return nil, OutputResults{Results: results, Warnings: warnings}, nil
}

// ListLabCatalog returns the active catalog.
func (t *Tools) ListLabCatalog(ctx context.Context, _ *mcp.CallToolRequest, _ InputListLabCatalog) (*mcp.CallToolResult, OutputListLabCatalog, error) {
	return nil, OutputListLabCatalog{Parameters: t.catalog.Parameters()}, nil
}
