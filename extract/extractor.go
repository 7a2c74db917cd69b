package extract

import (
	"strings"

	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/model"
)

// impressionKeyword marks remark lines; matched against lower-cased lines.
const impressionKeyword = "impression"

// Extractor matches report text against a parameter catalog.
// An Extractor is immutable and safe for concurrent use.
type Extractor struct {
	catalog *catalog.Catalog
	lowered []string // lower-cased names, in catalog order
}

// New creates an Extractor for c. A nil catalog selects catalog.Default().
func New(c *catalog.Catalog) *Extractor {
	if c == nil {
		c = catalog.Default()
	}
	lowered := make([]string, c.Len())
	for i := range lowered {
		lowered[i] = strings.ToLower(c.At(i).Name)
	}
	return &Extractor{catalog: c, lowered: lowered}
}

// Catalog returns the catalog the extractor matches against.
func (e *Extractor) Catalog() *catalog.Catalog {
	return e.catalog
}

// Extract returns the catalog readings found in text followed by any
// impression remarks.
func (e *Extractor) Extract(text string) []model.Result {
	lines := Lines(text)
	results := e.matchCatalog(lines)
	return append(results, impressions(lines)...)
}

// Parameters returns one result per catalog entry mentioned in text, in
// catalog order. The first line (top to bottom) containing an entry's name
// wins, even when no number follows the name on that line.
func (e *Extractor) Parameters(text string) []model.Result {
	return e.matchCatalog(Lines(text))
}

func (e *Extractor) matchCatalog(lines []string) []model.Result {
	loweredLines := make([]string, len(lines))
	for i, line := range lines {
		loweredLines[i] = strings.ToLower(line)
	}

	results := make([]model.Result, 0, e.catalog.Len())
	for i, name := range e.lowered {
		for _, line := range loweredLines {
			idx := strings.Index(line, name)
			if idx < 0 {
				continue
			}
			p := e.catalog.At(i)
			results = append(results, model.Result{
				Parameter: p.Name,
				Value:     numberAfter(line[idx+len(name):]),
				Unit:      p.Unit,
				Range:     p.Range,
			})
			break
		}
	}
	return results
}

// Impressions returns a remark result for every line that contains
// "impression" in any letter case. The value is the text after the first
// colon, or the whole line when there is no colon, with surrounding
// whitespace removed.
func Impressions(text string) []model.Result {
	return impressions(Lines(text))
}

func impressions(lines []string) []model.Result {
	var results []model.Result
	for _, line := range lines {
		if !strings.Contains(strings.ToLower(line), impressionKeyword) {
			continue
		}
		value := line
		if _, after, ok := strings.Cut(line, ":"); ok {
			value = after
		}
		results = append(results, model.Result{
			Parameter: model.ImpressionParameter,
			Value:     strings.TrimSpace(value),
		})
	}
	return results
}
