package model

import "strings"

// ImpressionParameter is the parameter name used for impression remarks.
const ImpressionParameter = "Impression"

// Result is a single parameter reading extracted from a report.
type Result struct {
	Parameter string `json:"parameter" yaml:"parameter"`
	Value     string `json:"value" yaml:"value"`
	Unit      string `json:"unit" yaml:"unit"`
	Range     string `json:"range" yaml:"range"`
}

// IsImpression reports whether r is an impression remark rather than a
// parameter reading.
func (r Result) IsImpression() bool {
	return r.Parameter == ImpressionParameter
}

// HasValue reports whether a value was extracted for r.
func (r Result) HasValue() bool {
	return r.Value != ""
}

// String returns a compact single-line rendering of the result.
func (r Result) String() string {
	var sb strings.Builder
	sb.WriteString(r.Parameter)
	sb.WriteString(": ")
	if r.Value == "" {
		sb.WriteString("-")
	} else {
		sb.WriteString(r.Value)
	}
	if r.Unit != "" {
		sb.WriteString(" ")
		sb.WriteString(r.Unit)
	}
	if r.Range != "" {
		sb.WriteString(" (")
		sb.WriteString(r.Range)
		sb.WriteString(")")
	}
	return sb.String()
}

// Results is an ordered list of extraction results.
type Results []Result

// Find returns the first result for the named parameter, compared
// case-insensitively.
func (rs Results) Find(parameter string) (Result, bool) {
	for _, r := range rs {
		if strings.EqualFold(r.Parameter, parameter) {
			return r, true
		}
	}
	return Result{}, false
}

// Impressions returns the impression remarks in rs, in order.
func (rs Results) Impressions() Results {
	var out Results
	for _, r := range rs {
		if r.IsImpression() {
			out = append(out, r)
		}
	}
	return out
}

// Readings returns the results in rs that are not impression remarks.
func (rs Results) Readings() Results {
	var out Results
	for _, r := range rs {
		if !r.IsImpression() {
			out = append(out, r)
		}
	}
	return out
}
