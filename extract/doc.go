// Package extract locates lab parameter readings in recognised report text.
//
// The package is deliberately small and free of I/O: every function is a pure
// function of its input text (and, for [Extractor], the injected catalog).
//
// # Catalog Extraction
//
// [Extractor.Catalog] walks the catalog in order. For each parameter it finds
// the first line that mentions the parameter name (case-insensitively) and
// takes the first number after the name on that line:
//
//	ex := extract.New(catalog.Default())
//	results := ex.Catalog("Hemoglobin 13.5 g/dL 12.0-16.0")
//	// [{Hemoglobin 13.5 g/dL 12.0-16.0}]
//
// Unit and range always come from the catalog, never from the text. A
// parameter that is mentioned without a number is reported with an empty
// value; a parameter that is never mentioned is omitted.
//
// Matching is by substring, so a shorter name contained in a longer one
// ("Cholesterol" in "HDL Cholesterol") matches the longer name's line when
// that line comes first. Each entry scans independently, in catalog order.
//
// # Impressions
//
// [Impressions] reports every line containing "impression" as a remark,
// keeping the text after the first colon.
//
// # Generic Extraction
//
// [Generic] ignores the catalog and reads any line shaped like
//
//	<name> <number> [<unit>] [<low>-<high>]
//
// It is an alternate view of the text and is never merged with catalog
// results.
//
// # Tokens
//
// A numeric token is one or more digits with at most one decimal point
// followed by more digits ("13", "13.5"). A range token is two numeric tokens
// separated by a hyphen or an en dash ("12.0-16.0", "70–110").
package extract
