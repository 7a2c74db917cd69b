package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/labscan/model"
)

// Generic reads every line shaped like a parameter reading, without
// consulting any catalog. A line matches when it starts with letters and
// spaces (at least one letter) ending in whitespace, immediately followed by
// a numeric token. An optional unit and an optional range may follow.
// Lines that do not match are skipped.
func Generic(text string) []model.Result {
	results := make([]model.Result, 0)
	for _, line := range Lines(text) {
		if r, ok := parseReading(line); ok {
			results = append(results, r)
		}
	}
	return results
}

// parseReading applies the generic reading grammar to a single line.
func parseReading(line string) (model.Result, bool) {
	i := 0
	hasLetter := false
	for i < len(line) {
		c := line[i]
		if isASCIILetter(c) {
			hasLetter = true
		} else if c != ' ' && c != '\t' {
			break
		}
		i++
	}
	if !hasLetter || (line[i-1] != ' ' && line[i-1] != '\t') {
		return model.Result{}, false
	}

	value, n := ScanNumber(line[i:])
	if n == 0 {
		return model.Result{}, false
	}

	r := model.Result{
		Parameter: strings.TrimSpace(line[:i]),
		Value:     value,
	}

	rest := line[i+n:]
	if rest == "" {
		return r, true
	}

	// Text glued to the number ("13.5g/dL") must be a unit.
	if first, _ := utf8.DecodeRuneInString(rest); !unicode.IsSpace(first) {
		tok, remainder := nextField(rest)
		if !isUnitToken(tok) {
			return model.Result{}, false
		}
		r.Unit = tok
		rest = remainder
	}

	tok, remainder := nextField(rest)
	if rng := leadingRange(tok); rng != "" {
		r.Range = rng
		return r, true
	}
	if r.Unit == "" && isUnitToken(tok) {
		r.Unit = tok
		tok, _ = nextField(remainder)
		r.Range = leadingRange(tok)
	}
	return r, true
}

// leadingRange returns the range token at the start of tok, allowing an
// opening parenthesis or bracket before it.
func leadingRange(tok string) string {
	tok = strings.TrimLeft(tok, "([")
	rng, _ := ScanRange(tok)
	return rng
}
