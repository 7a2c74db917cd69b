package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const enDash = '–'

// Lines splits text into lines. Besides "\n", "\r\n" and "\r" it breaks on
// vertical tab, form feed, the file, group and record separators, NEL and the
// Unicode line and paragraph separators. OCR engines end pages with form feeds.
func Lines(text string) []string {
	if text == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\r':
			lines = append(lines, text[start:i])
			i += size
			if i < len(text) && text[i] == '\n' {
				i++
			}
			start = i
			continue
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, text[start:i])
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// digitLen returns the byte length of the decimal digit starting s, or 0.
// Digits of any script count, as with unicode.IsDigit.
func digitLen(s string) int {
	r, size := utf8.DecodeRuneInString(s)
	if !unicode.IsDigit(r) {
		return 0
	}
	return size
}

func skipDigits(s string, i int) int {
	for i < len(s) {
		n := digitLen(s[i:])
		if n == 0 {
			break
		}
		i += n
	}
	return i
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// ScanNumber reads a numeric token at the start of s and returns it with its
// length in bytes. It returns ("", 0) when s does not start with a digit.
func ScanNumber(s string) (string, int) {
	i := skipDigits(s, 0)
	if i == 0 {
		return "", 0
	}
	if i < len(s) && s[i] == '.' {
		if j := skipDigits(s, i+1); j > i+1 {
			i = j
		}
	}
	return s[:i], i
}

// ScanRange reads a range token at the start of s and returns it with its
// length in bytes. It returns ("", 0) when s does not start with a range.
func ScanRange(s string) (string, int) {
	_, n := ScanNumber(s)
	if n == 0 || n >= len(s) {
		return "", 0
	}

	sep := 0
	switch r, size := utf8.DecodeRuneInString(s[n:]); r {
	case '-', enDash:
		sep = size
	default:
		return "", 0
	}

	_, m := ScanNumber(s[n+sep:])
	if m == 0 {
		return "", 0
	}
	end := n + sep + m
	return s[:end], end
}

// IsRange reports whether tok consists of exactly one range token.
func IsRange(tok string) bool {
	_, n := ScanRange(tok)
	return n > 0 && n == len(tok)
}

// numberAfter returns the first numeric token in s, skipping any non-digit
// characters before it.
func numberAfter(s string) string {
	for i, r := range s {
		if unicode.IsDigit(r) {
			tok, _ := ScanNumber(s[i:])
			return tok
		}
	}
	return ""
}

// isUnitToken reports whether tok can stand for a unit of measure.
func isUnitToken(tok string) bool {
	if tok == "" || IsRange(tok) {
		return false
	}
	for _, r := range tok {
		if unicode.IsLetter(r) || r == '/' || r == '%' || r == 'µ' {
			return true
		}
	}
	return false
}

// nextField splits off the first whitespace-delimited field of s and returns
// it with the remainder.
func nextField(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := strings.IndexFunc(s, unicode.IsSpace)
	if end < 0 {
		return s, ""
	}
	return s[:end], s[end:]
}
