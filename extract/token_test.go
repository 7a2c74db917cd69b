package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single", "Hemoglobin 13.5", []string{"Hemoglobin 13.5"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank line kept", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\rc", []string{"a", "b", "c"}},
		{"form feed", "page one\fpage two", []string{"page one", "page two"}},
		{"unicode separators", "a\u2028b\u2029c\u0085d", []string{"a", "b", "c", "d"}},
		{"information separators", "a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"unit separator kept", "a\x1fb", []string{"a\x1fb"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text))
		})
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in      string
		wantTok string
		wantN   int
	}{
		{"13.5 g/dL", "13.5", 4},
		{"190", "190", 3},
		{"12.", "12", 2},
		{"1.2.3", "1.2", 3},
		{".5", "", 0},
		{"abc", "", 0},
		{"", "", 0},
		{"4000-11000", "4000", 4},
		{"１３.５ g/dL", "１３.５", 10},
		{"٧٤", "٧٤", 4},
		{"10³/µL", "10", 2},
		{"²", "", 0},
	}

	for _, tt := range tests {
		tok, n := ScanNumber(tt.in)
		assert.Equal(t, tt.wantTok, tok, "ScanNumber(%q)", tt.in)
		assert.Equal(t, tt.wantN, n, "ScanNumber(%q)", tt.in)
	}
}

func TestScanRange(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.0-16.0", "12.0-16.0"},
		{"70–110 mg/dL", "70–110"},
		{"4000-11000", "4000-11000"},
		{"12-", ""},
		{"-12", ""},
		{"12", ""},
		{"12/16", ""},
		{"<200", ""},
	}

	for _, tt := range tests {
		got, n := ScanRange(tt.in)
		assert.Equal(t, tt.want, got, "ScanRange(%q)", tt.in)
		assert.Equal(t, len(tt.want), n, "ScanRange(%q)", tt.in)
	}
}

func TestIsRange(t *testing.T) {
	assert.True(t, IsRange("1.5-4.0"))
	assert.True(t, IsRange("70–110"))
	assert.False(t, IsRange("70-110)"))
	assert.False(t, IsRange("g/dL"))
}

func TestNumberAfter(t *testing.T) {
	assert.Equal(t, "13.5", numberAfter(": 13.5 g/dL"))
	assert.Equal(t, "7000", numberAfter(" count (cells) 7000"))
	assert.Equal(t, "", numberAfter(": abnormal, see note"))
	assert.Equal(t, "10", numberAfter(" (x10³/µL): 7.5"))
	assert.Equal(t, "１２", numberAfter(" count：１２"))
	assert.Equal(t, "", numberAfter(" x³"))
}

func TestIsUnitToken(t *testing.T) {
	for _, tok := range []string{"g/dL", "/mm3", "lakhs", "%", "µL", "mg/dL"} {
		assert.True(t, isUnitToken(tok), tok)
	}
	for _, tok := range []string{"", "12-16", "190", "--"} {
		assert.False(t, isUnitToken(tok), tok)
	}
}
