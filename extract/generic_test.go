package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/labscan/model"
)

func TestGeneric(t *testing.T) {
	tests := []struct {
		name string
		line string
		want model.Result
		ok   bool
	}{
		{
			name: "full reading",
			line: "Hemoglobin 13.5 g/dL 12.0-16.0",
			want: model.Result{Parameter: "Hemoglobin", Value: "13.5", Unit: "g/dL", Range: "12.0-16.0"},
			ok:   true,
		},
		{
			name: "en dash range",
			line: "Blood Glucose   98 mg/dL 70–110",
			want: model.Result{Parameter: "Blood Glucose", Value: "98", Unit: "mg/dL", Range: "70–110"},
			ok:   true,
		},
		{
			name: "slash unit",
			line: "WBC Count 7000 /mm3 4000-11000",
			want: model.Result{Parameter: "WBC Count", Value: "7000", Unit: "/mm3", Range: "4000-11000"},
			ok:   true,
		},
		{
			name: "value only",
			line: "Triglycerides 145",
			want: model.Result{Parameter: "Triglycerides", Value: "145"},
			ok:   true,
		},
		{
			name: "range without unit",
			line: "Platelet Count 2.5 1.5-4.0",
			want: model.Result{Parameter: "Platelet Count", Value: "2.5", Range: "1.5-4.0"},
			ok:   true,
		},
		{
			name: "glued unit",
			line: "Hemoglobin 13.5g/dL (12.0-16.0)",
			want: model.Result{Parameter: "Hemoglobin", Value: "13.5", Unit: "g/dL", Range: "12.0-16.0"},
			ok:   true,
		},
		{
			name: "tabs between columns",
			line: "LDL Cholesterol\t101\tmg/dL",
			want: model.Result{Parameter: "LDL Cholesterol", Value: "101", Unit: "mg/dL"},
			ok:   true,
		},
		{
			name: "unit without range is not a range",
			line: "Cholesterol 190 mg/dL <200",
			want: model.Result{Parameter: "Cholesterol", Value: "190", Unit: "mg/dL"},
			ok:   true,
		},
		{name: "colon after name", line: "Hemoglobin: 13.5", ok: false},
		{name: "no whitespace before number", line: "Hb13.5", ok: false},
		{name: "starts with number", line: "13.5 Hemoglobin", ok: false},
		{name: "only spaces before number", line: "   13.5", ok: false},
		{name: "comma after number", line: "Hemoglobin 13.5, normal", ok: false},
		{name: "no number", line: "Hemoglobin normal", ok: false},
		{name: "empty", line: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Generic(tt.line)
			if !tt.ok {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestGeneric_LineOrder(t *testing.T) {
	text := "LAB REPORT\nTriglycerides 145 mg/dL\nPatient: J. Doe\nHemoglobin 13.5 g/dL 12.0-16.0\n"

	got := Generic(text)

	require.Len(t, got, 2)
	assert.Equal(t, "Triglycerides", got[0].Parameter)
	assert.Equal(t, "Hemoglobin", got[1].Parameter)
}

func TestGeneric_IndependentOfCatalog(t *testing.T) {
	got := Generic("Serum Creatinine 0.9 mg/dL 0.6-1.2")

	require.Len(t, got, 1)
	assert.Equal(t, "Serum Creatinine", got[0].Parameter)
}

func TestGeneric_EmptyNotNil(t *testing.T) {
	got := Generic("nothing here")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
