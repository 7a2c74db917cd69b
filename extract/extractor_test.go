package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/model"
)

const sampleReport = `CITY DIAGNOSTICS LAB
Patient: Jane Doe          Age: 34
COMPLETE BLOOD COUNT
Hemoglobin          13.5   g/dL      12.0-16.0
WBC Count           7,400  /mm3      4000-11000
Platelet Count      2.5    lakhs     1.5-4.0
LIPID PROFILE
Cholesterol, Total  182    mg/dL     <200
HDL Cholesterol     52     mg/dL     >40
LDL Cholesterol     101    mg/dL     <130
Triglycerides       145    mg/dL     <150
IMPRESSION: Mild anemia noted
`

func TestParameters_ScenarioA(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Hemoglobin 13.5 g/dL 12.0-16.0")

	assert.Equal(t, []model.Result{
		{Parameter: "Hemoglobin", Value: "13.5", Unit: "g/dL", Range: "12.0-16.0"},
	}, got)
}

func TestParameters_ScenarioB_NoDigits(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Blood Glucose: abnormal, see note")

	assert.Equal(t, []model.Result{
		{Parameter: "Blood Glucose", Value: "", Unit: "mg/dL", Range: "70-110"},
	}, got)
}

func TestParameters_ScenarioC_NoMentions(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Patient: John Smith\nReferred by: Dr. Rao\nSample collected 09:30")

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParameters_ScenarioE_SubstringOrder(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Cholesterol 190\nHDL Cholesterol 45")

	require.Len(t, got, 2)
	assert.Equal(t, model.Result{Parameter: "Cholesterol", Value: "190", Unit: "mg/dL", Range: "<200"}, got[0])
	assert.Equal(t, model.Result{Parameter: "HDL Cholesterol", Value: "45", Unit: "mg/dL", Range: ">40"}, got[1])
}

func TestParameters_SubstringFalsePositive(t *testing.T) {
	// The shorter name matches the first line containing it, even when that
	// line belongs to a longer name.
	ex := New(catalog.Default())

	got := ex.Parameters("HDL Cholesterol 45\nCholesterol 190")

	require.Len(t, got, 2)
	assert.Equal(t, "Cholesterol", got[0].Parameter)
	assert.Equal(t, "45", got[0].Value)
	assert.Equal(t, "HDL Cholesterol", got[1].Parameter)
	assert.Equal(t, "45", got[1].Value)
}

func TestParameters_FirstLineWinsEvenWithoutValue(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Hemoglobin (see remarks)\nHemoglobin 13.5")

	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].Value)
}

func TestParameters_CaseInsensitive(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("HEMOGLOBIN ..... 11.2\nplatelet count: 3.1 lakhs")

	require.Len(t, got, 2)
	assert.Equal(t, "Hemoglobin", got[0].Parameter)
	assert.Equal(t, "11.2", got[0].Value)
	assert.Equal(t, "Platelet Count", got[1].Parameter)
	assert.Equal(t, "3.1", got[1].Value)
}

func TestParameters_FullReport(t *testing.T) {
	ex := New(catalog.Default())
	c := catalog.Default()

	got := ex.Parameters(sampleReport)

	require.Len(t, got, 7)
	want := map[string]string{
		"Hemoglobin":      "13.5",
		"WBC Count":       "7",
		"Platelet Count":  "2.5",
		"Cholesterol":     "182",
		"HDL Cholesterol": "52",
		"LDL Cholesterol": "101",
		"Triglycerides":   "145",
	}
	for _, r := range got {
		assert.Equal(t, want[r.Parameter], r.Value, r.Parameter)

		p, ok := c.Lookup(r.Parameter)
		require.True(t, ok)
		assert.Equal(t, p.Unit, r.Unit)
		assert.Equal(t, p.Range, r.Range)
	}
	_, found := model.Results(got).Find("Blood Glucose")
	assert.False(t, found)
}

func TestParameters_CatalogOrderNotLineOrder(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Triglycerides 120\nHemoglobin 14")

	require.Len(t, got, 2)
	assert.Equal(t, "Hemoglobin", got[0].Parameter)
	assert.Equal(t, "Triglycerides", got[1].Parameter)
}

func TestParameters_Bounded(t *testing.T) {
	ex := New(catalog.Default())
	text := strings.Repeat(sampleReport, 5) + "\nBlood Glucose 98\nBlood Glucose 140"

	got := ex.Parameters(text)

	assert.LessOrEqual(t, len(got), catalog.Default().Len())
	seen := make(map[string]bool)
	for _, r := range got {
		assert.False(t, seen[r.Parameter], "duplicate result for %s", r.Parameter)
		seen[r.Parameter] = true
	}
}

func TestParameters_Idempotent(t *testing.T) {
	ex := New(catalog.Default())

	first := ex.Extract(sampleReport)
	second := ex.Extract(sampleReport)

	assert.Equal(t, first, second)
}

func TestParameters_SyntheticCatalog(t *testing.T) {
	c := catalog.MustNew(
		catalog.Parameter{Name: "ESR", Unit: "mm/hr", Range: "0-20"},
		catalog.Parameter{Name: "CRP", Unit: "mg/L", Range: "<5"},
	)
	ex := New(c)

	got := ex.Parameters("CRP 12.4 mg/L\nESR - 35 mm in first hour")

	assert.Equal(t, []model.Result{
		{Parameter: "ESR", Value: "35", Unit: "mm/hr", Range: "0-20"},
		{Parameter: "CRP", Value: "12.4", Unit: "mg/L", Range: "<5"},
	}, got)
}

func TestNew_NilCatalog(t *testing.T) {
	ex := New(nil)
	assert.Equal(t, 8, ex.Catalog().Len())
}

func TestImpressions_ScenarioD(t *testing.T) {
	got := Impressions("IMPRESSION: Mild anemia noted")

	assert.Equal(t, []model.Result{
		{Parameter: "Impression", Value: "Mild anemia noted", Unit: "", Range: ""},
	}, got)
}

func TestImpressions_EveryLine(t *testing.T) {
	text := "Clinical impression - normal study\nHemoglobin 13\nImpression: Follow up: 3 months"

	got := Impressions(text)

	require.Len(t, got, 2)
	assert.Equal(t, "Clinical impression - normal study", got[0].Value)
	assert.Equal(t, "Follow up: 3 months", got[1].Value)
}

func TestExtract_ImpressionsTrailCatalog(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Extract(sampleReport)

	require.Len(t, got, 8)
	last := got[len(got)-1]
	assert.True(t, last.IsImpression())
	assert.Equal(t, "Mild anemia noted", last.Value)
	for _, r := range got[:len(got)-1] {
		assert.False(t, r.IsImpression())
	}
}

func TestExtract_UnicodeTextKept(t *testing.T) {
	ex := New(catalog.Default())
	text := "WBC Count (x10³/µL): 7.5\nImpression: Platelets 2.1 x10⁵/µL, ﬁndings normal"

	got := ex.Extract(text)

	require.Len(t, got, 2)
	assert.Equal(t, "WBC Count", got[0].Parameter)
	assert.Equal(t, "10", got[0].Value)
	assert.Equal(t, "Platelets 2.1 x10⁵/µL, ﬁndings normal", got[1].Value)
}

func TestParameters_NonASCIIDigits(t *testing.T) {
	ex := New(catalog.Default())

	got := ex.Parameters("Hemoglobin: ١٣.٥ g/dL")

	require.Len(t, got, 1)
	assert.Equal(t, "١٣.٥", got[0].Value)
}
