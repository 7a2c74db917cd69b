// Package model provides the data structures produced by lab report extraction.
//
// # Results
//
// A [Result] is one extracted reading: a parameter name, its value as it
// appeared in the text, and the unit and reference range that go with it.
//
//	r := model.Result{Parameter: "Hemoglobin", Value: "13.5", Unit: "g/dL", Range: "12.0-16.0"}
//
// Values are kept as text. An empty Value means the parameter was found in
// the report but no number followed it.
//
// # Impressions
//
// Free-text remark lines are reported as results whose Parameter is
// [ImpressionParameter] and whose Unit and Range are empty. Use
// [Result.IsImpression] to tell them apart from catalog readings.
package model
