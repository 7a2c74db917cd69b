// Package catalog defines the set of lab parameters the extractor looks for.
//
// A [Catalog] is an ordered, immutable list of [Parameter] definitions. Order
// matters: the extractor processes entries in catalog order and reports
// results in the same order.
//
// # Default Catalog
//
// [Default] returns the built-in catalog of eight common blood panel
// parameters (Hemoglobin, WBC Count, Platelet Count, Blood Glucose,
// Cholesterol, HDL Cholesterol, LDL Cholesterol and Triglycerides).
//
// # Custom Catalogs
//
// Catalogs can be built in code with [New] or loaded from YAML or JSON with
// [Load] and [Parse]:
//
//	parameters:
//	  - name: Hemoglobin
//	    unit: g/dL
//	    range: 12.0-16.0
//	  - name: ESR
//	    unit: mm/hr
//	    range: 0-20
//
// Loaded documents are checked against a CUE schema before use.
package catalog
