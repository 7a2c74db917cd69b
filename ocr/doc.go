// Package ocr provides OCR (Optical Character Recognition) capabilities
// for turning scanned report pages into text.
//
// The [Recognizer] interface is the seam the extraction pipeline depends on:
// given an encoded page image, return its text. Any engine can be plugged in,
// and [RecognizerFunc] adapts plain functions for tests.
//
// The bundled engine wraps Tesseract via gosseract. It requires Tesseract to
// be installed on the system and the "ocr" build tag:
//
//	go build -tags ocr
//
// On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the tag, [New] and [NewPool] return [ErrOCRNotEnabled].
//
// [Client] wraps a single Tesseract handle and is not safe for concurrent
// use. [Pool] keeps one handle per concurrent caller and is what the pipeline
// uses when pages are recognized in parallel.
package ocr
