package labscan

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/text/width"

	"github.com/tsawler/labscan/catalog"
	"github.com/tsawler/labscan/extract"
	"github.com/tsawler/labscan/format"
	"github.com/tsawler/labscan/log"
	"github.com/tsawler/labscan/model"
	"github.com/tsawler/labscan/ocr"
	"github.com/tsawler/labscan/raster"
	"github.com/tsawler/labscan/telemetry"
	"github.com/tsawler/labscan/textlayer"
)

// PageText is the recognized text of one page.
type PageText struct {
	Number int    `json:"page" yaml:"page"`
	Text   string `json:"text" yaml:"text"`
}

// Extractor provides a fluent interface for extracting lab readings from a
// document. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	path string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		path:     e.path,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

func (e *Extractor) warn(w Warning) {
	e.warnings = append(e.warnings, w)
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Catalog sets the parameter catalog to match against. A nil catalog
// selects catalog.Default().
//
// Example:
//
//	c := catalog.MustNew(catalog.Parameter{Name: "Ferritin", Unit: "ng/mL", Range: "30-400"})
//	results, _, err := labscan.Open("report.pdf").Catalog(c).Results()
func (e *Extractor) Catalog(c *catalog.Catalog) *Extractor {
	newExt := e.clone()
	newExt.options.catalog = c
	return newExt
}

// CatalogFile loads the catalog from a YAML or JSON file. A load error is
// returned by the terminal operation.
func (e *Extractor) CatalogFile(path string) *Extractor {
	newExt := e.clone()
	c, err := catalog.Load(path)
	if err != nil {
		if newExt.err == nil {
			newExt.err = err
		}
		return newExt
	}
	newExt.options.catalog = c
	return newExt
}

// Rasterizer replaces the default raster.Auto document converter.
func (e *Extractor) Rasterizer(r raster.Rasterizer) *Extractor {
	newExt := e.clone()
	newExt.options.rasterizer = r
	return newExt
}

// Recognizer replaces the default Tesseract recognizer.
func (e *Extractor) Recognizer(r ocr.Recognizer) *Extractor {
	newExt := e.clone()
	newExt.options.recognizer = r
	return newExt
}

// Source selects where page text comes from. The default is SourceOCR.
func (e *Extractor) Source(s Source) *Extractor {
	newExt := e.clone()
	newExt.options.source = s
	return newExt
}

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	results, _, err := labscan.Open("report.pdf").Pages(1, 2).Results()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Workers sets how many pages are recognized in parallel. Values below 1
// are treated as 1. Output is always in page order.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		n = 1
	}
	newExt.options.workers = n
	return newExt
}

// Normalize toggles width folding of recognized text. It is on by default
// and maps full-width letters, digits and punctuation to their ASCII forms.
// Superscripts, ligatures and symbols such as µ are left as recognized.
func (e *Extractor) Normalize(on bool) *Extractor {
	newExt := e.clone()
	newExt.options.normalize = on
	return newExt
}

// Language sets the Tesseract language of the default recognizer,
// for example "eng" or "eng+deu".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	if lang != "" {
		newExt.options.language = lang
	}
	return newExt
}

// PageSegMode sets the page segmentation mode of the default recognizer.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	newExt.options.pageSegMode = mode
	return newExt
}

// DPI sets the render resolution of the default rasterizer.
func (e *Extractor) DPI(dpi int) *Extractor {
	newExt := e.clone()
	if dpi > 0 {
		newExt.options.dpi = dpi
	}
	return newExt
}

// Context sets the context that bounds the terminal operation.
func (e *Extractor) Context(ctx context.Context) *Extractor {
	newExt := e.clone()
	newExt.options.ctx = ctx
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageTexts returns the text of each selected page in page order.
//
// When the document cannot be converted to images the result is an empty
// slice, a WarnRasterize warning and a nil error. A recognition failure is
// returned as an error wrapping *ocr.Error.
func (e *Extractor) PageTexts() ([]PageText, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	run := e.clone()
	pages, err := run.collectPages(run.options.context())
	if err != nil {
		return nil, run.warnings, err
	}
	return pages, run.warnings, nil
}

// Text returns the text of all selected pages joined with newlines.
//
// Example:
//
//	text, warnings, err := labscan.Open("report.pdf").Text()
func (e *Extractor) Text() (string, []Warning, error) {
	pages, warnings, err := e.PageTexts()
	if err != nil {
		return "", warnings, err
	}
	return joinPages(pages), warnings, nil
}

// Results extracts the catalog readings found in the document followed by
// its impression remarks.
//
// Example:
//
//	results, warnings, err := labscan.Open("report.pdf").Results()
func (e *Extractor) Results() ([]model.Result, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	run := e.clone()
	ctx := run.options.context()

	pages, err := run.collectPages(ctx)
	if err != nil {
		return nil, run.warnings, err
	}

	_, span := telemetry.StartSpan(ctx, "labscan.extract")
	text := joinPages(pages)
	results := extract.New(run.options.catalog).Parameters(text)
	matched := len(results)
	results = append(results, extract.Impressions(text)...)
	telemetry.EndSpan(span, nil)

	telemetry.RecordMatches(ctx, matched)
	if matched == 0 && len(pages) > 0 {
		run.warn(Warning{Code: WarnNoMatch, Message: "no catalog parameter found"})
	}
	return results, run.warnings, nil
}

// Generic runs the catalog-free pattern extractor over the document text.
// Its results are independent of Results and never merged with them.
func (e *Extractor) Generic() ([]model.Result, []Warning, error) {
	text, warnings, err := e.Text()
	if err != nil {
		return nil, warnings, err
	}
	return extract.Generic(text), warnings, nil
}

// ============================================================================
// Internal Helpers
// ============================================================================

func joinPages(pages []PageText) string {
	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n")
}

// collectPages produces the text of the selected pages from the configured
// source.
func (e *Extractor) collectPages(ctx context.Context) (pages []PageText, err error) {
	ctx, span := telemetry.StartSpan(ctx, "labscan.document",
		attribute.String(telemetry.KeyPath, e.path),
		attribute.String(telemetry.KeySource, e.options.source.String()))
	defer func() {
		telemetry.RecordDocument(ctx, e.options.source.String(), err)
		telemetry.EndSpan(span, err)
	}()

	switch e.options.source {
	case SourceTextLayer:
		return e.fromTextLayer(ctx)
	case SourceAuto:
		if f, ferr := format.DetectFile(e.path); ferr == nil && f == format.PDF {
			layer, lerr := textlayer.Read(ctx, e.path)
			if lerr == nil && textlayer.HasText(layer) {
				log.Infof("using text layer of %s", e.path)
				return e.finishTextLayer(layer)
			}
			if lerr != nil {
				log.Debugf("text layer of %s unavailable: %v", e.path, lerr)
			}
		}
		return e.fromOCR(ctx)
	default:
		return e.fromOCR(ctx)
	}
}

func (e *Extractor) fromTextLayer(ctx context.Context) ([]PageText, error) {
	layer, err := textlayer.Read(ctx, e.path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Errorf("failed to read text layer of %s: %v", e.path, err)
		e.warn(Warning{Code: WarnTextLayer, Message: err.Error()})
		return []PageText{}, nil
	}
	return e.finishTextLayer(layer)
}

func (e *Extractor) finishTextLayer(layer []textlayer.Page) ([]PageText, error) {
	layer, err := selectPages(layer, func(p textlayer.Page) int { return p.Number }, e.options.pages)
	if err != nil {
		return nil, err
	}
	pages := make([]PageText, len(layer))
	for i, p := range layer {
		pages[i] = PageText{Number: p.Number, Text: p.Text}
	}
	return e.finishPages(pages), nil
}

func (e *Extractor) fromOCR(ctx context.Context) ([]PageText, error) {
	rasterizer := e.options.rasterizer
	if rasterizer == nil {
		rasterizer = raster.Auto{DPI: e.options.dpi}
	}

	rctx, span := telemetry.StartSpan(ctx, "labscan.rasterize")
	images, err := rasterizer.Rasterize(rctx, e.path)
	telemetry.EndSpan(span, err)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		log.Errorf("failed to convert %s to images: %v", e.path, err)
		e.warn(Warning{Code: WarnRasterize, Message: err.Error()})
		return []PageText{}, nil
	}
	log.Infof("converted %s to %d image(s)", e.path, len(images))

	images, err = selectPages(images, func(p raster.Page) int { return p.Number }, e.options.pages)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return []PageText{}, nil
	}

	rec, closeRec, err := e.recognizer()
	if err != nil {
		return nil, err
	}
	defer closeRec()

	var pages []PageText
	if e.options.workers > 1 && len(images) > 1 {
		pages, err = e.recognizeConcurrent(ctx, rec, images)
	} else {
		pages, err = e.recognizeSequential(ctx, rec, images)
	}
	if err != nil {
		return nil, err
	}
	return e.finishPages(pages), nil
}

// recognizer returns the configured recognizer or a Tesseract pool built
// from the OCR options, and a function releasing it.
func (e *Extractor) recognizer() (ocr.Recognizer, func(), error) {
	if e.options.recognizer != nil {
		return e.options.recognizer, func() {}, nil
	}
	pool, err := ocr.NewPool(
		ocr.WithLanguage(e.options.language),
		ocr.WithPageSegMode(e.options.pageSegMode),
		ocr.WithDPI(e.options.dpi),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OCR pool: %w", err)
	}
	return pool, func() { _ = pool.Close() }, nil
}

func (e *Extractor) recognizeSequential(ctx context.Context, rec ocr.Recognizer, images []raster.Page) ([]PageText, error) {
	pages := make([]PageText, len(images))
	for i, img := range images {
		text, err := recognizePage(ctx, rec, img)
		if err != nil {
			return nil, err
		}
		pages[i] = PageText{Number: img.Number, Text: text}
	}
	return pages, nil
}

func (e *Extractor) recognizeConcurrent(ctx context.Context, rec ocr.Recognizer, images []raster.Page) ([]PageText, error) {
	pool, err := ants.NewPool(e.options.workers)
	if err != nil {
		return nil, fmt.Errorf("failed to create page worker pool: %w", err)
	}
	defer pool.Release()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pages := make([]PageText, len(images))
	errs := make([]error, len(images))
	var wg sync.WaitGroup
	for i, img := range images {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			text, err := recognizePage(ctx, rec, img)
			if err != nil {
				errs[i] = err
				cancel()
				return
			}
			pages[i] = PageText{Number: img.Number, Text: text}
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("failed to submit page %d: %w", img.Number, err)
			cancel()
			break
		}
	}
	wg.Wait()

	if err := firstError(errs); err != nil {
		return nil, err
	}
	return pages, nil
}

// firstError returns the first error in page order, preferring the failure
// that caused a cancellation over the cancellations it caused.
func firstError(errs []error) error {
	var canceled error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !errors.Is(err, context.Canceled) {
			return err
		}
		if canceled == nil {
			canceled = err
		}
	}
	return canceled
}

func recognizePage(ctx context.Context, rec ocr.Recognizer, img raster.Page) (string, error) {
	ctx, span := telemetry.StartSpan(ctx, "labscan.recognize", attribute.Int(telemetry.KeyPage, img.Number))
	start := time.Now()
	text, err := rec.Recognize(ctx, img.Image)
	telemetry.RecordPage(ctx, time.Since(start), err)
	if err != nil {
		var oe *ocr.Error
		if !errors.As(err, &oe) {
			err = &ocr.Error{Page: img.Number, Err: err}
		}
		telemetry.EndSpan(span, err)
		return "", err
	}
	telemetry.EndSpan(span, nil)
	log.Debugf("page %d text:\n%s", img.Number, text)
	return text, nil
}

// finishPages folds page text to narrow width and warns about pages without text.
func (e *Extractor) finishPages(pages []PageText) []PageText {
	for i := range pages {
		if e.options.normalize {
			pages[i].Text = width.Narrow.String(pages[i].Text)
		}
		if strings.TrimSpace(pages[i].Text) == "" {
			e.warn(Warning{Code: WarnEmptyPage, Message: "no text recognized", Page: pages[i].Number})
		}
	}
	return pages
}

// selectPages keeps the items whose page number was requested, in page
// order. With no request every item is kept. The page count is the highest
// page number present.
func selectPages[T any](items []T, number func(T) int, requested []int) ([]T, error) {
	if len(requested) == 0 {
		return items, nil
	}

	pageCount := 0
	for _, it := range items {
		if n := number(it); n > pageCount {
			pageCount = n
		}
	}

	want := make(map[int]bool, len(requested))
	for _, p := range requested {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		want[p] = true
	}

	selected := make([]T, 0, len(want))
	for _, it := range items {
		if want[number(it)] {
			selected = append(selected, it)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return number(selected[i]) < number(selected[j])
	})
	return selected, nil
}
