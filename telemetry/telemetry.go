// Package telemetry holds the OpenTelemetry instruments and tracer used by
// the labscan pipeline.
//
// Instruments are created from the global otel providers, so nothing is
// exported until the application installs real providers with
// otel.SetMeterProvider and otel.SetTracerProvider. Setup rebinds the
// instruments to explicit providers, which is what tests do.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ScopeName is the instrumentation scope of every labscan meter and tracer.
const ScopeName = "github.com/tsawler/labscan"

// Attribute keys.
const (
	KeySource  = "labscan.source"
	KeyOutcome = "labscan.outcome"
	KeyPage    = "labscan.page"
	KeyPath    = "labscan.document.path"
)

// Outcome values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metric names.
const (
	MetricDocuments         = "labscan.documents"
	MetricPages             = "labscan.pages"
	MetricParameters        = "labscan.parameters.matched"
	MetricRecognizeDuration = "labscan.recognize.duration"
)

var (
	mu     sync.RWMutex
	tracer trace.Tracer

	documents         metric.Int64Counter
	pages             metric.Int64Counter
	parameters        metric.Int64Counter
	recognizeDuration metric.Float64Histogram
)

func init() {
	if err := Setup(otel.GetMeterProvider(), otel.GetTracerProvider()); err != nil {
		otel.Handle(err)
	}
}

// Setup creates the labscan instruments and tracer from the given providers.
func Setup(mp metric.MeterProvider, tp trace.TracerProvider) error {
	meter := mp.Meter(ScopeName)

	docCnt, err := meter.Int64Counter(MetricDocuments,
		metric.WithDescription("Documents processed"),
		metric.WithUnit("{document}"))
	if err != nil {
		return err
	}
	pageCnt, err := meter.Int64Counter(MetricPages,
		metric.WithDescription("Pages recognized"),
		metric.WithUnit("{page}"))
	if err != nil {
		return err
	}
	paramCnt, err := meter.Int64Counter(MetricParameters,
		metric.WithDescription("Catalog parameters matched"),
		metric.WithUnit("{parameter}"))
	if err != nil {
		return err
	}
	dur, err := meter.Float64Histogram(MetricRecognizeDuration,
		metric.WithDescription("Time spent recognizing one page"),
		metric.WithUnit("s"))
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	tracer = tp.Tracer(ScopeName)
	documents, pages, parameters, recognizeDuration = docCnt, pageCnt, paramCnt, dur
	return nil
}

// StartSpan starts a span named name under ctx.
func StartSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	mu.RLock()
	t := tracer
	mu.RUnlock()
	return t.Start(ctx, name, trace.WithAttributes(attrs...))
}

// EndSpan records err on span, if any, and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// RecordDocument counts one processed document.
func RecordDocument(ctx context.Context, source string, err error) {
	mu.RLock()
	c := documents
	mu.RUnlock()
	c.Add(ctx, 1, metric.WithAttributes(
		attribute.String(KeySource, source),
		attribute.String(KeyOutcome, outcome(err)),
	))
}

// RecordPage counts one recognized page and its recognition time.
func RecordPage(ctx context.Context, d time.Duration, err error) {
	mu.RLock()
	c, h := pages, recognizeDuration
	mu.RUnlock()
	attrs := metric.WithAttributes(attribute.String(KeyOutcome, outcome(err)))
	c.Add(ctx, 1, attrs)
	h.Record(ctx, d.Seconds(), attrs)
}

// RecordMatches adds n matched catalog parameters.
func RecordMatches(ctx context.Context, n int) {
	if n <= 0 {
		return
	}
	mu.RLock()
	c := parameters
	mu.RUnlock()
	c.Add(ctx, int64(n))
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
