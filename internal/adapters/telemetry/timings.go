package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/stitch/internal/core/ports"
)

// subjectKeys are the span attributes that name what a span worked on, in lookup order.
var subjectKeys = []string{"bundle", "ident", "chunk"}

// TimingsExporter logs the duration of every finished span.
type TimingsExporter struct {
	log ports.Logger
}

// NewTimingsExporter creates an exporter that reports through log.
func NewTimingsExporter(log ports.Logger) *TimingsExporter {
	return &TimingsExporter{log: log}
}

// ExportSpans logs one line per span.
func (e *TimingsExporter) ExportSpans(_ context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, s := range spans {
		e.log.Info(formatTiming(s))
	}
	return nil
}

// Shutdown does nothing.
func (e *TimingsExporter) Shutdown(_ context.Context) error {
	return nil
}

func formatTiming(s sdktrace.ReadOnlySpan) string {
	var b strings.Builder
	b.WriteString(s.Name())

	attrs := make(map[string]string, len(s.Attributes()))
	for _, kv := range s.Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	for _, k := range subjectKeys {
		if v, ok := attrs[k]; ok {
			fmt.Fprintf(&b, " %s", v)
			break
		}
	}

	d := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	fmt.Fprintf(&b, " took %s", d)
	return b.String()
}

// InstallTimings makes the global tracer provider report span durations through log.
// The returned function flushes the provider.
func InstallTimings(log ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(NewTimingsExporter(log)))
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
