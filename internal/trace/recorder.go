// Package trace records navigation transitions as OpenTelemetry spans and
// keeps a short in-memory history of them.
package trace

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	tracerName = "portanav/ui"

	// DefaultHistory is how many transitions Recent keeps by default.
	DefaultHistory = 50
)

// Span attribute keys.
const (
	AttrTitle = attribute.Key("portanav.view.title")
	AttrDepth = attribute.Key("portanav.stack.depth")
)

// Transition is one recorded view change.
type Transition struct {
	Kind  string
	Title string
	Depth int
	At    time.Time
}

// Recorder turns view changes into spans named "nav.<kind>".
type Recorder struct {
	mu       sync.RWMutex
	tracer   oteltrace.Tracer
	provider *sdktrace.TracerProvider // set when the recorder owns it
	recent   []Transition             // oldest first
	max      int
}

// NewRecorder records spans with tp. maxHistory <= 0 means DefaultHistory.
func NewRecorder(tp oteltrace.TracerProvider, maxHistory int) *Recorder {
	if maxHistory <= 0 {
		maxHistory = DefaultHistory
	}
	return &Recorder{
		tracer: tp.Tracer(tracerName),
		max:    maxHistory,
	}
}

// NewOTLPRecorder exports spans over OTLP/HTTP if OTEL_EXPORTER_OTLP_ENDPOINT
// is set. Otherwise spans go nowhere and only the history is kept.
func NewOTLPRecorder(ctx context.Context, maxHistory int) (*Recorder, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return NewRecorder(noop.NewTracerProvider(), maxHistory), nil
	}

	exporter, err := otlptracehttp.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "portanav"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	r := NewRecorder(provider, maxHistory)
	r.provider = provider
	return r, nil
}

// exporterOptions leaves URL endpoints ("http://host:4318") to the exporter,
// which reads the variable itself and picks TLS from the scheme. A bare
// host:port is passed through as a plain-HTTP endpoint.
func exporterOptions(endpoint string) []otlptracehttp.Option {
	if strings.Contains(endpoint, "://") {
		return nil
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

// Transition records one view change.
func (r *Recorder) Transition(kind, title string, depth int) {
	_, span := r.tracer.Start(context.Background(), "nav."+kind,
		oteltrace.WithAttributes(
			AttrTitle.String(title),
			AttrDepth.Int(depth),
		),
	)
	span.End()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.recent = append(r.recent, Transition{Kind: kind, Title: title, Depth: depth, At: time.Now()})
	if len(r.recent) > r.max {
		r.recent = r.recent[len(r.recent)-r.max:]
	}
}

// Recent returns recorded transitions, newest first.
func (r *Recorder) Recent() []Transition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Transition, len(r.recent))
	for i, t := range r.recent {
		out[len(r.recent)-1-i] = t
	}
	return out
}

// Shutdown flushes and closes an owned exporter.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil || r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
