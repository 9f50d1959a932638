package otelobs

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MatanReuvenTal/devops-lab/providers/observability"
)

// InstrumentationName identifies spans created by this module.
const InstrumentationName = "github.com/MatanReuvenTal/devops-lab"

// Option configures a Tracer.
type Option func(*Tracer)

// WithTracerProvider uses tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(t *Tracer) {
		t.provider = tp
	}
}

// Tracer implements observability.Tracer with OpenTelemetry.
type Tracer struct {
	provider trace.TracerProvider
	tracer   trace.Tracer
}

var _ observability.Tracer = (*Tracer)(nil)

// New creates a Tracer. Without options it uses otel.GetTracerProvider(),
// so spans follow whatever the host application registered globally.
func New(opts ...Option) *Tracer {
	t := &Tracer{}
	for _, opt := range opts {
		opt(t)
	}
	if t.provider == nil {
		t.provider = otel.GetTracerProvider()
	}
	t.tracer = t.provider.Tracer(InstrumentationName)
	return t
}

// StartSpan starts an OTel span as a child of any span already in ctx.
func (t *Tracer) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	ctx, s := t.tracer.Start(ctx, name, trace.WithAttributes(toOTel(attrs)...))
	span := &otelSpan{span: s}
	return observability.ContextWithSpan(ctx, span), span
}

type otelSpan struct {
	span trace.Span
}

func (s *otelSpan) End() {
	s.span.End()
}

func (s *otelSpan) SetAttributes(attrs ...observability.Attribute) {
	s.span.SetAttributes(toOTel(attrs)...)
}

func (s *otelSpan) SetStatus(code observability.StatusCode, description string) {
	switch code {
	case observability.StatusOK:
		s.span.SetStatus(codes.Ok, description)
	case observability.StatusError:
		s.span.SetStatus(codes.Error, description)
	default:
		s.span.SetStatus(codes.Unset, description)
	}
}

func (s *otelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
}

func (s *otelSpan) AddEvent(name string, attrs ...observability.Attribute) {
	s.span.AddEvent(name, trace.WithAttributes(toOTel(attrs)...))
}

// toOTel converts attributes to OTel key-values. Durations become
// milliseconds; unknown types are formatted with %v.
func toOTel(attrs []observability.Attribute) []attribute.KeyValue {
	out := make([]attribute.KeyValue, 0, len(attrs))
	for _, a := range attrs {
		switch v := a.Value.(type) {
		case string:
			out = append(out, attribute.String(a.Key, v))
		case bool:
			out = append(out, attribute.Bool(a.Key, v))
		case int:
			out = append(out, attribute.Int(a.Key, v))
		case int64:
			out = append(out, attribute.Int64(a.Key, v))
		case float64:
			out = append(out, attribute.Float64(a.Key, v))
		case time.Duration:
			out = append(out, attribute.Float64(a.Key, float64(v)/float64(time.Millisecond)))
		case []string:
			out = append(out, attribute.StringSlice(a.Key, v))
		default:
			out = append(out, attribute.String(a.Key, fmt.Sprintf("%v", v)))
		}
	}
	return out
}

// Provider is an observability.Provider whose spans go to OpenTelemetry and
// whose metrics and logs go to a base provider.
type Provider struct {
	observability.Metrics
	observability.Logger
	tracer *Tracer
}

var _ observability.Provider = (*Provider)(nil)

// NewProvider wraps base, replacing its tracing with OpenTelemetry.
func NewProvider(base observability.Provider, opts ...Option) *Provider {
	return &Provider{
		Metrics: base,
		Logger:  base,
		tracer:  New(opts...),
	}
}

// StartSpan delegates to the OpenTelemetry tracer.
func (p *Provider) StartSpan(ctx context.Context, name string, attrs ...observability.Attribute) (context.Context, observability.Span) {
	return p.tracer.StartSpan(ctx, name, attrs...)
}
