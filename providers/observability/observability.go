package observability

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// Provider bundles the three signals a tool call can emit. Implementations
// are stored in a context with [ContextWithObserver] and picked up by
// tool.Tool.Call.
type Provider interface {
	Tracer
	Metrics
	Logger
}

// --- TRACING ---

// Tracer opens spans around units of work such as a single tool call.
type Tracer interface {
	// StartSpan starts a span named name and returns a context carrying it,
	// so SpanFromContext finds it further down the call.
	StartSpan(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Span is an open unit of work. End may be called more than once.
type Span interface {
	// End closes the span.
	End()
	// SetAttributes attaches attrs, such as operands and the result.
	SetAttributes(attrs ...Attribute)
	// SetStatus marks the outcome of the work.
	SetStatus(code StatusCode, description string)
	// RecordError attaches err without changing the status.
	RecordError(err error)
	// AddEvent records a point in time inside the span.
	AddEvent(name string, attrs ...Attribute)
}

// StatusCode is the outcome recorded on a span.
type StatusCode int

const (
	StatusUnset StatusCode = iota
	StatusOK
	StatusError
)

// String returns "unset", "ok" or "error". The same strings are used as the
// status label on call metrics.
func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unset"
	}
}

// --- METRICS ---

// Metrics hands out named instruments. Asking twice for the same name
// returns the same instrument.
type Metrics interface {
	Counter(name string) Counter
	Histogram(name string) Histogram
}

// Counter accumulates a monotonically increasing total, e.g. calls made.
type Counter interface {
	Add(ctx context.Context, value int64, attrs ...Attribute)
}

// Histogram records individual observations, e.g. call latency in ms.
type Histogram interface {
	Record(ctx context.Context, value float64, attrs ...Attribute)
}

// --- LOGGING ---

// Logger writes leveled messages. Trace sits below Debug.
type Logger interface {
	Trace(ctx context.Context, msg string, attrs ...Attribute)
	Debug(ctx context.Context, msg string, attrs ...Attribute)
	Info(ctx context.Context, msg string, attrs ...Attribute)
	Warn(ctx context.Context, msg string, attrs ...Attribute)
	Error(ctx context.Context, msg string, attrs ...Attribute)
}

// --- ATTRIBUTES ---

// Attribute is a key and a value attached to spans, events, metrics and
// log records. Keys come from semconv.go.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int64(key string, value int64) Attribute {
	return Attribute{Key: key, Value: value}
}

// Float64 holds operands and results. Non-finite values are kept as is.
func Float64(key string, value float64) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration keeps the time.Duration; each backend picks its own unit.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value}
}

// Error stores err's message under AttrError. A nil err gives an empty value.
func Error(err error) Attribute {
	if err == nil {
		return Attribute{Key: AttrError, Value: ""}
	}
	return Attribute{Key: AttrError, Value: err.Error()}
}

// DefaultMaxStringLength bounds serialized tool input and output recorded on spans.
const DefaultMaxStringLength = 500

// TruncateString keeps the first maxLen runes of s and notes the original
// rune count. The result is valid UTF-8 whenever s is. A non-positive
// maxLen means DefaultMaxStringLength.
func TruncateString(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultMaxStringLength
	}
	total := utf8.RuneCountInString(s)
	if total <= maxLen {
		return s
	}

	cut, runes := 0, 0
	for i := range s {
		if runes == maxLen {
			cut = i
			break
		}
		runes++
	}
	return fmt.Sprintf("%s... (truncated, total: %d chars)", s[:cut], total)
}
