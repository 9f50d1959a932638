package slogobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Handler is a slog.Handler that writes compact, pretty or JSON records.
// Attributes keep the order in which they were added.
type Handler struct {
	format Format
	level  slog.Leveler
	output io.Writer
	colors bool
	mu     *sync.Mutex
	attrs  []slog.Attr
	prefix string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	Format Format
	// Level is the minimum level written.
	Level slog.Leveler
	// Output defaults to os.Stdout.
	Output io.Writer
	// Colors forces ANSI colors. Terminals get colors regardless, except in JSON format.
	Colors bool
}

// NewHandler creates a Handler with the given options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	h := &Handler{
		format: opts.Format,
		level:  opts.Level,
		output: opts.Output,
		colors: opts.Colors,
		mu:     &sync.Mutex{},
	}
	if h.output == nil {
		h.output = os.Stdout
	}
	if h.format == "" {
		h.format = FormatCompact
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	if !h.colors && h.format != FormatJSON {
		if f, ok := h.output.(*os.File); ok {
			h.colors = isTerminal(f)
		}
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes a log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	attrs := h.collect(r)

	var line []byte
	switch h.format {
	case FormatPretty:
		line = h.pretty(r, attrs)
	case FormatJSON:
		line = h.encodeJSON(r, attrs)
	default:
		line = h.compact(r, attrs)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.output.Write(line)
	return err
}

// WithAttrs returns a Handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &clone
}

// WithGroup returns a Handler that prefixes later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

type field struct {
	key   string
	value any
}

func (h *Handler) collect(r slog.Record) []field {
	fields := make([]field, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		fields = appendAttr(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		fields = appendAttr(fields, h.prefix, a)
		return true
	})
	return fields
}

// appendAttr flattens groups into dotted keys.
func appendAttr(fields []field, prefix string, a slog.Attr) []field {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix = prefix + a.Key + "."
		}
		for _, inner := range a.Value.Group() {
			fields = appendAttr(fields, groupPrefix, inner)
		}
		return fields
	}
	if a.Key == "" {
		return fields
	}
	return append(fields, field{key: prefix + a.Key, value: jsonValue(a.Value)})
}

// jsonValue converts values json.Marshal would render poorly.
func jsonValue(v slog.Value) any {
	switch v.Kind() {
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(timeLayout)
	}
	if err, ok := v.Any().(error); ok {
		return err.Error()
	}
	return v.Any()
}

// writeTime writes the record time and a separating space. A zero time is
// omitted, as slog.Handler requires.
func writeTime(b *strings.Builder, t time.Time) {
	if t.IsZero() {
		return
	}
	b.WriteString(t.Format(timeLayout))
	b.WriteByte(' ')
}

func (h *Handler) compact(r slog.Record, fields []field) []byte {
	var b strings.Builder
	writeTime(&b, r.Time)
	b.WriteString(h.paint(r.Level, fmt.Sprintf("%5s", levelString(r.Level))))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	if len(fields) > 0 {
		b.WriteString(" -> ")
		b.Write(encodeFields(fields))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

func (h *Handler) pretty(r slog.Record, fields []field) []byte {
	var b strings.Builder
	writeTime(&b, r.Time)
	b.WriteString(h.paint(r.Level, fmt.Sprintf("%-5s", levelString(r.Level))))
	b.WriteString(" | ")
	b.WriteString(r.Message)
	b.WriteByte('\n')

	for _, f := range fields {
		fmt.Fprintf(&b, "  - %s = %v\n", f.key, f.value)
	}
	return []byte(b.String())
}

func (h *Handler) encodeJSON(r slog.Record, fields []field) []byte {
	all := make([]field, 0, len(fields)+3)
	if !r.Time.IsZero() {
		all = append(all, field{"time", r.Time.Format("2006-01-02T15:04:05")})
	}
	all = append(all,
		field{"level", levelString(r.Level)},
		field{"msg", r.Message},
	)
	all = append(all, fields...)

	return append(encodeFields(all), '\n')
}

// encodeFields renders fields as a JSON object in insertion order. Values
// that cannot be encoded are replaced by their fmt representation.
func encodeFields(fields []field) []byte {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, _ := json.Marshal(f.key)
		b.Write(key)
		b.WriteByte(':')

		val, err := json.Marshal(f.value)
		if err != nil {
			val, _ = json.Marshal(fmt.Sprintf("%v", f.value))
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String())
}

func levelString(level slog.Level) string {
	switch {
	case level < slog.LevelDebug:
		return "TRACE"
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
)

func (h *Handler) paint(level slog.Level, s string) string {
	if !h.colors {
		return s
	}
	var color string
	switch {
	case level < slog.LevelDebug:
		color = colorGray
	case level < slog.LevelInfo:
		color = colorBlue
	case level < slog.LevelWarn:
		color = colorGreen
	case level < slog.LevelError:
		color = colorYellow
	default:
		color = colorRed
	}
	return color + s + colorReset
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
