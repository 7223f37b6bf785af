package logger

import (
	"context"
	"log/slog"
)

// RedactedValue replaces the value of attributes whose key is redacted.
const RedactedValue = "[REDACTED]"

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler, injects attributes from context
// and masks attributes whose keys are marked as sensitive.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
	redact     map[string]struct{}
}

// NewLogHandlerDecorator creates a new decorated handler. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) *LogHandlerDecorator {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

// Redact returns a copy of the decorator that masks the given top-level keys.
func (h *LogHandlerDecorator) Redact(keys ...string) *LogHandlerDecorator {
	if len(keys) == 0 {
		return h
	}
	redact := make(map[string]struct{}, len(h.redact)+len(keys))
	for k := range h.redact {
		redact[k] = struct{}{}
	}
	for _, k := range keys {
		redact[k] = struct{}{}
	}
	return &LogHandlerDecorator{next: h.next, extractors: h.extractors, redact: redact}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs extractors and redaction per record, then delegates.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if len(h.extractors) == 0 && len(h.redact) == 0 {
		return h.next.Handle(ctx, rec)
	}

	if len(h.redact) > 0 {
		out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
		rec.Attrs(func(a slog.Attr) bool {
			out.AddAttrs(h.mask(a))
			return true
		})
		rec = out
	}

	for _, ex := range h.extractors {
		if attr, ok := ex(ctx); ok {
			rec.AddAttrs(h.mask(attr))
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	masked := attrs
	if len(h.redact) > 0 {
		masked = make([]slog.Attr, len(attrs))
		for i, a := range attrs {
			masked[i] = h.mask(a)
		}
	}
	return &LogHandlerDecorator{
		next:       h.next.WithAttrs(masked),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{
		next:       h.next.WithGroup(name),
		extractors: h.extractors,
		redact:     h.redact,
	}
}

func (h *LogHandlerDecorator) mask(a slog.Attr) slog.Attr {
	if _, ok := h.redact[a.Key]; ok {
		return slog.String(a.Key, RedactedValue)
	}
	return a
}
