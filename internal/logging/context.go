package logging

import (
	"context"
	"log/slog"

	"takeout/internal/services"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for export run identifiers.
	FieldRunID = "run_id"
	// FieldPlacement is the standardized structured logging key for placement year labels.
	FieldPlacement = "placement"
	// FieldSubject is the standardized structured logging key for subject slugs.
	FieldSubject = "subject"
	// FieldEventType classifies a log line for filtering.
	FieldEventType = "event_type"
	// FieldErrorKind carries services.Kind of a failure.
	FieldErrorKind = "error_kind"
)

// ContextFields extracts standardized slog attributes from the provided context.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]slog.Attr, 0, 3)
	if id, ok := services.RunIDFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldRunID, id))
	}
	if label, ok := services.PlacementFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldPlacement, label))
	}
	if slug, ok := services.SubjectFromContext(ctx); ok {
		fields = append(fields, slog.String(FieldSubject, slug))
	}
	return fields
}

// WithContext returns a logger augmented with structured fields derived from the supplied context.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(attrsToArgs(fields)...)
}
