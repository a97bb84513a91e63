package services

import "context"

type contextKey string

const (
	runIDKey     contextKey = "run_id"
	placementKey contextKey = "placement"
	subjectKey   contextKey = "subject"
)

// WithRunID annotates context with the export run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPlacement annotates context with the year label of the placement being exported.
func WithPlacement(ctx context.Context, label string) context.Context {
	if label == "" {
		return ctx
	}
	return context.WithValue(ctx, placementKey, label)
}

// PlacementFromContext returns the placement year label if present.
func PlacementFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(placementKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSubject annotates context with the subject slug being exported.
func WithSubject(ctx context.Context, slug string) context.Context {
	if slug == "" {
		return ctx
	}
	return context.WithValue(ctx, subjectKey, slug)
}

// SubjectFromContext returns the subject slug if present.
func SubjectFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(subjectKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
