package extract

import (
	"context"
	"log/slog"
)

// Severity classifies a notification emitted for an extraction anomaly.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notifier receives notices about fields that could not be extracted from a
// document. Implementations must not fail back into the extraction flow.
type Notifier interface {
	Notify(ctx context.Context, severity Severity, message string, fields map[string]string)
}

// SlogNotifier reports notices through the default slog logger.
type SlogNotifier struct{}

func (SlogNotifier) Notify(ctx context.Context, severity Severity, message string, fields map[string]string) {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}

	switch severity {
	case SeverityError:
		slog.ErrorContext(ctx, message, args...)
	default:
		slog.WarnContext(ctx, message, args...)
	}
}

// NopNotifier discards all notices.
type NopNotifier struct{}

func (NopNotifier) Notify(context.Context, Severity, string, map[string]string) {}
