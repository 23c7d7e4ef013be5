package client

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Event types
const (
	EventLifecycle  = "lifecycle"
	EventInvocation = "invocation"
)

// Event subtypes
const (
	SubtypeCreated  = "created"
	SubtypeClosed   = "closed"
	SubtypeSend     = "send"
	SubtypeComplete = "complete"
	SubtypeFailed   = "failed"
)

// OutcomeAttempt marks an event recorded before the outcome is known.
const OutcomeAttempt = "attempt"

// Event is a structured audit record of the client's activity. Events from
// one Client share a CorrelationID.
type Event struct {
	Type          string
	Subtype       string
	Target        string
	CorrelationID string
	RequestID     string
	Operation     string
	Outcome       string
	Details       map[string]any
}

// eventLogger writes Events at debug level, or warn for failures.
type eventLogger struct {
	logger        *slog.Logger
	target        string
	correlationID string
}

func newEventLogger(logger *slog.Logger, target string) *eventLogger {
	return &eventLogger{
		logger:        logger,
		target:        target,
		correlationID: uuid.New().String(),
	}
}

func (l *eventLogger) emit(ctx context.Context, e Event) {
	e.Target = l.target
	e.CorrelationID = l.correlationID

	level := slog.LevelDebug
	if e.Subtype == SubtypeFailed {
		level = slog.LevelWarn
	}
	if !l.logger.Enabled(ctx, level) {
		return
	}

	attrs := []any{
		slog.String("event_type", e.Type),
		slog.String("subtype", e.Subtype),
		slog.String("target", e.Target),
		slog.String("correlation_id", e.CorrelationID),
		slog.String("outcome", e.Outcome),
	}
	if e.RequestID != "" {
		attrs = append(attrs, slog.String("request_id", e.RequestID))
	}
	if e.Operation != "" {
		attrs = append(attrs, slog.String("operation", e.Operation))
	}
	if len(e.Details) > 0 {
		details := make([]any, 0, len(e.Details))
		for k, v := range e.Details {
			details = append(details, slog.Any(k, v))
		}
		attrs = append(attrs, slog.Group("details", details...))
	}
	l.logger.Log(ctx, level, "ClientEvent", slog.Group("event", attrs...))
}

func (l *eventLogger) lifecycle(subtype string) {
	l.emit(context.Background(), Event{Type: EventLifecycle, Subtype: subtype, Outcome: OutcomeSuccess})
}

func (l *eventLogger) invocation(ctx context.Context, subtype, operation, requestID, outcome string, details map[string]any) {
	l.emit(ctx, Event{
		Type:      EventInvocation,
		Subtype:   subtype,
		Operation: operation,
		RequestID: requestID,
		Outcome:   outcome,
		Details:   details,
	})
}
