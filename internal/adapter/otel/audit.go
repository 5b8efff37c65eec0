package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/fieldops/bizflow/internal/domain"
)

const tracerName = "github.com/fieldops/bizflow/internal/adapter/otel"

// TracingAuditSink wraps a domain.AuditSink with OpenTelemetry tracing.
type TracingAuditSink struct {
	next   domain.AuditSink
	tracer trace.Tracer
}

// Compile-time check: TracingAuditSink implements domain.AuditSink.
var _ domain.AuditSink = (*TracingAuditSink)(nil)

// NewTracingAuditSink creates a tracing decorator around the given sink.
func NewTracingAuditSink(next domain.AuditSink) *TracingAuditSink {
	return &TracingAuditSink{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (s *TracingAuditSink) Record(ctx context.Context, entry domain.AuditEntry) error {
	ctx, span := s.tracer.Start(ctx, "AuditSink.Record",
		trace.WithAttributes(
			attribute.String("entity.kind", string(entry.Kind)),
			attribute.String("entity.id", entry.EntityID),
			attribute.String("org.id", entry.OrgID),
			attribute.String("transition.from", string(entry.From)),
			attribute.String("transition.to", string(entry.To)),
			attribute.String("actor.id", entry.ActorID),
		),
	)
	defer span.End()

	err := s.next.Record(ctx, entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}
