package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/fieldops/bizflow/internal/domain"
)

// TracingValidator wraps a domain.TransitionValidator with OpenTelemetry tracing.
type TracingValidator struct {
	next   domain.TransitionValidator
	tracer trace.Tracer
}

// Compile-time check: TracingValidator implements domain.TransitionValidator.
var _ domain.TransitionValidator = (*TracingValidator)(nil)

// NewTracingValidator creates a tracing decorator around the given validator.
func NewTracingValidator(next domain.TransitionValidator) *TracingValidator {
	return &TracingValidator{
		next:   next,
		tracer: otel.Tracer(tracerName),
	}
}

func (v *TracingValidator) Validate(ctx context.Context, kind domain.Kind, from, to domain.Status) domain.ValidationResult {
	ctx, span := v.tracer.Start(ctx, "TransitionValidator.Validate",
		trace.WithAttributes(
			attribute.String("entity.kind", string(kind)),
			attribute.String("transition.from", string(from)),
			attribute.String("transition.to", string(to)),
		),
	)
	defer span.End()

	result := v.next.Validate(ctx, kind, from, to)
	span.SetAttributes(
		attribute.Bool("transition.valid", result.Valid),
		attribute.Int("transition.allowed_count", len(result.Allowed)),
	)
	return result
}
