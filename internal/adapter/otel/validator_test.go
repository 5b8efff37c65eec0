package otel_test

import (
	"context"
	"testing"

	adapter "github.com/fieldops/bizflow/internal/adapter/otel"
	"github.com/fieldops/bizflow/internal/domain"
)

type stubValidator struct {
	result domain.ValidationResult
}

func (v *stubValidator) Validate(_ context.Context, _ domain.Kind, _, _ domain.Status) domain.ValidationResult {
	return v.result
}

func TestTracingValidator_Validate_RecordsSpan(t *testing.T) {
	exporter := setupTestTracer(t)
	inner := &stubValidator{result: domain.ValidationResult{
		Valid:   true,
		Allowed: []domain.Status{domain.QuoteSent, domain.QuoteCancelled},
	}}
	v := adapter.NewTracingValidator(inner)

	result := v.Validate(context.Background(), domain.KindQuote, domain.QuoteDraft, domain.QuoteSent)
	if !result.Valid {
		t.Error("expected result to pass through unchanged")
	}
	if len(result.Allowed) != 2 {
		t.Errorf("got %d allowed states, want 2", len(result.Allowed))
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	if spans[0].Name != "TransitionValidator.Validate" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "TransitionValidator.Validate")
	}

	assertAttribute(t, spans[0], "entity.kind", "quote")
	assertAttribute(t, spans[0], "transition.from", "draft")
	assertAttribute(t, spans[0], "transition.to", "sent")
	assertAttribute(t, spans[0], "transition.valid", "true")
	assertAttribute(t, spans[0], "transition.allowed_count", "2")
}

func TestTracingValidator_Validate_InvalidMove(t *testing.T) {
	exporter := setupTestTracer(t)
	inner := &stubValidator{result: domain.ValidationResult{
		Valid:   false,
		Allowed: []domain.Status{domain.QuoteAccepted},
	}}
	v := adapter.NewTracingValidator(inner)

	result := v.Validate(context.Background(), domain.KindQuote, domain.QuoteSent, domain.QuoteDraft)
	if result.Valid {
		t.Error("expected invalid result to pass through unchanged")
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	assertAttribute(t, spans[0], "transition.valid", "false")
	assertAttribute(t, spans[0], "transition.allowed_count", "1")
}
