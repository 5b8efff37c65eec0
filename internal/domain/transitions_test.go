package domain_test

import (
	"testing"

	"github.com/fieldops/bizflow/internal/domain"
)

func TestReachableStates_TableEntries(t *testing.T) {
	for _, kind := range domain.Kinds {
		for _, tr := range domain.TransitionsFor(kind) {
			if !domain.CanTransition(kind, tr.Src, tr.Dst) {
				t.Errorf("%s: %s -> %s should be legal", kind, tr.Src, tr.Dst)
			}

			found := false
			for _, s := range domain.ReachableStates(kind, tr.Src) {
				if s == tr.Dst {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("%s: %s missing from ReachableStates(%s)", kind, tr.Dst, tr.Src)
			}
		}
	}
}

func TestReachableStates_TerminalStatesEmpty(t *testing.T) {
	terminals := map[domain.Kind][]domain.Status{
		domain.KindQuote:       {domain.QuoteAccepted, domain.QuoteRejected, domain.QuoteExpired, domain.QuoteCancelled},
		domain.KindInvoice:     {domain.InvoicePaid, domain.InvoiceVoid, domain.InvoiceCancelled},
		domain.KindPayment:     {domain.PaymentRefunded, domain.PaymentFailed, domain.PaymentCancelled},
		domain.KindProject:     {domain.ProjectCompleted, domain.ProjectCancelled},
		domain.KindAppointment: {domain.AppointmentCompleted, domain.AppointmentCancelled, domain.AppointmentNoShow},
		domain.KindCustomer:    {domain.CustomerChurned},
	}

	for kind, states := range terminals {
		for _, s := range states {
			if got := domain.ReachableStates(kind, s); len(got) != 0 {
				t.Errorf("%s: ReachableStates(%s) = %v, want empty", kind, s, got)
			}
			if !domain.IsTerminal(kind, s) {
				t.Errorf("%s: IsTerminal(%s) = false, want true", kind, s)
			}
		}
	}
}

func TestReachableStates_UnknownInputs(t *testing.T) {
	if got := domain.ReachableStates(domain.KindQuote, "bogus"); len(got) != 0 {
		t.Errorf("unknown state: got %v, want empty", got)
	}
	if got := domain.ReachableStates("widget", domain.QuoteDraft); len(got) != 0 {
		t.Errorf("unknown kind: got %v, want empty", got)
	}
}

func TestCanTransition_Representative(t *testing.T) {
	cases := []struct {
		kind domain.Kind
		from domain.Status
		to   domain.Status
		want bool
	}{
		{domain.KindQuote, domain.QuoteDraft, domain.QuoteSent, true},
		{domain.KindQuote, domain.QuoteDraft, domain.QuoteAccepted, false},
		{domain.KindQuote, domain.QuoteSent, domain.QuoteAccepted, true},
		{domain.KindQuote, domain.QuoteAccepted, domain.QuoteDraft, false},
		{domain.KindPayment, domain.PaymentPending, domain.PaymentProcessing, true},
		{domain.KindPayment, domain.PaymentPending, domain.PaymentCompleted, false},
		{domain.KindPayment, domain.PaymentCompleted, domain.PaymentRefunded, true},
		{domain.KindInvoice, domain.InvoiceSent, domain.InvoiceVoid, true},
		{domain.KindInvoice, domain.InvoicePaid, domain.InvoiceSent, false},
		{domain.KindProject, domain.ProjectOnHold, domain.ProjectActive, true},
		{domain.KindAppointment, domain.AppointmentScheduled, domain.AppointmentNoShow, true},
	}

	for _, c := range cases {
		if got := domain.CanTransition(c.kind, c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s, %s) = %v, want %v", c.kind, c.from, c.to, got, c.want)
		}
	}
}

func TestStatesFor_CoversAllTableStates(t *testing.T) {
	states := domain.StatesFor(domain.KindPayment)
	want := map[domain.Status]bool{
		domain.PaymentPending:    true,
		domain.PaymentProcessing: true,
		domain.PaymentCompleted:  true,
		domain.PaymentFailed:     true,
		domain.PaymentRefunded:   true,
		domain.PaymentCancelled:  true,
	}

	if len(states) != len(want) {
		t.Fatalf("got %d states, want %d: %v", len(states), len(want), states)
	}
	for _, s := range states {
		if !want[s] {
			t.Errorf("unexpected state %q", s)
		}
	}
}
