package domain_test

import (
	"testing"

	"github.com/fieldops/bizflow/internal/domain"
)

var allRoles = []domain.Role{
	domain.RoleSuperAdmin,
	domain.RoleAdmin,
	domain.RoleManager,
	domain.RoleAccountant,
	domain.RoleEmployee,
	domain.RoleViewer,
	domain.RoleClient,
}

func TestRole_Hierarchy(t *testing.T) {
	for i := 0; i < len(allRoles)-1; i++ {
		higher, lower := allRoles[i], allRoles[i+1]
		if !higher.AtLeast(lower) {
			t.Errorf("%s should be at least %s", higher, lower)
		}
		if lower.AtLeast(higher) {
			t.Errorf("%s should not be at least %s", lower, higher)
		}
	}

	if domain.Role("intern").Valid() {
		t.Error("unknown role should not be valid")
	}
	if domain.Role("intern").AtLeast(domain.RoleClient) {
		t.Error("unknown role should rank below every known role")
	}
}

func TestAvailableTransitions_SubsetOfReachable(t *testing.T) {
	for _, kind := range domain.Kinds {
		for _, from := range domain.StatesFor(kind) {
			reachable := make(map[domain.Status]bool)
			for _, s := range domain.ReachableStates(kind, from) {
				reachable[s] = true
			}

			for _, role := range allRoles {
				for _, s := range domain.AvailableTransitions(kind, from, role) {
					if !reachable[s] {
						t.Errorf("%s/%s: role %s was offered %q, not in reachable set", kind, from, role, s)
					}
				}
			}
		}
	}
}

func TestAvailableTransitions_AdminsSeeEverything(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleSuperAdmin, domain.RoleAdmin} {
		got := domain.AvailableTransitions(domain.KindInvoice, domain.InvoiceSent, role)
		want := domain.ReachableStates(domain.KindInvoice, domain.InvoiceSent)
		if len(got) != len(want) {
			t.Errorf("%s: got %v, want full set %v", role, got, want)
		}
	}
}

func TestAvailableTransitions_ManagerHiddenVoid(t *testing.T) {
	got := domain.AvailableTransitions(domain.KindInvoice, domain.InvoiceSent, domain.RoleManager)

	for _, s := range got {
		if s == domain.InvoiceVoid {
			t.Error("manager should not see invoice void")
		}
	}

	// Cancelled stays visible to managers.
	found := false
	for _, s := range got {
		if s == domain.InvoiceCancelled {
			found = true
		}
	}
	if !found {
		t.Errorf("manager should see cancelled, got %v", got)
	}
}

func TestAvailableTransitions_ManagerHiddenRefund(t *testing.T) {
	got := domain.AvailableTransitions(domain.KindPayment, domain.PaymentCompleted, domain.RoleManager)
	if len(got) != 0 {
		t.Errorf("refund is admin-only, manager got %v", got)
	}
}

func TestAvailableTransitions_AccountantFinancialOnly(t *testing.T) {
	// Financial kinds: the accountant works like a manager.
	got := domain.AvailableTransitions(domain.KindPayment, domain.PaymentPending, domain.RoleAccountant)
	if len(got) == 0 {
		t.Error("accountant should have payment options from pending")
	}

	// Operational kinds: always empty.
	for _, kind := range []domain.Kind{domain.KindProject, domain.KindAppointment} {
		for _, from := range domain.StatesFor(kind) {
			if got := domain.AvailableTransitions(kind, from, domain.RoleAccountant); len(got) != 0 {
				t.Errorf("accountant on %s/%s: got %v, want empty", kind, from, got)
			}
		}
	}
}

func TestAvailableTransitions_EmployeeNarrow(t *testing.T) {
	got := domain.AvailableTransitions(domain.KindQuote, domain.QuoteDraft, domain.RoleEmployee)
	if len(got) != 1 || got[0] != domain.QuoteSent {
		t.Errorf("employee from quote draft: got %v, want [sent]", got)
	}

	// No accept/reject/cancel authority.
	if got := domain.AvailableTransitions(domain.KindQuote, domain.QuoteSent, domain.RoleEmployee); len(got) != 0 {
		t.Errorf("employee from quote sent: got %v, want empty", got)
	}

	// No payment authority at all.
	for _, from := range domain.StatesFor(domain.KindPayment) {
		if got := domain.AvailableTransitions(domain.KindPayment, from, domain.RoleEmployee); len(got) != 0 {
			t.Errorf("employee on payment/%s: got %v, want empty", from, got)
		}
	}
}

func TestAvailableTransitions_ReadOnlyRolesGetNothing(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleViewer, domain.RoleClient} {
		for _, kind := range domain.Kinds {
			for _, from := range domain.StatesFor(kind) {
				if got := domain.AvailableTransitions(kind, from, role); len(got) != 0 {
					t.Errorf("%s on %s/%s: got %v, want empty", role, kind, from, got)
				}
			}
		}
	}
}
