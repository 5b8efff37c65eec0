package domain

// Transition defines a valid state change: an entity may move from Src to Dst.
// The transition event is named after its destination state, so the FSM
// adapter needs no separate event vocabulary.
type Transition struct {
	Src Status
	Dst Status
}

// Per-kind transition tables. A state with no outgoing entries is terminal.
// These are domain knowledge consumed by the FSM adapter and the role filter.
var (
	quoteTransitions = []Transition{
		{Src: QuoteDraft, Dst: QuoteSent},
		{Src: QuoteDraft, Dst: QuoteCancelled},
		{Src: QuoteSent, Dst: QuoteAccepted},
		{Src: QuoteSent, Dst: QuoteRejected},
		{Src: QuoteSent, Dst: QuoteExpired},
		{Src: QuoteSent, Dst: QuoteCancelled},
	}

	invoiceTransitions = []Transition{
		{Src: InvoiceDraft, Dst: InvoiceSent},
		{Src: InvoiceDraft, Dst: InvoiceCancelled},
		{Src: InvoiceSent, Dst: InvoiceViewed},
		{Src: InvoiceSent, Dst: InvoicePartial},
		{Src: InvoiceSent, Dst: InvoicePaid},
		{Src: InvoiceSent, Dst: InvoiceOverdue},
		{Src: InvoiceSent, Dst: InvoiceVoid},
		{Src: InvoiceSent, Dst: InvoiceCancelled},
		{Src: InvoiceViewed, Dst: InvoicePartial},
		{Src: InvoiceViewed, Dst: InvoicePaid},
		{Src: InvoiceViewed, Dst: InvoiceOverdue},
		{Src: InvoiceViewed, Dst: InvoiceVoid},
		{Src: InvoiceViewed, Dst: InvoiceCancelled},
		{Src: InvoicePartial, Dst: InvoicePaid},
		{Src: InvoicePartial, Dst: InvoiceOverdue},
		{Src: InvoicePartial, Dst: InvoiceVoid},
		{Src: InvoiceOverdue, Dst: InvoicePartial},
		{Src: InvoiceOverdue, Dst: InvoicePaid},
		{Src: InvoiceOverdue, Dst: InvoiceVoid},
		{Src: InvoiceOverdue, Dst: InvoiceCancelled},
	}

	paymentTransitions = []Transition{
		{Src: PaymentPending, Dst: PaymentProcessing},
		{Src: PaymentPending, Dst: PaymentCancelled},
		{Src: PaymentProcessing, Dst: PaymentCompleted},
		{Src: PaymentProcessing, Dst: PaymentFailed},
		{Src: PaymentCompleted, Dst: PaymentRefunded},
	}

	projectTransitions = []Transition{
		{Src: ProjectDraft, Dst: ProjectActive},
		{Src: ProjectDraft, Dst: ProjectCancelled},
		{Src: ProjectActive, Dst: ProjectOnHold},
		{Src: ProjectActive, Dst: ProjectCompleted},
		{Src: ProjectActive, Dst: ProjectCancelled},
		{Src: ProjectOnHold, Dst: ProjectActive},
		{Src: ProjectOnHold, Dst: ProjectCancelled},
	}

	appointmentTransitions = []Transition{
		{Src: AppointmentScheduled, Dst: AppointmentConfirmed},
		{Src: AppointmentScheduled, Dst: AppointmentCancelled},
		{Src: AppointmentScheduled, Dst: AppointmentNoShow},
		{Src: AppointmentConfirmed, Dst: AppointmentCompleted},
		{Src: AppointmentConfirmed, Dst: AppointmentCancelled},
		{Src: AppointmentConfirmed, Dst: AppointmentNoShow},
	}

	customerTransitions = []Transition{
		{Src: CustomerProspect, Dst: CustomerActive},
		{Src: CustomerProspect, Dst: CustomerInactive},
		{Src: CustomerActive, Dst: CustomerInactive},
		{Src: CustomerActive, Dst: CustomerChurned},
		{Src: CustomerInactive, Dst: CustomerActive},
		{Src: CustomerInactive, Dst: CustomerChurned},
	}
)

// TransitionsFor returns the transition table for the given kind. The switch
// is exhaustive over Kinds; an unknown kind has no transitions.
func TransitionsFor(kind Kind) []Transition {
	switch kind {
	case KindQuote:
		return quoteTransitions
	case KindInvoice:
		return invoiceTransitions
	case KindPayment:
		return paymentTransitions
	case KindProject:
		return projectTransitions
	case KindAppointment:
		return appointmentTransitions
	case KindCustomer:
		return customerTransitions
	}
	return nil
}

// ReachableStates returns every state reachable in one transition from the
// given state. Unknown kinds or states yield an empty set, so "nothing you
// can do here" and "no such state" look the same to callers.
func ReachableStates(kind Kind, from Status) []Status {
	var out []Status
	for _, t := range TransitionsFor(kind) {
		if t.Src == from {
			out = append(out, t.Dst)
		}
	}
	return out
}

// CanTransition reports whether from → to is a legal move for the kind.
func CanTransition(kind Kind, from, to Status) bool {
	for _, t := range TransitionsFor(kind) {
		if t.Src == from && t.Dst == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the state has no outgoing transitions for the
// kind. Unknown states are trivially terminal.
func IsTerminal(kind Kind, s Status) bool {
	return len(ReachableStates(kind, s)) == 0
}

// StatesFor returns every state that appears in the kind's transition table,
// in first-appearance order.
func StatesFor(kind Kind) []Status {
	seen := make(map[Status]bool)
	var out []Status
	for _, t := range TransitionsFor(kind) {
		for _, s := range []Status{t.Src, t.Dst} {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}
