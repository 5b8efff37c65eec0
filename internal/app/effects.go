package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/bizflow/internal/domain"
)

// effectKey addresses the side-effect handler for one (kind, target state)
// combination.
type effectKey struct {
	kind domain.Kind
	to   domain.Status
}

// effectFunc applies a cross-entity side effect. It runs inside the same
// transaction as the primary state write; returning an error rolls both back.
type effectFunc func(ctx context.Context, tx domain.Store, orgID string, entity any) error

// defaultEffects is the side-effect catalogue. Combinations without an
// entry need nothing beyond the state write itself. Payment → refunded is
// deliberately absent: a refund never rewinds the invoice's paid amount.
func defaultEffects() map[effectKey]effectFunc {
	return map[effectKey]effectFunc{
		{kind: domain.KindQuote, to: domain.QuoteAccepted}:      promoteCustomerOnAcceptedQuote,
		{kind: domain.KindPayment, to: domain.PaymentCompleted}: applyCompletedPayment,
	}
}

// promoteCustomerOnAcceptedQuote moves the quote's customer from prospect to
// active. Customers already past prospect are left alone; engagement never
// moves backwards automatically.
func promoteCustomerOnAcceptedQuote(ctx context.Context, tx domain.Store, orgID string, entity any) error {
	quote := entity.(domain.Quote)

	customer, err := tx.GetCustomer(ctx, orgID, quote.CustomerID)
	if err != nil {
		return fmt.Errorf("loading customer for accepted quote: %w", err)
	}

	if customer.Status != domain.CustomerProspect {
		return nil
	}

	customer.Status = domain.CustomerActive
	if err := tx.UpdateCustomer(ctx, customer); err != nil {
		return fmt.Errorf("promoting customer %q: %w", customer.ID, err)
	}
	return nil
}

// applyCompletedPayment folds the payment into its invoice: amount paid
// grows, the balance is recomputed, and the invoice becomes paid when the
// balance hits zero or partial otherwise. Full payment wins over the deposit
// branch. When the invoice funds a project and cumulative payments cross the
// deposit threshold (25% of the invoice total), the project is stamped once.
func applyCompletedPayment(ctx context.Context, tx domain.Store, orgID string, entity any) error {
	payment := entity.(domain.Payment)

	invoice, err := tx.GetInvoice(ctx, orgID, payment.InvoiceID)
	if err != nil {
		return fmt.Errorf("loading invoice for completed payment: %w", err)
	}

	invoice.AmountPaid += payment.Amount

	switch {
	case invoice.Balance() <= 0:
		invoice.Status = domain.InvoicePaid
	case invoice.AmountPaid > 0:
		invoice.Status = domain.InvoicePartial
	}

	if err := tx.UpdateInvoice(ctx, invoice); err != nil {
		return fmt.Errorf("updating invoice %q: %w", invoice.ID, err)
	}

	if invoice.ProjectID == "" || !depositSatisfied(invoice) {
		return nil
	}

	project, err := tx.GetProject(ctx, orgID, invoice.ProjectID)
	if err != nil {
		return fmt.Errorf("loading project for deposit stamp: %w", err)
	}
	if project.DepositPaidAt != nil {
		return nil
	}

	now := time.Now().UTC()
	project.DepositPaidAt = &now
	if err := tx.UpdateProject(ctx, project); err != nil {
		return fmt.Errorf("stamping deposit on project %q: %w", project.ID, err)
	}
	return nil
}

// depositSatisfied reports whether cumulative payments cover at least a
// quarter of the invoice total. Integer arithmetic, no rounding involved.
func depositSatisfied(invoice domain.Invoice) bool {
	return invoice.AmountPaid > 0 && invoice.AmountPaid*4 >= invoice.Total
}
