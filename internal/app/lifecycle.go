package app

import (
	"context"
	"fmt"

	"github.com/fieldops/bizflow/internal/domain"
)

// LifecycleStage places a customer on the 8-step sales/fulfillment ladder.
// Completed is true only at the final stage.
type LifecycleStage struct {
	Stage      int
	Name       string
	Completed  bool
	NextAction string
}

// stageInfo pairs the display name and the next-action hint for each stage.
var stageInfo = [...]struct {
	name       string
	nextAction string
}{
	{"Request Quote", "Create a quote for this customer"},
	{"Quote Estimated", "Follow up on the sent quote"},
	{"Quote Accepted", "Schedule an appointment"},
	{"Appointment Scheduled", "Generate an invoice"},
	{"Invoice Generated", "Collect the deposit payment"},
	{"Deposit Paid", "Start the project"},
	{"Project In Progress", "Complete the project work"},
	{"Project Completed", "No further action needed"},
}

// LifecycleService derives a customer's lifecycle stage from the latest
// state of their related records. Read-only.
type LifecycleService struct {
	store domain.UnitOfWork
}

// NewLifecycleService creates a lifecycle calculator backed by the given store.
func NewLifecycleService(store domain.UnitOfWork) *LifecycleService {
	return &LifecycleService{store: store}
}

// lifecycleSnapshot holds the customer's most recent record per kind, read
// in a single transaction so the stage is computed from one point in time.
type lifecycleSnapshot struct {
	quote          domain.Quote
	hasQuote       bool
	appointment    domain.Appointment
	hasAppointment bool
	invoice        domain.Invoice
	hasInvoice     bool
	project        domain.Project
	hasProject     bool
}

// Stage returns the highest lifecycle stage the customer's records satisfy.
// A missing customer is the one failure mode; there is no partial result.
func (s *LifecycleService) Stage(ctx context.Context, orgID, customerID string) (LifecycleStage, error) {
	var snap lifecycleSnapshot

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		if _, err := tx.GetCustomer(ctx, orgID, customerID); err != nil {
			return err
		}

		var err error
		snap.quote, snap.hasQuote, err = optional(tx.LatestQuoteByCustomer(ctx, orgID, customerID))
		if err != nil {
			return fmt.Errorf("reading latest quote: %w", err)
		}
		snap.appointment, snap.hasAppointment, err = optional(tx.LatestAppointmentByCustomer(ctx, orgID, customerID))
		if err != nil {
			return fmt.Errorf("reading latest appointment: %w", err)
		}
		snap.invoice, snap.hasInvoice, err = optional(tx.LatestInvoiceByCustomer(ctx, orgID, customerID))
		if err != nil {
			return fmt.Errorf("reading latest invoice: %w", err)
		}
		snap.project, snap.hasProject, err = optional(tx.LatestProjectByCustomer(ctx, orgID, customerID))
		if err != nil {
			return fmt.Errorf("reading latest project: %w", err)
		}
		return nil
	})
	if err != nil {
		return LifecycleStage{}, err
	}

	return stageOf(snap), nil
}

// optional turns a not-found read into an absence flag so the snapshot loop
// treats "no record yet" and "record present" uniformly.
func optional[T any](v T, err error) (T, bool, error) {
	if err != nil {
		if domain.IsNotFound(err) {
			var zero T
			return zero, false, nil
		}
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

// stageOf finds the highest satisfied stage, checked from the top down so a
// customer who skipped a step (say, no appointment but a paid invoice) still
// lands past it. Stage 1 is the floor.
func stageOf(snap lifecycleSnapshot) LifecycleStage {
	stage := 1

	switch {
	case snap.hasProject && snap.project.Status == domain.ProjectCompleted &&
		snap.hasInvoice && snap.invoice.Status == domain.InvoicePaid:
		stage = 8
	case snap.hasProject && snap.project.Status == domain.ProjectActive:
		stage = 7
	case snap.hasInvoice && snap.invoice.AmountPaid > 0 && snap.invoice.AmountPaid*4 >= snap.invoice.Total:
		stage = 6
	case snap.hasInvoice:
		stage = 5
	case snap.hasAppointment:
		stage = 4
	case snap.hasQuote && snap.quote.Status == domain.QuoteAccepted:
		stage = 3
	case snap.hasQuote && snap.quote.Status != domain.QuoteDraft:
		stage = 2
	}

	info := stageInfo[stage-1]
	return LifecycleStage{
		Stage:      stage,
		Name:       info.name,
		Completed:  stage == 8,
		NextAction: info.nextAction,
	}
}
