package domain

import (
	"context"
	"time"
)

// ValidationResult answers "is this move legal, and what could I do instead".
// Allowed always carries the full reachable set from the source state, even
// when Valid is false.
type ValidationResult struct {
	Valid   bool
	Allowed []Status
}

// TransitionValidator defines the contract for checking a single transition.
// Implementations must be pure: identical inputs yield identical results.
type TransitionValidator interface {
	Validate(ctx context.Context, kind Kind, from, to Status) ValidationResult
}

// Store defines the persistence contract for workflow entities. Every read
// and write is scoped by organization; an id that exists in another org
// behaves exactly like a missing row.
type Store interface {
	CreateCustomer(ctx context.Context, c Customer) error
	GetCustomer(ctx context.Context, orgID, id string) (Customer, error)
	UpdateCustomer(ctx context.Context, c Customer) error
	ListCustomers(ctx context.Context, orgID string, filter ListFilter) ([]Customer, error)

	CreateQuote(ctx context.Context, q Quote) error
	GetQuote(ctx context.Context, orgID, id string) (Quote, error)
	UpdateQuote(ctx context.Context, q Quote) error
	LatestQuoteByCustomer(ctx context.Context, orgID, customerID string) (Quote, error)

	CreateInvoice(ctx context.Context, i Invoice) error
	GetInvoice(ctx context.Context, orgID, id string) (Invoice, error)
	UpdateInvoice(ctx context.Context, i Invoice) error
	LatestInvoiceByCustomer(ctx context.Context, orgID, customerID string) (Invoice, error)
	ListInvoices(ctx context.Context, orgID string, filter ListFilter) ([]Invoice, error)

	CreatePayment(ctx context.Context, p Payment) error
	GetPayment(ctx context.Context, orgID, id string) (Payment, error)
	UpdatePayment(ctx context.Context, p Payment) error

	CreateProject(ctx context.Context, p Project) error
	GetProject(ctx context.Context, orgID, id string) (Project, error)
	UpdateProject(ctx context.Context, p Project) error
	LatestProjectByCustomer(ctx context.Context, orgID, customerID string) (Project, error)

	CreateAppointment(ctx context.Context, a Appointment) error
	GetAppointment(ctx context.Context, orgID, id string) (Appointment, error)
	UpdateAppointment(ctx context.Context, a Appointment) error
	LatestAppointmentByCustomer(ctx context.Context, orgID, customerID string) (Appointment, error)
}

// ListFilter holds optional criteria for listing entities.
type ListFilter struct {
	Status *Status
	Limit  int
	Offset int
}

// UnitOfWork is a Store that can also run a function against a transactional
// view of itself. Everything done inside fn commits or rolls back as one.
type UnitOfWork interface {
	Store
	InTx(ctx context.Context, fn func(Store) error) error
}

// AuditEntry describes one applied transition for the audit trail.
type AuditEntry struct {
	ActorID   string
	ActorRole Role
	Kind      Kind
	EntityID  string
	OrgID     string
	From      Status
	To        Status
	Reason    string
	At        time.Time
}

// AuditSink records transitions fire-and-forget. A sink failure must never
// roll back or fail the transition that produced the entry.
type AuditSink interface {
	Record(ctx context.Context, entry AuditEntry) error
}
