package domain

import "time"

// Kind identifies one of the business entity types the workflow engine
// manages. The set is closed: adding a kind means touching the transition
// tables and the executor, and the compiler will point at every switch
// that needs a new arm.
type Kind string

const (
	KindQuote       Kind = "quote"
	KindInvoice     Kind = "invoice"
	KindPayment     Kind = "payment"
	KindProject     Kind = "project"
	KindAppointment Kind = "appointment"
	KindCustomer    Kind = "customer"
)

// Kinds lists every entity kind, in a stable order.
var Kinds = []Kind{
	KindQuote,
	KindInvoice,
	KindPayment,
	KindProject,
	KindAppointment,
	KindCustomer,
}

// Status represents the workflow state of an entity. Each kind has its own
// value space; the shared type keeps the registry and validator generic.
type Status string

// Quote states.
const (
	QuoteDraft     Status = "draft"
	QuoteSent      Status = "sent"
	QuoteAccepted  Status = "accepted"
	QuoteRejected  Status = "rejected"
	QuoteExpired   Status = "expired"
	QuoteCancelled Status = "cancelled"
)

// Invoice states.
const (
	InvoiceDraft     Status = "draft"
	InvoiceSent      Status = "sent"
	InvoiceViewed    Status = "viewed"
	InvoicePartial   Status = "partial"
	InvoicePaid      Status = "paid"
	InvoiceOverdue   Status = "overdue"
	InvoiceVoid      Status = "void"
	InvoiceCancelled Status = "cancelled"
)

// Payment states.
const (
	PaymentPending    Status = "pending"
	PaymentProcessing Status = "processing"
	PaymentCompleted  Status = "completed"
	PaymentFailed     Status = "failed"
	PaymentRefunded   Status = "refunded"
	PaymentCancelled  Status = "cancelled"
)

// Project states.
const (
	ProjectDraft     Status = "draft"
	ProjectActive    Status = "active"
	ProjectOnHold    Status = "on_hold"
	ProjectCompleted Status = "completed"
	ProjectCancelled Status = "cancelled"
)

// Appointment states.
const (
	AppointmentScheduled Status = "scheduled"
	AppointmentConfirmed Status = "confirmed"
	AppointmentCompleted Status = "completed"
	AppointmentCancelled Status = "cancelled"
	AppointmentNoShow    Status = "no_show"
)

// Customer states. Customers are never transitioned directly; a quote
// acceptance promotes a prospect, everything else is an admin concern
// outside the workflow engine.
const (
	CustomerProspect Status = "prospect"
	CustomerActive   Status = "active"
	CustomerInactive Status = "inactive"
	CustomerChurned  Status = "churned"
)

// Customer is the party all other entities hang off. Its status moves in
// the engagement direction only (prospect → active) as a side effect of
// quote acceptance.
type Customer struct {
	ID        string
	OrgID     string
	Name      string
	Email     string
	Status    Status
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quote is a priced offer to a customer. Total is in cents.
type Quote struct {
	ID         string
	OrgID      string
	CustomerID string
	Total      int64
	Status     Status
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Invoice bills a customer. All amounts are in cents. AmountPaid only ever
// grows through completed-payment side effects.
type Invoice struct {
	ID         string
	OrgID      string
	CustomerID string
	QuoteID    string // optional, the quote this invoice was raised from
	ProjectID  string // optional, the project funded by this invoice
	Total      int64
	AmountPaid int64
	Status     Status
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Balance is the amount still owed on the invoice.
func (i Invoice) Balance() int64 { return i.Total - i.AmountPaid }

// Payment is money moving against an invoice. Amount is in cents.
type Payment struct {
	ID         string
	OrgID      string
	InvoiceID  string
	CustomerID string
	Amount     int64
	Status     Status
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Project is the delivery work funded by an invoice. DepositPaidAt is
// stamped the first time cumulative payments on the linked invoice cross
// the deposit threshold.
type Project struct {
	ID            string
	OrgID         string
	CustomerID    string
	InvoiceID     string // optional back-reference to the funding invoice
	Name          string
	DepositPaidAt *time.Time
	Status        Status
	Version       int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Appointment is a scheduled visit with a customer.
type Appointment struct {
	ID           string
	OrgID        string
	CustomerID   string
	ScheduledFor time.Time
	Status       Status
	Version      int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InitialStatus returns the state a freshly created entity of the given
// kind starts in.
func InitialStatus(kind Kind) Status {
	switch kind {
	case KindQuote:
		return QuoteDraft
	case KindInvoice:
		return InvoiceDraft
	case KindPayment:
		return PaymentPending
	case KindProject:
		return ProjectDraft
	case KindAppointment:
		return AppointmentScheduled
	case KindCustomer:
		return CustomerProspect
	}
	return ""
}

// NewCustomer creates a customer in the initial "prospect" state.
func NewCustomer(id, orgID, name, email string) Customer {
	now := time.Now().UTC()
	return Customer{
		ID:        id,
		OrgID:     orgID,
		Name:      name,
		Email:     email,
		Status:    CustomerProspect,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewQuote creates a quote in the initial "draft" state.
func NewQuote(id, orgID, customerID string, total int64) Quote {
	now := time.Now().UTC()
	return Quote{
		ID:         id,
		OrgID:      orgID,
		CustomerID: customerID,
		Total:      total,
		Status:     QuoteDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewInvoice creates an invoice in the initial "draft" state with nothing paid.
func NewInvoice(id, orgID, customerID, quoteID, projectID string, total int64) Invoice {
	now := time.Now().UTC()
	return Invoice{
		ID:         id,
		OrgID:      orgID,
		CustomerID: customerID,
		QuoteID:    quoteID,
		ProjectID:  projectID,
		Total:      total,
		Status:     InvoiceDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewPayment creates a payment in the initial "pending" state.
func NewPayment(id, orgID, invoiceID, customerID string, amount int64) Payment {
	now := time.Now().UTC()
	return Payment{
		ID:         id,
		OrgID:      orgID,
		InvoiceID:  invoiceID,
		CustomerID: customerID,
		Amount:     amount,
		Status:     PaymentPending,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewProject creates a project in the initial "draft" state.
func NewProject(id, orgID, customerID, invoiceID, name string) Project {
	now := time.Now().UTC()
	return Project{
		ID:         id,
		OrgID:      orgID,
		CustomerID: customerID,
		InvoiceID:  invoiceID,
		Name:       name,
		Status:     ProjectDraft,
		Version:    1,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// NewAppointment creates an appointment in the initial "scheduled" state.
func NewAppointment(id, orgID, customerID string, scheduledFor time.Time) Appointment {
	now := time.Now().UTC()
	return Appointment{
		ID:           id,
		OrgID:        orgID,
		CustomerID:   customerID,
		ScheduledFor: scheduledFor,
		Status:       AppointmentScheduled,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
