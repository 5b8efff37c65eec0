package app_test

import (
	"context"

	"github.com/fieldops/bizflow/internal/domain"
)

// mockStore is an in-memory domain.UnitOfWork. Slices keep insertion order
// so Latest* mirrors the repository's most-recent-first behavior.
type mockStore struct {
	customers    []domain.Customer
	quotes       []domain.Quote
	invoices     []domain.Invoice
	payments     []domain.Payment
	projects     []domain.Project
	appointments []domain.Appointment

	failUpdateInvoice error
}

func newMockStore() *mockStore { return &mockStore{} }

// applyWindow trims a pre-filtered result set to the filter's offset/limit.
func applyWindow[T any](items []T, filter domain.ListFilter) []T {
	if filter.Offset > 0 {
		if filter.Offset >= len(items) {
			return nil
		}
		items = items[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(items) {
		items = items[:filter.Limit]
	}
	return items
}

func (m *mockStore) InTx(_ context.Context, fn func(domain.Store) error) error {
	return fn(m)
}

func (m *mockStore) CreateCustomer(_ context.Context, c domain.Customer) error {
	m.customers = append(m.customers, c)
	return nil
}

func (m *mockStore) GetCustomer(_ context.Context, orgID, id string) (domain.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id && c.OrgID == orgID {
			return c, nil
		}
	}
	return domain.Customer{}, &domain.NotFoundError{Kind: domain.KindCustomer, ID: id}
}

func (m *mockStore) UpdateCustomer(_ context.Context, c domain.Customer) error {
	for i := range m.customers {
		if m.customers[i].ID == c.ID && m.customers[i].OrgID == c.OrgID {
			m.customers[i] = c
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindCustomer, ID: c.ID}
}

func (m *mockStore) ListCustomers(_ context.Context, orgID string, filter domain.ListFilter) ([]domain.Customer, error) {
	var out []domain.Customer
	for i := len(m.customers) - 1; i >= 0; i-- {
		c := m.customers[i]
		if c.OrgID != orgID {
			continue
		}
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		out = append(out, c)
	}
	return applyWindow(out, filter), nil
}

func (m *mockStore) CreateQuote(_ context.Context, q domain.Quote) error {
	m.quotes = append(m.quotes, q)
	return nil
}

func (m *mockStore) GetQuote(_ context.Context, orgID, id string) (domain.Quote, error) {
	for _, q := range m.quotes {
		if q.ID == id && q.OrgID == orgID {
			return q, nil
		}
	}
	return domain.Quote{}, &domain.NotFoundError{Kind: domain.KindQuote, ID: id}
}

func (m *mockStore) UpdateQuote(_ context.Context, q domain.Quote) error {
	for i := range m.quotes {
		if m.quotes[i].ID == q.ID && m.quotes[i].OrgID == q.OrgID {
			m.quotes[i] = q
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindQuote, ID: q.ID}
}

func (m *mockStore) LatestQuoteByCustomer(_ context.Context, orgID, customerID string) (domain.Quote, error) {
	for i := len(m.quotes) - 1; i >= 0; i-- {
		if m.quotes[i].CustomerID == customerID && m.quotes[i].OrgID == orgID {
			return m.quotes[i], nil
		}
	}
	return domain.Quote{}, &domain.NotFoundError{Kind: domain.KindQuote}
}

func (m *mockStore) CreateInvoice(_ context.Context, inv domain.Invoice) error {
	m.invoices = append(m.invoices, inv)
	return nil
}

func (m *mockStore) GetInvoice(_ context.Context, orgID, id string) (domain.Invoice, error) {
	for _, inv := range m.invoices {
		if inv.ID == id && inv.OrgID == orgID {
			return inv, nil
		}
	}
	return domain.Invoice{}, &domain.NotFoundError{Kind: domain.KindInvoice, ID: id}
}

func (m *mockStore) UpdateInvoice(_ context.Context, inv domain.Invoice) error {
	if m.failUpdateInvoice != nil {
		return m.failUpdateInvoice
	}
	for i := range m.invoices {
		if m.invoices[i].ID == inv.ID && m.invoices[i].OrgID == inv.OrgID {
			m.invoices[i] = inv
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindInvoice, ID: inv.ID}
}

func (m *mockStore) LatestInvoiceByCustomer(_ context.Context, orgID, customerID string) (domain.Invoice, error) {
	for i := len(m.invoices) - 1; i >= 0; i-- {
		if m.invoices[i].CustomerID == customerID && m.invoices[i].OrgID == orgID {
			return m.invoices[i], nil
		}
	}
	return domain.Invoice{}, &domain.NotFoundError{Kind: domain.KindInvoice}
}

func (m *mockStore) ListInvoices(_ context.Context, orgID string, filter domain.ListFilter) ([]domain.Invoice, error) {
	var out []domain.Invoice
	for i := len(m.invoices) - 1; i >= 0; i-- {
		inv := m.invoices[i]
		if inv.OrgID != orgID {
			continue
		}
		if filter.Status != nil && inv.Status != *filter.Status {
			continue
		}
		out = append(out, inv)
	}
	return applyWindow(out, filter), nil
}

func (m *mockStore) CreatePayment(_ context.Context, p domain.Payment) error {
	m.payments = append(m.payments, p)
	return nil
}

func (m *mockStore) GetPayment(_ context.Context, orgID, id string) (domain.Payment, error) {
	for _, p := range m.payments {
		if p.ID == id && p.OrgID == orgID {
			return p, nil
		}
	}
	return domain.Payment{}, &domain.NotFoundError{Kind: domain.KindPayment, ID: id}
}

func (m *mockStore) UpdatePayment(_ context.Context, p domain.Payment) error {
	for i := range m.payments {
		if m.payments[i].ID == p.ID && m.payments[i].OrgID == p.OrgID {
			m.payments[i] = p
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindPayment, ID: p.ID}
}

func (m *mockStore) CreateProject(_ context.Context, p domain.Project) error {
	m.projects = append(m.projects, p)
	return nil
}

func (m *mockStore) GetProject(_ context.Context, orgID, id string) (domain.Project, error) {
	for _, p := range m.projects {
		if p.ID == id && p.OrgID == orgID {
			return p, nil
		}
	}
	return domain.Project{}, &domain.NotFoundError{Kind: domain.KindProject, ID: id}
}

func (m *mockStore) UpdateProject(_ context.Context, p domain.Project) error {
	for i := range m.projects {
		if m.projects[i].ID == p.ID && m.projects[i].OrgID == p.OrgID {
			m.projects[i] = p
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindProject, ID: p.ID}
}

func (m *mockStore) LatestProjectByCustomer(_ context.Context, orgID, customerID string) (domain.Project, error) {
	for i := len(m.projects) - 1; i >= 0; i-- {
		if m.projects[i].CustomerID == customerID && m.projects[i].OrgID == orgID {
			return m.projects[i], nil
		}
	}
	return domain.Project{}, &domain.NotFoundError{Kind: domain.KindProject}
}

func (m *mockStore) CreateAppointment(_ context.Context, a domain.Appointment) error {
	m.appointments = append(m.appointments, a)
	return nil
}

func (m *mockStore) GetAppointment(_ context.Context, orgID, id string) (domain.Appointment, error) {
	for _, a := range m.appointments {
		if a.ID == id && a.OrgID == orgID {
			return a, nil
		}
	}
	return domain.Appointment{}, &domain.NotFoundError{Kind: domain.KindAppointment, ID: id}
}

func (m *mockStore) UpdateAppointment(_ context.Context, a domain.Appointment) error {
	for i := range m.appointments {
		if m.appointments[i].ID == a.ID && m.appointments[i].OrgID == a.OrgID {
			m.appointments[i] = a
			return nil
		}
	}
	return &domain.NotFoundError{Kind: domain.KindAppointment, ID: a.ID}
}

func (m *mockStore) LatestAppointmentByCustomer(_ context.Context, orgID, customerID string) (domain.Appointment, error) {
	for i := len(m.appointments) - 1; i >= 0; i-- {
		if m.appointments[i].CustomerID == customerID && m.appointments[i].OrgID == orgID {
			return m.appointments[i], nil
		}
	}
	return domain.Appointment{}, &domain.NotFoundError{Kind: domain.KindAppointment}
}

// tableValidator validates straight off the domain tables, keeping app tests
// independent of the FSM adapter.
type tableValidator struct{}

func (tableValidator) Validate(_ context.Context, kind domain.Kind, from, to domain.Status) domain.ValidationResult {
	return domain.ValidationResult{
		Valid:   domain.CanTransition(kind, from, to),
		Allowed: domain.ReachableStates(kind, from),
	}
}

// mockAudit captures audit entries, optionally failing every Record call.
type mockAudit struct {
	entries []domain.AuditEntry
	err     error
}

func (m *mockAudit) Record(_ context.Context, entry domain.AuditEntry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}
