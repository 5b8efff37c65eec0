package app

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldops/bizflow/internal/domain"
)

// EntityService creates and reads workflow entities. Mutation beyond
// creation goes through the WorkflowService only.
type EntityService struct {
	store domain.UnitOfWork
}

// NewEntityService creates an entity service backed by the given store.
func NewEntityService(store domain.UnitOfWork) *EntityService {
	return &EntityService{store: store}
}

func (s *EntityService) CreateCustomer(ctx context.Context, orgID, name, email string) (domain.Customer, error) {
	id, err := generateID()
	if err != nil {
		return domain.Customer{}, fmt.Errorf("generating customer id: %w", err)
	}

	customer := domain.NewCustomer(id, orgID, name, email)
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		return domain.Customer{}, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

func (s *EntityService) GetCustomer(ctx context.Context, orgID, id string) (domain.Customer, error) {
	return s.store.GetCustomer(ctx, orgID, id)
}

func (s *EntityService) ListCustomers(ctx context.Context, orgID string, filter domain.ListFilter) ([]domain.Customer, error) {
	return s.store.ListCustomers(ctx, orgID, filter)
}

func (s *EntityService) CreateQuote(ctx context.Context, orgID, customerID string, total int64) (domain.Quote, error) {
	if _, err := s.store.GetCustomer(ctx, orgID, customerID); err != nil {
		return domain.Quote{}, err
	}

	id, err := generateID()
	if err != nil {
		return domain.Quote{}, fmt.Errorf("generating quote id: %w", err)
	}

	quote := domain.NewQuote(id, orgID, customerID, total)
	if err := s.store.CreateQuote(ctx, quote); err != nil {
		return domain.Quote{}, fmt.Errorf("creating quote: %w", err)
	}
	return quote, nil
}

func (s *EntityService) GetQuote(ctx context.Context, orgID, id string) (domain.Quote, error) {
	return s.store.GetQuote(ctx, orgID, id)
}

func (s *EntityService) CreateInvoice(ctx context.Context, orgID, customerID, quoteID, projectID string, total int64) (domain.Invoice, error) {
	if _, err := s.store.GetCustomer(ctx, orgID, customerID); err != nil {
		return domain.Invoice{}, err
	}

	id, err := generateID()
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("generating invoice id: %w", err)
	}

	invoice := domain.NewInvoice(id, orgID, customerID, quoteID, projectID, total)
	if err := s.store.CreateInvoice(ctx, invoice); err != nil {
		return domain.Invoice{}, fmt.Errorf("creating invoice: %w", err)
	}
	return invoice, nil
}

func (s *EntityService) GetInvoice(ctx context.Context, orgID, id string) (domain.Invoice, error) {
	return s.store.GetInvoice(ctx, orgID, id)
}

func (s *EntityService) ListInvoices(ctx context.Context, orgID string, filter domain.ListFilter) ([]domain.Invoice, error) {
	return s.store.ListInvoices(ctx, orgID, filter)
}

func (s *EntityService) CreatePayment(ctx context.Context, orgID, invoiceID, customerID string, amount int64) (domain.Payment, error) {
	if _, err := s.store.GetInvoice(ctx, orgID, invoiceID); err != nil {
		return domain.Payment{}, err
	}

	id, err := generateID()
	if err != nil {
		return domain.Payment{}, fmt.Errorf("generating payment id: %w", err)
	}

	payment := domain.NewPayment(id, orgID, invoiceID, customerID, amount)
	if err := s.store.CreatePayment(ctx, payment); err != nil {
		return domain.Payment{}, fmt.Errorf("creating payment: %w", err)
	}
	return payment, nil
}

func (s *EntityService) GetPayment(ctx context.Context, orgID, id string) (domain.Payment, error) {
	return s.store.GetPayment(ctx, orgID, id)
}

func (s *EntityService) CreateProject(ctx context.Context, orgID, customerID, invoiceID, name string) (domain.Project, error) {
	if _, err := s.store.GetCustomer(ctx, orgID, customerID); err != nil {
		return domain.Project{}, err
	}

	id, err := generateID()
	if err != nil {
		return domain.Project{}, fmt.Errorf("generating project id: %w", err)
	}

	project := domain.NewProject(id, orgID, customerID, invoiceID, name)
	if err := s.store.CreateProject(ctx, project); err != nil {
		return domain.Project{}, fmt.Errorf("creating project: %w", err)
	}
	return project, nil
}

func (s *EntityService) GetProject(ctx context.Context, orgID, id string) (domain.Project, error) {
	return s.store.GetProject(ctx, orgID, id)
}

func (s *EntityService) CreateAppointment(ctx context.Context, orgID, customerID string, scheduledFor time.Time) (domain.Appointment, error) {
	if _, err := s.store.GetCustomer(ctx, orgID, customerID); err != nil {
		return domain.Appointment{}, err
	}

	id, err := generateID()
	if err != nil {
		return domain.Appointment{}, fmt.Errorf("generating appointment id: %w", err)
	}

	appointment := domain.NewAppointment(id, orgID, customerID, scheduledFor)
	if err := s.store.CreateAppointment(ctx, appointment); err != nil {
		return domain.Appointment{}, fmt.Errorf("creating appointment: %w", err)
	}
	return appointment, nil
}

func (s *EntityService) GetAppointment(ctx context.Context, orgID, id string) (domain.Appointment, error) {
	return s.store.GetAppointment(ctx, orgID, id)
}
