package http

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fieldops/bizflow/internal/app"
	"github.com/fieldops/bizflow/internal/domain"
)

const timeFormat = "2006-01-02T15:04:05Z"

// --- API representations ---

type CustomerResponse struct {
	ID        string `json:"id" doc:"Unique identifier"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Contact email"`
	Status    string `json:"status" doc:"Lifecycle status"`
	CreatedAt string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toCustomerResponse(c domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(timeFormat),
		UpdatedAt: c.UpdatedAt.Format(timeFormat),
	}
}

type QuoteResponse struct {
	ID         string `json:"id" doc:"Unique identifier"`
	CustomerID string `json:"customer_id" doc:"Owning customer"`
	Total      int64  `json:"total" doc:"Quoted total in cents"`
	Status     string `json:"status" doc:"Workflow status"`
	CreatedAt  string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt  string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Total:      q.Total,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt.Format(timeFormat),
		UpdatedAt:  q.UpdatedAt.Format(timeFormat),
	}
}

type InvoiceResponse struct {
	ID         string `json:"id" doc:"Unique identifier"`
	CustomerID string `json:"customer_id" doc:"Owning customer"`
	QuoteID    string `json:"quote_id,omitempty" doc:"Source quote, if any"`
	ProjectID  string `json:"project_id,omitempty" doc:"Funded project, if any"`
	Total      int64  `json:"total" doc:"Invoice total in cents"`
	AmountPaid int64  `json:"amount_paid" doc:"Cumulative completed payments in cents"`
	Balance    int64  `json:"balance" doc:"Amount still owed in cents"`
	Status     string `json:"status" doc:"Workflow status"`
	CreatedAt  string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt  string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		QuoteID:    inv.QuoteID,
		ProjectID:  inv.ProjectID,
		Total:      inv.Total,
		AmountPaid: inv.AmountPaid,
		Balance:    inv.Balance(),
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt.Format(timeFormat),
		UpdatedAt:  inv.UpdatedAt.Format(timeFormat),
	}
}

type PaymentResponse struct {
	ID         string `json:"id" doc:"Unique identifier"`
	InvoiceID  string `json:"invoice_id" doc:"Invoice the payment is against"`
	CustomerID string `json:"customer_id" doc:"Paying customer"`
	Amount     int64  `json:"amount" doc:"Payment amount in cents"`
	Status     string `json:"status" doc:"Workflow status"`
	CreatedAt  string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt  string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:         p.ID,
		InvoiceID:  p.InvoiceID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(timeFormat),
		UpdatedAt:  p.UpdatedAt.Format(timeFormat),
	}
}

type ProjectResponse struct {
	ID            string `json:"id" doc:"Unique identifier"`
	CustomerID    string `json:"customer_id" doc:"Owning customer"`
	InvoiceID     string `json:"invoice_id,omitempty" doc:"Funding invoice, if any"`
	Name          string `json:"name" doc:"Project name"`
	DepositPaidAt string `json:"deposit_paid_at,omitempty" doc:"When the deposit threshold was crossed (ISO 8601)"`
	Status        string `json:"status" doc:"Workflow status"`
	CreatedAt     string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt     string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toProjectResponse(p domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:         p.ID,
		CustomerID: p.CustomerID,
		InvoiceID:  p.InvoiceID,
		Name:       p.Name,
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(timeFormat),
		UpdatedAt:  p.UpdatedAt.Format(timeFormat),
	}
	if p.DepositPaidAt != nil {
		resp.DepositPaidAt = p.DepositPaidAt.Format(timeFormat)
	}
	return resp
}

type AppointmentResponse struct {
	ID           string `json:"id" doc:"Unique identifier"`
	CustomerID   string `json:"customer_id" doc:"Owning customer"`
	ScheduledFor string `json:"scheduled_for" doc:"Visit time (ISO 8601)"`
	Status       string `json:"status" doc:"Workflow status"`
	CreatedAt    string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt    string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toAppointmentResponse(a domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:           a.ID,
		CustomerID:   a.CustomerID,
		ScheduledFor: a.ScheduledFor.Format(timeFormat),
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt.Format(timeFormat),
		UpdatedAt:    a.UpdatedAt.Format(timeFormat),
	}
}

// --- Inputs ---

type CreateCustomerInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		Name  string `json:"name" minLength:"1" maxLength:"255" doc:"Display name"`
		Email string `json:"email" format:"email" doc:"Contact email"`
	}
}

type CreateQuoteInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		CustomerID string `json:"customer_id" minLength:"1" doc:"Owning customer"`
		Total      int64  `json:"total" minimum:"0" doc:"Quoted total in cents"`
	}
}

type CreateInvoiceInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		CustomerID string `json:"customer_id" minLength:"1" doc:"Owning customer"`
		QuoteID    string `json:"quote_id,omitempty" doc:"Source quote"`
		ProjectID  string `json:"project_id,omitempty" doc:"Funded project"`
		Total      int64  `json:"total" minimum:"0" doc:"Invoice total in cents"`
	}
}

type CreatePaymentInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		InvoiceID  string `json:"invoice_id" minLength:"1" doc:"Invoice to pay against"`
		CustomerID string `json:"customer_id" minLength:"1" doc:"Paying customer"`
		Amount     int64  `json:"amount" minimum:"1" doc:"Payment amount in cents"`
	}
}

type CreateProjectInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		CustomerID string `json:"customer_id" minLength:"1" doc:"Owning customer"`
		InvoiceID  string `json:"invoice_id,omitempty" doc:"Funding invoice"`
		Name       string `json:"name" minLength:"1" maxLength:"255" doc:"Project name"`
	}
}

type CreateAppointmentInput struct {
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		CustomerID   string    `json:"customer_id" minLength:"1" doc:"Owning customer"`
		ScheduledFor time.Time `json:"scheduled_for" doc:"Visit time (ISO 8601)"`
	}
}

type GetEntityInput struct {
	ID    string `path:"id" doc:"Entity ID"`
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
}

type ListEntitiesInput struct {
	OrgID  string `header:"X-Organization-ID" doc:"Organization scope"`
	Status string `query:"status" required:"false" doc:"Filter by status"`
	Limit  int    `query:"limit" required:"false" default:"50" doc:"Max results"`
	Offset int    `query:"offset" required:"false" default:"0" doc:"Pagination offset"`
}

func (i *ListEntitiesInput) filter() domain.ListFilter {
	filter := domain.ListFilter{
		Limit:  i.Limit,
		Offset: i.Offset,
	}
	if i.Status != "" {
		s := domain.Status(i.Status)
		filter.Status = &s
	}
	return filter
}

// --- Outputs ---

type CustomerOutput struct {
	Body CustomerResponse
}

type QuoteOutput struct {
	Body QuoteResponse
}

type InvoiceOutput struct {
	Body InvoiceResponse
}

type PaymentOutput struct {
	Body PaymentResponse
}

type ProjectOutput struct {
	Body ProjectResponse
}

type AppointmentOutput struct {
	Body AppointmentResponse
}

type ListCustomersOutput struct {
	Body []CustomerResponse
}

type ListInvoicesOutput struct {
	Body []InvoiceResponse
}

// RegisterEntities adds the per-kind create/get routes to the Huma API.
func RegisterEntities(api huma.API, entities *app.EntityService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-customer",
		Method:      http.MethodPost,
		Path:        "/api/v1/customers",
		Summary:     "Create a customer",
		Tags:        []string{"Customers"},
	}, func(ctx context.Context, input *CreateCustomerInput) (*CustomerOutput, error) {
		c, err := entities.CreateCustomer(ctx, input.OrgID, input.Body.Name, input.Body.Email)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CustomerOutput{Body: toCustomerResponse(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-customer",
		Method:      http.MethodGet,
		Path:        "/api/v1/customers/{id}",
		Summary:     "Get a customer by ID",
		Tags:        []string{"Customers"},
	}, func(ctx context.Context, input *GetEntityInput) (*CustomerOutput, error) {
		c, err := entities.GetCustomer(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CustomerOutput{Body: toCustomerResponse(c)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-customers",
		Method:      http.MethodGet,
		Path:        "/api/v1/customers",
		Summary:     "List customers",
		Tags:        []string{"Customers"},
	}, func(ctx context.Context, input *ListEntitiesInput) (*ListCustomersOutput, error) {
		customers, err := entities.ListCustomers(ctx, input.OrgID, input.filter())
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]CustomerResponse, len(customers))
		for i, c := range customers {
			resp[i] = toCustomerResponse(c)
		}
		return &ListCustomersOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-quote",
		Method:      http.MethodPost,
		Path:        "/api/v1/quotes",
		Summary:     "Create a quote",
		Tags:        []string{"Quotes"},
	}, func(ctx context.Context, input *CreateQuoteInput) (*QuoteOutput, error) {
		q, err := entities.CreateQuote(ctx, input.OrgID, input.Body.CustomerID, input.Body.Total)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &QuoteOutput{Body: toQuoteResponse(q)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-quote",
		Method:      http.MethodGet,
		Path:        "/api/v1/quotes/{id}",
		Summary:     "Get a quote by ID",
		Tags:        []string{"Quotes"},
	}, func(ctx context.Context, input *GetEntityInput) (*QuoteOutput, error) {
		q, err := entities.GetQuote(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &QuoteOutput{Body: toQuoteResponse(q)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-invoice",
		Method:      http.MethodPost,
		Path:        "/api/v1/invoices",
		Summary:     "Create an invoice",
		Tags:        []string{"Invoices"},
	}, func(ctx context.Context, input *CreateInvoiceInput) (*InvoiceOutput, error) {
		inv, err := entities.CreateInvoice(ctx, input.OrgID, input.Body.CustomerID, input.Body.QuoteID, input.Body.ProjectID, input.Body.Total)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &InvoiceOutput{Body: toInvoiceResponse(inv)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-invoice",
		Method:      http.MethodGet,
		Path:        "/api/v1/invoices/{id}",
		Summary:     "Get an invoice by ID",
		Tags:        []string{"Invoices"},
	}, func(ctx context.Context, input *GetEntityInput) (*InvoiceOutput, error) {
		inv, err := entities.GetInvoice(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &InvoiceOutput{Body: toInvoiceResponse(inv)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-invoices",
		Method:      http.MethodGet,
		Path:        "/api/v1/invoices",
		Summary:     "List invoices",
		Tags:        []string{"Invoices"},
	}, func(ctx context.Context, input *ListEntitiesInput) (*ListInvoicesOutput, error) {
		invoices, err := entities.ListInvoices(ctx, input.OrgID, input.filter())
		if err != nil {
			return nil, toHumaError(err)
		}

		resp := make([]InvoiceResponse, len(invoices))
		for i, inv := range invoices {
			resp[i] = toInvoiceResponse(inv)
		}
		return &ListInvoicesOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-payment",
		Method:      http.MethodPost,
		Path:        "/api/v1/payments",
		Summary:     "Create a payment",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *CreatePaymentInput) (*PaymentOutput, error) {
		p, err := entities.CreatePayment(ctx, input.OrgID, input.Body.InvoiceID, input.Body.CustomerID, input.Body.Amount)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &PaymentOutput{Body: toPaymentResponse(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-payment",
		Method:      http.MethodGet,
		Path:        "/api/v1/payments/{id}",
		Summary:     "Get a payment by ID",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *GetEntityInput) (*PaymentOutput, error) {
		p, err := entities.GetPayment(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &PaymentOutput{Body: toPaymentResponse(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-project",
		Method:      http.MethodPost,
		Path:        "/api/v1/projects",
		Summary:     "Create a project",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *CreateProjectInput) (*ProjectOutput, error) {
		p, err := entities.CreateProject(ctx, input.OrgID, input.Body.CustomerID, input.Body.InvoiceID, input.Body.Name)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ProjectOutput{Body: toProjectResponse(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-project",
		Method:      http.MethodGet,
		Path:        "/api/v1/projects/{id}",
		Summary:     "Get a project by ID",
		Tags:        []string{"Projects"},
	}, func(ctx context.Context, input *GetEntityInput) (*ProjectOutput, error) {
		p, err := entities.GetProject(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ProjectOutput{Body: toProjectResponse(p)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "create-appointment",
		Method:      http.MethodPost,
		Path:        "/api/v1/appointments",
		Summary:     "Create an appointment",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *CreateAppointmentInput) (*AppointmentOutput, error) {
		a, err := entities.CreateAppointment(ctx, input.OrgID, input.Body.CustomerID, input.Body.ScheduledFor)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &AppointmentOutput{Body: toAppointmentResponse(a)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-appointment",
		Method:      http.MethodGet,
		Path:        "/api/v1/appointments/{id}",
		Summary:     "Get an appointment by ID",
		Tags:        []string{"Appointments"},
	}, func(ctx context.Context, input *GetEntityInput) (*AppointmentOutput, error) {
		a, err := entities.GetAppointment(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &AppointmentOutput{Body: toAppointmentResponse(a)}, nil
	})
}
