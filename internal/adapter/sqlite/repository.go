package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/fieldops/bizflow/internal/domain"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // Register SQLite driver.
)

//go:embed migrations/*.sql
var migrations embed.FS

// querier is the subset of *sql.DB and *sql.Tx the store needs, so the same
// methods serve both the root store and a transaction-scoped view.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store implements domain.UnitOfWork using SQLite. Updates carry an
// optimistic version check so concurrent transitions against the same row
// surface as a conflict instead of a lost update.
type Store struct {
	db *sql.DB // nil when this store is scoped to a transaction
	q  querier
}

// Compile-time check: Store implements domain.UnitOfWork.
var _ domain.UnitOfWork = (*Store)(nil)

// New opens a SQLite database, runs migrations, and returns a ready store.
func New(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection keeps every statement on the connection that ran
	// the PRAGMAs and avoids SQLITE_BUSY when sharing the DB with River.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	// Enable foreign keys (off by default in SQLite).
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	return NewFromDB(db)
}

// NewFromDB wraps an existing database connection, runs migrations, and
// returns a ready store. Use this when the *sql.DB has been pre-configured
// (e.g., with otelsql instrumentation).
func NewFromDB(db *sql.DB) (*Store, error) {
	if err := runMigrations(db); err != nil {
		return nil, err
	}

	return &Store{db: db, q: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for use by other adapters
// (e.g., river).
func (s *Store) DB() *sql.DB {
	return s.db
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}

// InTx runs fn against a transaction-scoped view of the store. A nested
// call on a transaction-scoped store joins the existing transaction.
func (s *Store) InTx(ctx context.Context, fn func(domain.Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(&Store{q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rolling back after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const timeFormat = "2006-01-02T15:04:05Z"

// resolveUpdateFailure turns a zero-row update into the right error: the row
// is either missing in this org or was moved by a concurrent writer.
func (s *Store) resolveUpdateFailure(ctx context.Context, kind domain.Kind, table, orgID, id string) error {
	var one int
	err := s.q.QueryRowContext(ctx,
		`SELECT 1 FROM `+table+` WHERE id = ? AND org_id = ?`, id, orgID,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.NotFoundError{Kind: kind, ID: id}
	}
	if err != nil {
		return fmt.Errorf("checking %s %q: %w", kind, id, err)
	}
	return &domain.ConflictError{Kind: kind, ID: id}
}

// --- Customers ---

func (s *Store) CreateCustomer(ctx context.Context, c domain.Customer) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO customers (id, org_id, name, email, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OrgID, c.Name, c.Email, string(c.Status), c.Version,
		c.CreatedAt.Format(timeFormat), c.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}
	return nil
}

func (s *Store) GetCustomer(ctx context.Context, orgID, id string) (domain.Customer, error) {
	return scanCustomer(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, name, email, status, version, created_at, updated_at
		 FROM customers WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE customers SET name = ?, email = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		c.Name, c.Email, string(c.Status),
		time.Now().UTC().Format(timeFormat),
		c.ID, c.OrgID, c.Version,
	)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindCustomer, "customers", c.OrgID, c.ID)
}

func (s *Store) ListCustomers(ctx context.Context, orgID string, filter domain.ListFilter) ([]domain.Customer, error) {
	query := `SELECT id, org_id, name, email, status, version, created_at, updated_at
		 FROM customers WHERE org_id = ?`
	args := []any{orgID}

	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}

	query += ` ORDER BY created_at DESC, rowid DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomerFromRows(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

// --- Quotes ---

func (s *Store) CreateQuote(ctx context.Context, q domain.Quote) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO quotes (id, org_id, customer_id, total, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.OrgID, q.CustomerID, q.Total, string(q.Status), q.Version,
		q.CreatedAt.Format(timeFormat), q.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}
	return nil
}

func (s *Store) GetQuote(ctx context.Context, orgID, id string) (domain.Quote, error) {
	return scanQuote(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, total, status, version, created_at, updated_at
		 FROM quotes WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdateQuote(ctx context.Context, q domain.Quote) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE quotes SET customer_id = ?, total = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		q.CustomerID, q.Total, string(q.Status),
		time.Now().UTC().Format(timeFormat),
		q.ID, q.OrgID, q.Version,
	)
	if err != nil {
		return fmt.Errorf("updating quote: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindQuote, "quotes", q.OrgID, q.ID)
}

func (s *Store) LatestQuoteByCustomer(ctx context.Context, orgID, customerID string) (domain.Quote, error) {
	return scanQuote(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, total, status, version, created_at, updated_at
		 FROM quotes WHERE org_id = ? AND customer_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`, orgID, customerID,
	), "")
}

// --- Invoices ---

func (s *Store) CreateInvoice(ctx context.Context, i domain.Invoice) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO invoices (id, org_id, customer_id, quote_id, project_id, total, amount_paid, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.OrgID, i.CustomerID, i.QuoteID, i.ProjectID, i.Total, i.AmountPaid,
		string(i.Status), i.Version,
		i.CreatedAt.Format(timeFormat), i.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func (s *Store) GetInvoice(ctx context.Context, orgID, id string) (domain.Invoice, error) {
	return scanInvoice(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, quote_id, project_id, total, amount_paid, status, version, created_at, updated_at
		 FROM invoices WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdateInvoice(ctx context.Context, i domain.Invoice) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE invoices SET customer_id = ?, quote_id = ?, project_id = ?, total = ?, amount_paid = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		i.CustomerID, i.QuoteID, i.ProjectID, i.Total, i.AmountPaid, string(i.Status),
		time.Now().UTC().Format(timeFormat),
		i.ID, i.OrgID, i.Version,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindInvoice, "invoices", i.OrgID, i.ID)
}

func (s *Store) LatestInvoiceByCustomer(ctx context.Context, orgID, customerID string) (domain.Invoice, error) {
	return scanInvoice(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, quote_id, project_id, total, amount_paid, status, version, created_at, updated_at
		 FROM invoices WHERE org_id = ? AND customer_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`, orgID, customerID,
	), "")
}

func (s *Store) ListInvoices(ctx context.Context, orgID string, filter domain.ListFilter) ([]domain.Invoice, error) {
	query := `SELECT id, org_id, customer_id, quote_id, project_id, total, amount_paid, status, version, created_at, updated_at
		 FROM invoices WHERE org_id = ?`
	args := []any{orgID}

	if filter.Status != nil {
		query += ` AND status = ?`
		args = append(args, string(*filter.Status))
	}

	query += ` ORDER BY created_at DESC, rowid DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		i, err := scanInvoiceFromRows(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, i)
	}
	return invoices, rows.Err()
}

// --- Payments ---

func (s *Store) CreatePayment(ctx context.Context, p domain.Payment) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO payments (id, org_id, invoice_id, customer_id, amount, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OrgID, p.InvoiceID, p.CustomerID, p.Amount, string(p.Status), p.Version,
		p.CreatedAt.Format(timeFormat), p.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting payment: %w", err)
	}
	return nil
}

func (s *Store) GetPayment(ctx context.Context, orgID, id string) (domain.Payment, error) {
	return scanPayment(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, invoice_id, customer_id, amount, status, version, created_at, updated_at
		 FROM payments WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdatePayment(ctx context.Context, p domain.Payment) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE payments SET invoice_id = ?, customer_id = ?, amount = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		p.InvoiceID, p.CustomerID, p.Amount, string(p.Status),
		time.Now().UTC().Format(timeFormat),
		p.ID, p.OrgID, p.Version,
	)
	if err != nil {
		return fmt.Errorf("updating payment: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindPayment, "payments", p.OrgID, p.ID)
}

// --- Projects ---

func (s *Store) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO projects (id, org_id, customer_id, invoice_id, name, deposit_paid_at, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OrgID, p.CustomerID, p.InvoiceID, p.Name, formatNullableTime(p.DepositPaidAt),
		string(p.Status), p.Version,
		p.CreatedAt.Format(timeFormat), p.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (s *Store) GetProject(ctx context.Context, orgID, id string) (domain.Project, error) {
	return scanProject(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, invoice_id, name, deposit_paid_at, status, version, created_at, updated_at
		 FROM projects WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdateProject(ctx context.Context, p domain.Project) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE projects SET customer_id = ?, invoice_id = ?, name = ?, deposit_paid_at = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		p.CustomerID, p.InvoiceID, p.Name, formatNullableTime(p.DepositPaidAt), string(p.Status),
		time.Now().UTC().Format(timeFormat),
		p.ID, p.OrgID, p.Version,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindProject, "projects", p.OrgID, p.ID)
}

func (s *Store) LatestProjectByCustomer(ctx context.Context, orgID, customerID string) (domain.Project, error) {
	return scanProject(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, invoice_id, name, deposit_paid_at, status, version, created_at, updated_at
		 FROM projects WHERE org_id = ? AND customer_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`, orgID, customerID,
	), "")
}

// --- Appointments ---

func (s *Store) CreateAppointment(ctx context.Context, a domain.Appointment) error {
	_, err := s.q.ExecContext(ctx,
		`INSERT INTO appointments (id, org_id, customer_id, scheduled_for, status, version, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.OrgID, a.CustomerID, a.ScheduledFor.Format(timeFormat), string(a.Status), a.Version,
		a.CreatedAt.Format(timeFormat), a.UpdatedAt.Format(timeFormat),
	)
	if err != nil {
		return fmt.Errorf("inserting appointment: %w", err)
	}
	return nil
}

func (s *Store) GetAppointment(ctx context.Context, orgID, id string) (domain.Appointment, error) {
	return scanAppointment(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, scheduled_for, status, version, created_at, updated_at
		 FROM appointments WHERE id = ? AND org_id = ?`, id, orgID,
	), id)
}

func (s *Store) UpdateAppointment(ctx context.Context, a domain.Appointment) error {
	result, err := s.q.ExecContext(ctx,
		`UPDATE appointments SET customer_id = ?, scheduled_for = ?, status = ?, version = version + 1, updated_at = ?
		 WHERE id = ? AND org_id = ? AND version = ?`,
		a.CustomerID, a.ScheduledFor.Format(timeFormat), string(a.Status),
		time.Now().UTC().Format(timeFormat),
		a.ID, a.OrgID, a.Version,
	)
	if err != nil {
		return fmt.Errorf("updating appointment: %w", err)
	}
	return s.checkUpdated(ctx, result, domain.KindAppointment, "appointments", a.OrgID, a.ID)
}

func (s *Store) LatestAppointmentByCustomer(ctx context.Context, orgID, customerID string) (domain.Appointment, error) {
	return scanAppointment(s.q.QueryRowContext(ctx,
		`SELECT id, org_id, customer_id, scheduled_for, status, version, created_at, updated_at
		 FROM appointments WHERE org_id = ? AND customer_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`, orgID, customerID,
	), "")
}

// --- Helpers ---

func (s *Store) checkUpdated(ctx context.Context, result sql.Result, kind domain.Kind, table, orgID, id string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return s.resolveUpdateFailure(ctx, kind, table, orgID, id)
	}
	return nil
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(timeFormat)
}

func scanCustomer(row *sql.Row, id string) (domain.Customer, error) {
	var c domain.Customer
	var status, createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.OrgID, &c.Name, &c.Email, &status, &c.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, &domain.NotFoundError{Kind: domain.KindCustomer, ID: id}
		}
		return domain.Customer{}, fmt.Errorf("scanning customer: %w", err)
	}

	c.Status = domain.Status(status)
	c.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	c.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return c, nil
}

func scanCustomerFromRows(rows *sql.Rows) (domain.Customer, error) {
	var c domain.Customer
	var status, createdAt, updatedAt string

	err := rows.Scan(&c.ID, &c.OrgID, &c.Name, &c.Email, &status, &c.Version, &createdAt, &updatedAt)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("scanning customer row: %w", err)
	}

	c.Status = domain.Status(status)
	c.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	c.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return c, nil
}

func scanQuote(row *sql.Row, id string) (domain.Quote, error) {
	var q domain.Quote
	var status, createdAt, updatedAt string

	err := row.Scan(&q.ID, &q.OrgID, &q.CustomerID, &q.Total, &status, &q.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Quote{}, &domain.NotFoundError{Kind: domain.KindQuote, ID: id}
		}
		return domain.Quote{}, fmt.Errorf("scanning quote: %w", err)
	}

	q.Status = domain.Status(status)
	q.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	q.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return q, nil
}

func scanInvoice(row *sql.Row, id string) (domain.Invoice, error) {
	var i domain.Invoice
	var status, createdAt, updatedAt string

	err := row.Scan(&i.ID, &i.OrgID, &i.CustomerID, &i.QuoteID, &i.ProjectID,
		&i.Total, &i.AmountPaid, &status, &i.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Invoice{}, &domain.NotFoundError{Kind: domain.KindInvoice, ID: id}
		}
		return domain.Invoice{}, fmt.Errorf("scanning invoice: %w", err)
	}

	i.Status = domain.Status(status)
	i.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	i.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return i, nil
}

func scanInvoiceFromRows(rows *sql.Rows) (domain.Invoice, error) {
	var i domain.Invoice
	var status, createdAt, updatedAt string

	err := rows.Scan(&i.ID, &i.OrgID, &i.CustomerID, &i.QuoteID, &i.ProjectID,
		&i.Total, &i.AmountPaid, &status, &i.Version, &createdAt, &updatedAt)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("scanning invoice row: %w", err)
	}

	i.Status = domain.Status(status)
	i.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	i.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return i, nil
}

func scanPayment(row *sql.Row, id string) (domain.Payment, error) {
	var p domain.Payment
	var status, createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.OrgID, &p.InvoiceID, &p.CustomerID, &p.Amount,
		&status, &p.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Payment{}, &domain.NotFoundError{Kind: domain.KindPayment, ID: id}
		}
		return domain.Payment{}, fmt.Errorf("scanning payment: %w", err)
	}

	p.Status = domain.Status(status)
	p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	p.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return p, nil
}

func scanProject(row *sql.Row, id string) (domain.Project, error) {
	var p domain.Project
	var status, createdAt, updatedAt string
	var depositPaidAt sql.NullString

	err := row.Scan(&p.ID, &p.OrgID, &p.CustomerID, &p.InvoiceID, &p.Name,
		&depositPaidAt, &status, &p.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Project{}, &domain.NotFoundError{Kind: domain.KindProject, ID: id}
		}
		return domain.Project{}, fmt.Errorf("scanning project: %w", err)
	}

	p.Status = domain.Status(status)
	p.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	p.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	if depositPaidAt.Valid {
		t, _ := time.Parse(timeFormat, depositPaidAt.String)
		p.DepositPaidAt = &t
	}
	return p, nil
}

func scanAppointment(row *sql.Row, id string) (domain.Appointment, error) {
	var a domain.Appointment
	var status, scheduledFor, createdAt, updatedAt string

	err := row.Scan(&a.ID, &a.OrgID, &a.CustomerID, &scheduledFor, &status,
		&a.Version, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, &domain.NotFoundError{Kind: domain.KindAppointment, ID: id}
		}
		return domain.Appointment{}, fmt.Errorf("scanning appointment: %w", err)
	}

	a.Status = domain.Status(status)
	a.ScheduledFor, _ = time.Parse(timeFormat, scheduledFor)
	a.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	a.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return a, nil
}
