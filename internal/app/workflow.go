package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/fieldops/bizflow/internal/domain"
)

// TransitionCommand carries everything needed to move one entity to a new
// state. ActorRole is recorded in the audit trail; role-based filtering is a
// separate read query, the executor trusts the caller's authorization.
type TransitionCommand struct {
	Kind      domain.Kind
	EntityID  string
	To        domain.Status
	ActorID   string
	ActorRole domain.Role
	OrgID     string
	Reason    string
}

// TransitionResult reports the outcome of an executed transition.
// PreviousStatus is the state the entity held before the call, also on
// rejection, so callers can show what they were up against.
type TransitionResult struct {
	PreviousStatus domain.Status
}

// WorkflowService is the single entry point for entity mutation: it loads,
// validates, writes, and runs cross-entity side effects inside one unit of
// work, then records an audit entry.
type WorkflowService struct {
	store     domain.UnitOfWork
	validator domain.TransitionValidator
	audit     domain.AuditSink
	effects   map[effectKey]effectFunc
}

// NewWorkflowService creates a workflow service with the given adapters.
func NewWorkflowService(store domain.UnitOfWork, validator domain.TransitionValidator, audit domain.AuditSink) *WorkflowService {
	return &WorkflowService{
		store:     store,
		validator: validator,
		audit:     audit,
		effects:   defaultEffects(),
	}
}

// Validate answers "is from → to legal for this kind" without touching any
// entity. It never fails; illegal or unknown inputs yield Valid=false.
func (s *WorkflowService) Validate(ctx context.Context, kind domain.Kind, from, to domain.Status) domain.ValidationResult {
	return s.validator.Validate(ctx, kind, from, to)
}

// AvailableTransitions narrows the reachable set for a kind and state to
// what the given role may invoke.
func (s *WorkflowService) AvailableTransitions(kind domain.Kind, from domain.Status, role domain.Role) []domain.Status {
	return domain.AvailableTransitions(kind, from, role)
}

// NextMoves loads the entity and returns the transitions the role may invoke
// from its live state.
func (s *WorkflowService) NextMoves(ctx context.Context, kind domain.Kind, orgID, id string, role domain.Role) ([]domain.Status, error) {
	current, _, err := loadEntity(ctx, s.store, kind, orgID, id)
	if err != nil {
		return nil, err
	}
	return domain.AvailableTransitions(kind, current, role), nil
}

// Execute applies one transition atomically: the entity's state write and
// every registered side effect commit or roll back together. The audit
// record is emitted after commit and its failure never affects the result.
func (s *WorkflowService) Execute(ctx context.Context, cmd TransitionCommand) (TransitionResult, error) {
	if cmd.Kind == domain.KindCustomer {
		return TransitionResult{}, domain.ErrCustomerImmutable
	}

	var prev domain.Status

	err := s.store.InTx(ctx, func(tx domain.Store) error {
		current, entity, err := loadEntity(ctx, tx, cmd.Kind, cmd.OrgID, cmd.EntityID)
		if err != nil {
			return err
		}
		prev = current

		res := s.validator.Validate(ctx, cmd.Kind, current, cmd.To)
		if !res.Valid {
			return &domain.InvalidTransitionError{
				Kind:    cmd.Kind,
				From:    current,
				To:      cmd.To,
				Allowed: res.Allowed,
			}
		}

		entity, err = writeStatus(ctx, tx, cmd.Kind, entity, cmd.To)
		if err != nil {
			return err
		}

		if handler := s.effects[effectKey{kind: cmd.Kind, to: cmd.To}]; handler != nil {
			return handler(ctx, tx, cmd.OrgID, entity)
		}
		return nil
	})
	if err != nil {
		return TransitionResult{PreviousStatus: prev}, err
	}

	if err := s.audit.Record(ctx, domain.AuditEntry{
		ActorID:   cmd.ActorID,
		ActorRole: cmd.ActorRole,
		Kind:      cmd.Kind,
		EntityID:  cmd.EntityID,
		OrgID:     cmd.OrgID,
		From:      prev,
		To:        cmd.To,
		Reason:    cmd.Reason,
		At:        time.Now().UTC(),
	}); err != nil {
		// Fire-and-forget: a dead audit sink must not undo the transition.
		slog.WarnContext(ctx, "audit record failed",
			"error", err,
			"kind", cmd.Kind,
			"entity_id", cmd.EntityID,
		)
	}

	return TransitionResult{PreviousStatus: prev}, nil
}

// loadEntity fetches the entity scoped by organization and returns its
// current status along with the typed value for side-effect handlers.
func loadEntity(ctx context.Context, store domain.Store, kind domain.Kind, orgID, id string) (domain.Status, any, error) {
	switch kind {
	case domain.KindQuote:
		q, err := store.GetQuote(ctx, orgID, id)
		return q.Status, q, err
	case domain.KindInvoice:
		i, err := store.GetInvoice(ctx, orgID, id)
		return i.Status, i, err
	case domain.KindPayment:
		p, err := store.GetPayment(ctx, orgID, id)
		return p.Status, p, err
	case domain.KindProject:
		p, err := store.GetProject(ctx, orgID, id)
		return p.Status, p, err
	case domain.KindAppointment:
		a, err := store.GetAppointment(ctx, orgID, id)
		return a.Status, a, err
	case domain.KindCustomer:
		c, err := store.GetCustomer(ctx, orgID, id)
		return c.Status, c, err
	}
	return "", nil, &domain.NotFoundError{Kind: kind, ID: id}
}

// writeStatus persists the new state on the already-loaded entity and
// returns the updated value, so side effects see the post-transition entity.
func writeStatus(ctx context.Context, store domain.Store, kind domain.Kind, entity any, to domain.Status) (any, error) {
	switch kind {
	case domain.KindQuote:
		q := entity.(domain.Quote)
		q.Status = to
		return q, store.UpdateQuote(ctx, q)
	case domain.KindInvoice:
		i := entity.(domain.Invoice)
		i.Status = to
		return i, store.UpdateInvoice(ctx, i)
	case domain.KindPayment:
		p := entity.(domain.Payment)
		p.Status = to
		return p, store.UpdatePayment(ctx, p)
	case domain.KindProject:
		p := entity.(domain.Project)
		p.Status = to
		return p, store.UpdateProject(ctx, p)
	case domain.KindAppointment:
		a := entity.(domain.Appointment)
		a.Status = to
		return a, store.UpdateAppointment(ctx, a)
	}
	return entity, &domain.NotFoundError{Kind: kind}
}
