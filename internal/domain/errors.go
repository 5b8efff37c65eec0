package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for simple conditions without extra context.
var (
	// ErrCustomerImmutable is returned when a caller tries to transition a
	// customer directly. Customer status moves only through the
	// quote-acceptance side effect.
	ErrCustomerImmutable = errors.New("customer status changes only through quote acceptance")
)

// NotFoundError is returned when an entity id does not resolve within the
// given organization. Cross-tenant lookups fail the same way as missing rows.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Kind)
}

// InvalidTransitionError is returned when the target state is not reachable
// from the entity's current state. Allowed carries the legal alternatives so
// a caller can self-correct.
type InvalidTransitionError struct {
	Kind    Kind
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// ConflictError is returned when a concurrent transition moved the entity
// underneath us. Retrying is the caller's decision.
type ConflictError struct {
	Kind Kind
	ID   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q was modified concurrently", e.Kind, e.ID)
}

// IsNotFound reports whether the error is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
