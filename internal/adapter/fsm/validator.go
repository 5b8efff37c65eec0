package fsm

import (
	"context"
	"sort"

	loopfsm "github.com/looplab/fsm"

	"github.com/fieldops/bizflow/internal/domain"
)

// Compile-time check: Validator implements domain.TransitionValidator.
var _ domain.TransitionValidator = (*Validator)(nil)

// eventsByKind converts each entity kind's domain transition table into
// looplab/fsm EventDesc format. Events are named after their destination
// state, and transitions sharing a destination are consolidated into a
// single EventDesc with multiple source states (e.g., an invoice can reach
// "cancelled" from draft, sent, viewed, or overdue).
var eventsByKind = buildEvents()

func buildEvents() map[domain.Kind][]loopfsm.EventDesc {
	out := make(map[domain.Kind][]loopfsm.EventDesc, len(domain.Kinds))

	for _, kind := range domain.Kinds {
		grouped := make(map[string][]string)
		order := make([]string, 0)

		for _, t := range domain.TransitionsFor(kind) {
			dst := string(t.Dst)
			if _, exists := grouped[dst]; !exists {
				order = append(order, dst)
			}
			grouped[dst] = append(grouped[dst], string(t.Src))
		}

		descs := make([]loopfsm.EventDesc, 0, len(order))
		for _, dst := range order {
			descs = append(descs, loopfsm.EventDesc{
				Name: dst,
				Src:  grouped[dst],
				Dst:  dst,
			})
		}
		out[kind] = descs
	}

	return out
}

// Validator implements domain.TransitionValidator using looplab/fsm.
// It creates a short-lived FSM instance per Validate call, initialized with
// the entity's current state. This is necessary because looplab/fsm is
// stateful (it tracks the current state internally).
type Validator struct{}

// New creates a new FSM-backed transition validator.
func New() *Validator {
	return &Validator{}
}

// Validate reports whether from → to is a legal move for the kind. The
// result always carries the full set of reachable destinations from the
// source state, sorted for deterministic output. Unknown kinds or states
// produce an invalid result with no alternatives rather than an error.
func (v *Validator) Validate(_ context.Context, kind domain.Kind, from, to domain.Status) domain.ValidationResult {
	machine := loopfsm.NewFSM(string(from), eventsByKind[kind], nil)

	names := machine.AvailableTransitions()
	sort.Strings(names)

	allowed := make([]domain.Status, 0, len(names))
	for _, name := range names {
		allowed = append(allowed, domain.Status(name))
	}

	return domain.ValidationResult{
		Valid:   machine.Can(string(to)),
		Allowed: allowed,
	}
}
