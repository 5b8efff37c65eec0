package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fieldops/bizflow/internal/app"
	"github.com/fieldops/bizflow/internal/domain"
)

// --- Validate ---

type ValidateTransitionInput struct {
	Body struct {
		Kind string `json:"kind" enum:"quote,invoice,payment,project,appointment,customer" doc:"Entity kind"`
		From string `json:"from_status" minLength:"1" doc:"Current status"`
		To   string `json:"to_status" minLength:"1" doc:"Target status"`
	}
}

type ValidateTransitionOutput struct {
	Body struct {
		Valid   bool     `json:"valid" doc:"Whether the transition is legal"`
		Allowed []string `json:"allowed_transitions" doc:"States reachable from the current status"`
	}
}

// --- Available transitions (registry + role filter, no entity) ---

type AvailableTransitionsInput struct {
	Kind string `query:"kind" enum:"quote,invoice,payment,project,appointment,customer" doc:"Entity kind"`
	From string `query:"from" minLength:"1" doc:"Current status"`
	Role string `query:"role" doc:"Actor role" enum:"super_admin,admin,manager,accountant,employee,viewer,client"`
}

type AvailableTransitionsOutput struct {
	Body struct {
		Allowed []string `json:"allowed_transitions" doc:"States the role may move the entity to"`
	}
}

// --- Execute ---

type ExecuteTransitionInput struct {
	Kind  string `path:"kind" enum:"quote,invoice,payment,project,appointment,customer" doc:"Entity kind"`
	ID    string `path:"id" doc:"Entity ID"`
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Body  struct {
		To        string `json:"to_status" minLength:"1" doc:"Target status"`
		ActorID   string `json:"actor_id" minLength:"1" doc:"Acting user ID"`
		ActorRole string `json:"actor_role" doc:"Acting user role" enum:"super_admin,admin,manager,accountant,employee,viewer,client"`
		Reason    string `json:"reason,omitempty" maxLength:"500" doc:"Optional free-text reason, recorded in the audit trail"`
	}
}

type ExecuteTransitionOutput struct {
	Body struct {
		Kind           string `json:"kind" doc:"Entity kind"`
		ID             string `json:"id" doc:"Entity ID"`
		PreviousStatus string `json:"previous_status" doc:"Status before the transition"`
		Status         string `json:"status" doc:"Status after the transition"`
	}
}

// --- Next moves (entity-aware) ---

type NextMovesInput struct {
	Kind  string `path:"kind" enum:"quote,invoice,payment,project,appointment,customer" doc:"Entity kind"`
	ID    string `path:"id" doc:"Entity ID"`
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
	Role  string `query:"role" doc:"Actor role" enum:"super_admin,admin,manager,accountant,employee,viewer,client"`
}

type NextMovesOutput struct {
	Body struct {
		Allowed []string `json:"allowed_transitions" doc:"States the role may move this entity to"`
	}
}

// --- Lifecycle ---

type LifecycleInput struct {
	ID    string `path:"id" doc:"Customer ID"`
	OrgID string `header:"X-Organization-ID" doc:"Organization scope"`
}

type LifecycleOutput struct {
	Body struct {
		Stage      int    `json:"stage" doc:"Lifecycle stage, 1 through 8"`
		Name       string `json:"stage_name" doc:"Human-readable stage name"`
		Completed  bool   `json:"completed" doc:"True only at the final stage"`
		NextAction string `json:"next_action" doc:"Suggested next step"`
	}
}

// Register adds the workflow and lifecycle routes to the Huma API.
func Register(api huma.API, workflow *app.WorkflowService, lifecycle *app.LifecycleService) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-transition",
		Method:      http.MethodPost,
		Path:        "/api/v1/workflow/validate",
		Summary:     "Check whether a status transition is legal",
		Tags:        []string{"Workflow"},
	}, func(ctx context.Context, input *ValidateTransitionInput) (*ValidateTransitionOutput, error) {
		result := workflow.Validate(ctx,
			domain.Kind(input.Body.Kind),
			domain.Status(input.Body.From),
			domain.Status(input.Body.To),
		)
		out := &ValidateTransitionOutput{}
		out.Body.Valid = result.Valid
		out.Body.Allowed = toStrings(result.Allowed)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "available-transitions",
		Method:      http.MethodGet,
		Path:        "/api/v1/workflow/transitions",
		Summary:     "List transitions a role may invoke from a status",
		Tags:        []string{"Workflow"},
	}, func(ctx context.Context, input *AvailableTransitionsInput) (*AvailableTransitionsOutput, error) {
		allowed := workflow.AvailableTransitions(
			domain.Kind(input.Kind),
			domain.Status(input.From),
			domain.Role(input.Role),
		)
		out := &AvailableTransitionsOutput{}
		out.Body.Allowed = toStrings(allowed)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "execute-transition",
		Method:      http.MethodPost,
		Path:        "/api/v1/workflow/{kind}/{id}/transitions",
		Summary:     "Apply a status transition to an entity",
		Tags:        []string{"Workflow"},
	}, func(ctx context.Context, input *ExecuteTransitionInput) (*ExecuteTransitionOutput, error) {
		cmd := app.TransitionCommand{
			Kind:      domain.Kind(input.Kind),
			EntityID:  input.ID,
			To:        domain.Status(input.Body.To),
			ActorID:   input.Body.ActorID,
			ActorRole: domain.Role(input.Body.ActorRole),
			OrgID:     input.OrgID,
			Reason:    input.Body.Reason,
		}
		result, err := workflow.Execute(ctx, cmd)
		if err != nil {
			return nil, toHumaError(err)
		}
		out := &ExecuteTransitionOutput{}
		out.Body.Kind = input.Kind
		out.Body.ID = input.ID
		out.Body.PreviousStatus = string(result.PreviousStatus)
		out.Body.Status = input.Body.To
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "next-moves",
		Method:      http.MethodGet,
		Path:        "/api/v1/workflow/{kind}/{id}/transitions",
		Summary:     "List transitions a role may apply to this entity now",
		Tags:        []string{"Workflow"},
	}, func(ctx context.Context, input *NextMovesInput) (*NextMovesOutput, error) {
		allowed, err := workflow.NextMoves(ctx,
			domain.Kind(input.Kind),
			input.OrgID,
			input.ID,
			domain.Role(input.Role),
		)
		if err != nil {
			return nil, toHumaError(err)
		}
		out := &NextMovesOutput{}
		out.Body.Allowed = toStrings(allowed)
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "customer-lifecycle",
		Method:      http.MethodGet,
		Path:        "/api/v1/customers/{id}/lifecycle",
		Summary:     "Get a customer's lifecycle stage",
		Tags:        []string{"Lifecycle"},
	}, func(ctx context.Context, input *LifecycleInput) (*LifecycleOutput, error) {
		stage, err := lifecycle.Stage(ctx, input.OrgID, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		out := &LifecycleOutput{}
		out.Body.Stage = stage.Stage
		out.Body.Name = stage.Name
		out.Body.Completed = stage.Completed
		out.Body.NextAction = stage.NextAction
		return out, nil
	})
}

func toStrings(states []domain.Status) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return huma.Error404NotFound(nf.Error())
	}

	var inv *domain.InvalidTransitionError
	if errors.As(err, &inv) {
		msg := inv.Error()
		if len(inv.Allowed) > 0 {
			msg = fmt.Sprintf("%s (allowed: %s)", msg, strings.Join(toStrings(inv.Allowed), ", "))
		}
		return huma.Error422UnprocessableEntity(msg)
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return huma.Error409Conflict(conflict.Error())
	}

	if errors.Is(err, domain.ErrCustomerImmutable) {
		return huma.Error422UnprocessableEntity(err.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}
