package river

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"github.com/fieldops/bizflow/internal/domain"
)

// Compile-time check: Sink implements domain.AuditSink.
var _ domain.AuditSink = (*Sink)(nil)

// AuditJobArgs carries one applied transition into the audit queue. River
// serializes this as JSON into its job table; the worker gets a complete
// snapshot and never needs to query the entities again.
type AuditJobArgs struct {
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	EntityKind string    `json:"kind"`
	EntityID   string    `json:"entity_id"`
	OrgID      string    `json:"org_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Reason     string    `json:"reason,omitempty"`
	At         time.Time `json:"at"`
}

// Kind returns the unique job type identifier used by River's job routing.
func (AuditJobArgs) Kind() string { return "audit.recorded" }

// Client is the River client type parameterized for SQLite (*sql.Tx).
type Client = river.Client[*sql.Tx]

// Sink implements domain.AuditSink by enqueuing River jobs. Enqueue
// failures surface to the caller, which treats the sink as fire-and-forget.
type Sink struct {
	client *Client
}

// NewSink creates an audit sink backed by the given River client.
func NewSink(client *Client) *Sink {
	return &Sink{client: client}
}

// Record enqueues one audit entry as an async job in River.
func (s *Sink) Record(ctx context.Context, entry domain.AuditEntry) error {
	_, err := s.client.Insert(ctx, AuditJobArgs{
		ActorID:    entry.ActorID,
		ActorRole:  string(entry.ActorRole),
		EntityKind: string(entry.Kind),
		EntityID:   entry.EntityID,
		OrgID:      entry.OrgID,
		From:       string(entry.From),
		To:         string(entry.To),
		Reason:     entry.Reason,
		At:         entry.At,
	}, nil)
	if err != nil {
		return fmt.Errorf("enqueuing audit job: %w", err)
	}
	return nil
}
