package river

import (
	"context"
	"log/slog"

	"github.com/riverqueue/river"
)

// AuditWorker processes audit jobs from the River queue. For now it writes a
// structured log line per transition; future versions will forward entries
// to an external compliance store.
type AuditWorker struct {
	river.WorkerDefaults[AuditJobArgs]
}

// Work processes a single audit job.
func (w *AuditWorker) Work(ctx context.Context, job *river.Job[AuditJobArgs]) error {
	slog.InfoContext(ctx, "transition recorded",
		"kind", job.Args.EntityKind,
		"entity_id", job.Args.EntityID,
		"org_id", job.Args.OrgID,
		"from", job.Args.From,
		"to", job.Args.To,
		"actor_id", job.Args.ActorID,
		"actor_role", job.Args.ActorRole,
		"job_id", job.ID,
		"attempt", job.Attempt,
	)
	return nil
}
