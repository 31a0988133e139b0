package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// The args parameter carries the job payload and opts can customize insertion
// behavior (queue name, delay, uniqueness). When called inside a transaction,
// implementations must make the insert atomic with the surrounding
// transaction.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. The boolean
	// result reports whether a job was actually inserted (false when it was
	// skipped as a duplicate of a unique job).
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
