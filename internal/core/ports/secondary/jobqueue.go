package secondary

import (
	"context"
	"errors"
	"time"

	"gitlab.com/codecapsules.net/internal/domain"
)

// ErrAwaitTimeout is returned by AwaitResult when no result arrived within
// the wait bound.
var ErrAwaitTimeout = errors.New("timed out waiting for job result")

// JobQueue is the enqueue/poll transport used by queued dispatch mode. The
// queue is an opaque shared resource with its own concurrency guarantees;
// jobs are independent and idempotent to retry, so the engine imposes no
// locking of its own.
type JobQueue interface {
	// Enqueue submits a job and returns its correlation ID.
	Enqueue(ctx context.Context, job *domain.ExecutionJob) (string, error)

	// AwaitResult blocks until the job's result is available or the wait
	// bound elapses, in which case it returns ErrAwaitTimeout.
	AwaitResult(ctx context.Context, jobID string, wait time.Duration) (*domain.ExecutionResult, error)
}
