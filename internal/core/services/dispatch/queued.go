package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

var _ IDispatchService = (*QueuedDispatcher)(nil)

// QueuedDispatcher enqueues the job and polls for its result up to the same
// bound as direct mode. On timeout it returns the same failed-result shape,
// so callers never need to know which strategy served them.
type QueuedDispatcher struct {
	queue  secondary.JobQueue
	logger primary.Logger
}

// NewQueuedDispatcher creates a queued-mode dispatcher.
func NewQueuedDispatcher(queue secondary.JobQueue, logger primary.Logger) *QueuedDispatcher {
	return &QueuedDispatcher{queue: queue, logger: logger}
}

// Dispatch enqueues the job and awaits its result.
func (d *QueuedDispatcher) Dispatch(ctx context.Context, job *domain.ExecutionJob) *domain.ExecutionResult {
	jobID, err := d.queue.Enqueue(ctx, job)
	if err != nil {
		d.logger.Error("Failed to enqueue job",
			"jobId", job.ID,
			"language", job.Language,
			"error", err)
		return domain.FailedResult(fmt.Sprintf("failed to enqueue job: %v", err))
	}

	wait := time.Duration(job.TimeoutSeconds)*time.Second + dispatchGrace
	result, err := d.queue.AwaitResult(ctx, jobID, wait)
	if err != nil {
		if errors.Is(err, secondary.ErrAwaitTimeout) || errors.Is(err, context.DeadlineExceeded) {
			d.logger.Warn("Queued execution timed out",
				"jobId", jobID,
				"language", job.Language,
				"timeoutSeconds", job.TimeoutSeconds)
			return domain.FailedResult(fmt.Sprintf("execution timed out after %ds", job.TimeoutSeconds))
		}
		d.logger.Error("Failed to await job result",
			"jobId", jobID,
			"language", job.Language,
			"error", err)
		return domain.FailedResult(fmt.Sprintf("execution backend error: %v", err))
	}
	return result
}
