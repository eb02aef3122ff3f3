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

// Extra wall-clock allowance on top of the job's own timeout, covering
// transport and sandbox startup overhead.
const dispatchGrace = 2 * time.Second

var _ IDispatchService = (*DirectDispatcher)(nil)

// DirectDispatcher calls the execution backend synchronously under a hard
// deadline.
type DirectDispatcher struct {
	backend secondary.ExecutionBackend
	logger  primary.Logger
}

// NewDirectDispatcher creates a direct-mode dispatcher.
func NewDirectDispatcher(backend secondary.ExecutionBackend, logger primary.Logger) *DirectDispatcher {
	return &DirectDispatcher{backend: backend, logger: logger}
}

// Dispatch runs the job against the backend, bounded by the job timeout.
func (d *DirectDispatcher) Dispatch(ctx context.Context, job *domain.ExecutionJob) *domain.ExecutionResult {
	wait := time.Duration(job.TimeoutSeconds)*time.Second + dispatchGrace
	ctx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	result, err := d.backend.Execute(ctx, job)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			d.logger.Warn("Execution timed out",
				"jobId", job.ID,
				"language", job.Language,
				"timeoutSeconds", job.TimeoutSeconds)
			return domain.FailedResult(fmt.Sprintf("execution timed out after %ds", job.TimeoutSeconds))
		}
		d.logger.Error("Execution backend call failed",
			"jobId", job.ID,
			"language", job.Language,
			"error", err)
		return domain.FailedResult(fmt.Sprintf("execution backend error: %v", err))
	}
	return result
}
