package dispatch

import (
	"context"

	"gitlab.com/codecapsules.net/internal/domain"
)

// IDispatchService submits one execution job to the sandboxed backend and
// returns its result. Dispatch never fails with an error: timeouts and
// infrastructure failures are encoded as failed ExecutionResults so one
// job's outage cannot abort a whole batch. Callers must treat Dispatch as a
// bounded-wait operation that may block up to the job timeout.
type IDispatchService interface {
	Dispatch(ctx context.Context, job *domain.ExecutionJob) *domain.ExecutionResult
}
