package dispatch

import (
	"context"

	"gitlab.com/codecapsules.net/internal/domain"
)

var _ IDispatchService = (*DispatchRouter)(nil)

// DispatchRouter picks direct or queued mode per language. Both strategies
// honor the same contract, so the choice is invisible to callers.
type DispatchRouter struct {
	direct          IDispatchService
	queued          IDispatchService
	queuedLanguages map[string]bool
}

// NewDispatchRouter creates a router that sends the given languages through
// the queued strategy and everything else through the direct one.
func NewDispatchRouter(direct, queued IDispatchService, queuedLanguages map[string]bool) *DispatchRouter {
	return &DispatchRouter{
		direct:          direct,
		queued:          queued,
		queuedLanguages: queuedLanguages,
	}
}

// Dispatch routes the job to the strategy configured for its language.
func (r *DispatchRouter) Dispatch(ctx context.Context, job *domain.ExecutionJob) *domain.ExecutionResult {
	if r.queued != nil && r.queuedLanguages[job.Language] {
		return r.queued.Dispatch(ctx, job)
	}
	return r.direct.Dispatch(ctx, job)
}
