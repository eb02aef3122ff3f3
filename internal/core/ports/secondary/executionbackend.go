package secondary

import (
	"context"

	"gitlab.com/codecapsules.net/internal/domain"
)

// ExecutionBackend is the sandboxed execution service: it runs one program
// in isolation and reports stdout, stderr, exit code and timing. The engine
// never executes candidate code in-process.
type ExecutionBackend interface {
	Execute(ctx context.Context, job *domain.ExecutionJob) (*domain.ExecutionResult, error)
}
