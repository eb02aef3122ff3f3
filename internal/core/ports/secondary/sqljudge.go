package secondary

import (
	"context"

	"gitlab.com/codecapsules.net/internal/domain"
)

// SQLJudgeResponse is the raw outcome of running the candidate and reference
// queries against a freshly seeded schema. Judged is set when the backend
// computed the row-set comparison itself; otherwise the SQL validation
// service compares ObservedRows against the expected rows.
type SQLJudgeResponse struct {
	Judged       bool
	Success      bool
	ObservedRows []domain.Row
	ExpectedRows []domain.Row
	Columns      []string
	DiffMessage  string
	Error        string
}

// SQLJudge runs schema setup plus both queries in an isolated, discarded
// schema. Implementations must never leave seeded data behind.
type SQLJudge interface {
	Judge(ctx context.Context, req *domain.SQLValidationRequest) (*SQLJudgeResponse, error)
}
