package sqlvalidate

import (
	"context"
	"errors"

	"gitlab.com/codecapsules.net/internal/domain"
)

// Request-level failure; comparison failures are reported inside the
// result, never as errors. An empty SchemaSetup is valid: queries that need
// no tables run against the bare schema.
var ErrMissingReference = errors.New("no reference query provided")

// ISQLValidationService validates a candidate SQL query against a reference
// query on a freshly seeded schema. No harness synthesis is involved: the
// judge backend already sandboxes SQL execution.
type ISQLValidationService interface {
	Validate(ctx context.Context, req *domain.SQLValidationRequest) (*domain.SQLValidationResult, error)
}
