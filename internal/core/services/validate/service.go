package validate

import (
	"context"
	"errors"

	"gitlab.com/codecapsules.net/internal/domain"
)

// Request-level failures. Everything else that can go wrong during a
// validation becomes a failed verdict, never an error.
var (
	ErrNoTestCases     = errors.New("no test cases provided")
	ErrMissingSolution = errors.New("candidate solution requires source code and language")
	ErrCodeTooLarge    = errors.New("candidate source exceeds size limit")
	ErrUnknownLanguage = errors.New("no execution backend configured for language")
)

// IValidationService is the engine's consumer-facing contract: validate a
// candidate solution against a batch of test records, or run arbitrary code
// once without comparison.
type IValidationService interface {
	// Validate produces one verdict per input record, in input order. A
	// report is always produced for a well-formed request.
	Validate(ctx context.Context, solution *domain.CandidateSolution, records []interface{}) (*domain.ValidationReport, error)

	// Run executes code ad hoc and returns the raw result. Unlike
	// Validate, an unconfigured language is a request-level error here:
	// there is no verdict to fail instead.
	Run(ctx context.Context, language, code, stdin string, timeoutSeconds, memoryLimitMB int) (*domain.ExecutionResult, error)
}
