package validate

import (
	"context"
	"fmt"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/services/dispatch"
	"gitlab.com/codecapsules.net/internal/core/services/harness"
	"gitlab.com/codecapsules.net/internal/core/services/normalize"
	"gitlab.com/codecapsules.net/internal/domain"
)

// maxSourceBytes bounds candidate source size, mirroring the sandbox
// backend's own limit so oversized submissions fail fast.
const maxSourceBytes = 64 * 1024

// Limits are the execution bounds applied to every synthesized harness run.
type Limits struct {
	TimeoutSeconds int
	MemoryLimitMB  int
}

var _ IValidationService = (*ValidationService)(nil)

// ValidationService implements the IValidationService interface, wiring the
// normalizer, the harness synthesizer and the dispatcher into one pipeline.
type ValidationService struct {
	normalizer  normalize.INormalizeService
	synthesizer harness.IHarnessService
	dispatcher  dispatch.IDispatchService
	languages   map[string]bool
	limits      Limits
	logger      primary.Logger
}

// NewValidationService creates the validation pipeline. languages is the set
// of languages an execution backend is configured for; Run rejects anything
// outside it.
func NewValidationService(
	normalizer normalize.INormalizeService,
	synthesizer harness.IHarnessService,
	dispatcher dispatch.IDispatchService,
	languages map[string]bool,
	limits Limits,
	logger primary.Logger,
) *ValidationService {
	if limits.TimeoutSeconds <= 0 {
		limits.TimeoutSeconds = 10
	}
	if limits.MemoryLimitMB <= 0 {
		limits.MemoryLimitMB = 128
	}
	return &ValidationService{
		normalizer:  normalizer,
		synthesizer: synthesizer,
		dispatcher:  dispatcher,
		languages:   languages,
		limits:      limits,
		logger:      logger,
	}
}

// Validate runs every test case through the pipeline sequentially. Verdict
// order always matches record order, and every record yields exactly one
// verdict on every path.
func (s *ValidationService) Validate(ctx context.Context, solution *domain.CandidateSolution, records []interface{}) (*domain.ValidationReport, error) {
	if solution == nil || solution.SourceCode == "" || solution.Language == "" {
		return nil, ErrMissingSolution
	}
	if len(records) == 0 {
		return nil, ErrNoTestCases
	}
	if len(solution.SourceCode) > maxSourceBytes {
		return nil, ErrCodeTooLarge
	}

	cases := s.normalizer.Normalize(records)
	verdicts := make([]domain.TestVerdict, 0, len(cases))

	for i, tc := range cases {
		verdict := s.validateOne(ctx, solution, tc)
		verdicts = append(verdicts, verdict)
		s.logger.Debug("Test case judged",
			"index", i,
			"category", tc.Category,
			"visible", tc.Visible,
			"passed", verdict.Passed)
	}

	report := domain.NewValidationReport(verdicts)
	s.logger.Info("Validation completed",
		"language", solution.Language,
		"total", report.TotalCount,
		"passed", report.PassedCount)
	return report, nil
}

func (s *ValidationService) validateOne(ctx context.Context, solution *domain.CandidateSolution, tc domain.TestCase) domain.TestVerdict {
	if tc.Defect != "" {
		return domain.TestVerdict{
			TestCase:      tc,
			Passed:        false,
			ObservedError: tc.Defect,
		}
	}

	program, err := s.synthesizer.Synthesize(solution, tc)
	if err != nil {
		return domain.TestVerdict{
			TestCase:      tc,
			Passed:        false,
			ObservedError: fmt.Sprintf("cannot synthesize harness: %v", err),
		}
	}

	job := domain.NewExecutionJob(solution.Language, program, "", s.limits.TimeoutSeconds, s.limits.MemoryLimitMB)
	result := s.dispatcher.Dispatch(ctx, job)
	return interpretResult(tc, result)
}

// Run executes code once without any test comparison.
func (s *ValidationService) Run(ctx context.Context, language, code, stdin string, timeoutSeconds, memoryLimitMB int) (*domain.ExecutionResult, error) {
	if !s.languages[language] {
		return nil, fmt.Errorf("%w: %s", ErrUnknownLanguage, language)
	}
	if timeoutSeconds <= 0 {
		timeoutSeconds = s.limits.TimeoutSeconds
	}
	if memoryLimitMB <= 0 {
		memoryLimitMB = s.limits.MemoryLimitMB
	}
	job := domain.NewExecutionJob(language, code, stdin, timeoutSeconds, memoryLimitMB)
	return s.dispatcher.Dispatch(ctx, job), nil
}
