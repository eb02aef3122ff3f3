package sqlvalidate

import (
	"context"
	"strings"
	"time"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/core/ports/secondary"
	"gitlab.com/codecapsules.net/internal/domain"
)

var _ ISQLValidationService = (*SQLValidationService)(nil)

// SQLValidationService implements the ISQLValidationService interface on top
// of a SQLJudge port. A second judge may be wired for requests that flag
// RequiresSpecialEngine.
type SQLValidationService struct {
	judge        secondary.SQLJudge
	specialJudge secondary.SQLJudge
	logger       primary.Logger
}

// NewSQLValidationService creates the SQL validation path. specialJudge may
// be nil, in which case every request goes through the default judge.
func NewSQLValidationService(judge, specialJudge secondary.SQLJudge, logger primary.Logger) *SQLValidationService {
	return &SQLValidationService{judge: judge, specialJudge: specialJudge, logger: logger}
}

// Validate runs the schema setup (possibly empty) and both queries through
// the judge and compares the result sets. The result transitions to
// VALIDATED once the judge produced an answer; infrastructure failures leave
// it NOT_VALIDATED.
func (s *SQLValidationService) Validate(ctx context.Context, req *domain.SQLValidationRequest) (*domain.SQLValidationResult, error) {
	if strings.TrimSpace(req.ReferenceQuery) == "" {
		return nil, ErrMissingReference
	}

	start := time.Now()
	expectedRows, opaqueExpected, hasExpected := parseExpectedRows(req.ExpectedOutput)
	if opaqueExpected != "" {
		s.logger.Warn("Expected output is not valid JSON rows, degrading to opaque string comparison")
	}

	judge := s.judge
	if req.RequiresSpecialEngine && s.specialJudge != nil {
		judge = s.specialJudge
	}

	resp, err := judge.Judge(ctx, req)
	if err != nil {
		s.logger.Error("SQL judge call failed", "error", err)
		return &domain.SQLValidationResult{
			State:           domain.SQLStateNotValidated,
			Success:         false,
			Error:           err.Error(),
			ExecutionTimeMs: time.Since(start).Milliseconds(),
		}, nil
	}

	result := &domain.SQLValidationResult{
		State:           domain.SQLStateValidated,
		ObservedRows:    resp.ObservedRows,
		ExpectedRows:    resp.ExpectedRows,
		Columns:         resp.Columns,
		DiffMessage:     resp.DiffMessage,
		Error:           resp.Error,
		ExecutionTimeMs: time.Since(start).Milliseconds(),
	}

	// A judge that computed the comparison itself has the final word; its
	// diff message is surfaced verbatim.
	if resp.Judged {
		result.Success = resp.Success
		return result, nil
	}

	if resp.Error != "" {
		result.Success = false
		return result, nil
	}

	// No candidate query means generation-time validation of the
	// reference itself: return its rows without comparing.
	if strings.TrimSpace(req.CandidateQuery) == "" {
		result.Success = true
		return result, nil
	}

	if opaqueExpected != "" {
		result.Success = opaqueRowsMatch(opaqueExpected, resp.ObservedRows)
	} else {
		expected := resp.ExpectedRows
		if hasExpected {
			expected = expectedRows
		}
		orderSensitive := domain.QueryWantsOrder(req.CandidateQuery)
		result.Success = domain.RowSetsEqual(expected, resp.ObservedRows, orderSensitive)
	}

	if !result.Success && result.DiffMessage == "" {
		result.DiffMessage = "result sets do not match expected output"
	}
	return result, nil
}
