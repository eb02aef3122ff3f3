package validate

import (
	"encoding/json"
	"strings"

	"gitlab.com/codecapsules.net/internal/core/services/harness"
	"gitlab.com/codecapsules.net/internal/domain"
)

// interpretResult maps one raw execution result onto a verdict. This stage
// performs no I/O and cannot fail: a defective result simply yields a failed
// verdict.
func interpretResult(tc domain.TestCase, result *domain.ExecutionResult) domain.TestVerdict {
	verdict := domain.TestVerdict{
		TestCase:        tc,
		ExecutionTimeMs: result.ExecutionTimeMs,
	}

	verdict.Passed = result.Success &&
		result.ExitedCleanly() &&
		strings.Contains(result.Stdout, harness.PassToken)

	if observed, ok := parseObserved(result.Stdout); ok {
		verdict.ObservedOutput = observed
	}
	if !verdict.Passed {
		verdict.ObservedError = observedError(result)
	}
	return verdict
}

// parseObserved extracts the JSON value the harness echoed on its observed
// marker line.
func parseObserved(stdout string) (interface{}, bool) {
	for _, line := range strings.Split(stdout, "\n") {
		if !strings.HasPrefix(line, harness.ObservedPrefix) {
			continue
		}
		raw := strings.TrimSpace(strings.TrimPrefix(line, harness.ObservedPrefix))
		var value interface{}
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return raw, true
		}
		return value, true
	}
	return nil, false
}

func observedError(result *domain.ExecutionResult) string {
	if result.Error != "" {
		return result.Error
	}
	if result.CompileOutput != "" {
		return result.CompileOutput
	}
	if msg := strings.TrimSpace(result.Stderr); msg != "" {
		return msg
	}
	return "execution failed"
}
