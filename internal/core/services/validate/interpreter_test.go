package validate

import (
	"testing"

	"gitlab.com/codecapsules.net/internal/core/services/harness"
	"gitlab.com/codecapsules.net/internal/domain"
)

func TestInterpretResultObservedErrorPrecedence(t *testing.T) {
	one := 1
	tests := []struct {
		name   string
		result *domain.ExecutionResult
		want   string
	}{
		{
			name:   "backend error wins",
			result: &domain.ExecutionResult{ExitCode: &one, Error: "execution timed out after 10s", Stderr: "noise"},
			want:   "execution timed out after 10s",
		},
		{
			name:   "compile output next",
			result: &domain.ExecutionResult{ExitCode: &one, CompileOutput: "SyntaxError: invalid syntax", Stderr: "noise"},
			want:   "SyntaxError: invalid syntax",
		},
		{
			name:   "stderr trimmed",
			result: &domain.ExecutionResult{ExitCode: &one, Stderr: "  candidate raised ValueError\n"},
			want:   "candidate raised ValueError",
		},
		{
			name:   "fallback diagnostic",
			result: &domain.ExecutionResult{ExitCode: &one},
			want:   "execution failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := interpretResult(domain.TestCase{}, tt.result)
			if verdict.Passed {
				t.Error("verdict must fail")
			}
			if verdict.ObservedError != tt.want {
				t.Errorf("ObservedError = %q, want %q", verdict.ObservedError, tt.want)
			}
		})
	}
}

func TestInterpretResultParsesObservedMarker(t *testing.T) {
	zero := 0
	result := &domain.ExecutionResult{
		Success:         true,
		Stdout:          "warmup noise\n" + harness.ObservedPrefix + ` {"total": 5}` + "\n" + harness.PassToken + "\n",
		ExitCode:        &zero,
		ExecutionTimeMs: 37,
	}

	verdict := interpretResult(domain.TestCase{Description: "totals"}, result)

	if !verdict.Passed {
		t.Error("clean pass-token result must pass")
	}
	observed, ok := verdict.ObservedOutput.(map[string]interface{})
	if !ok || observed["total"] != float64(5) {
		t.Errorf("ObservedOutput = %#v", verdict.ObservedOutput)
	}
	if verdict.ExecutionTimeMs != 37 {
		t.Errorf("ExecutionTimeMs = %d", verdict.ExecutionTimeMs)
	}
}

func TestInterpretResultKeepsRawObservedLine(t *testing.T) {
	zero := 0
	result := &domain.ExecutionResult{
		Success:  true,
		Stdout:   harness.ObservedPrefix + " not json at all\n",
		ExitCode: &zero,
	}

	verdict := interpretResult(domain.TestCase{}, result)

	if verdict.Passed {
		t.Error("no pass token means no pass")
	}
	if verdict.ObservedOutput != "not json at all" {
		t.Errorf("ObservedOutput = %#v", verdict.ObservedOutput)
	}
}
