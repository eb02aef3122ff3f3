package domain

import (
	"github.com/google/uuid"
)

// ExecutionJob is one self-contained program handed to the sandboxed
// execution backend. Immutable once created; owned by the dispatcher for
// its lifetime.
type ExecutionJob struct {
	ID             uuid.UUID `json:"id"`
	Language       string    `json:"language"`
	ProgramText    string    `json:"program_text"`
	Stdin          string    `json:"stdin"`
	TimeoutSeconds int       `json:"timeout_seconds"`
	MemoryLimitMB  int       `json:"memory_limit_mb"`
}

// NewExecutionJob creates a job with a fresh correlation ID.
func NewExecutionJob(language, programText, stdin string, timeoutSeconds, memoryLimitMB int) *ExecutionJob {
	return &ExecutionJob{
		ID:             uuid.New(),
		Language:       language,
		ProgramText:    programText,
		Stdin:          stdin,
		TimeoutSeconds: timeoutSeconds,
		MemoryLimitMB:  memoryLimitMB,
	}
}

// ExecutionResult is the raw outcome of one ExecutionJob as reported by the
// sandbox backend. Produced once, never mutated.
type ExecutionResult struct {
	Success         bool   `json:"success"`
	Stdout          string `json:"stdout"`
	Stderr          string `json:"stderr"`
	ExitCode        *int   `json:"exit_code,omitempty"`
	ExecutionTimeMs int64  `json:"execution_time_ms"`
	CompileOutput   string `json:"compile_output,omitempty"`
	Error           string `json:"error,omitempty"`
}

// ExitedCleanly reports whether the process exit code permits a pass: zero,
// or absent when the backend does not report one.
func (r *ExecutionResult) ExitedCleanly() bool {
	return r.ExitCode == nil || *r.ExitCode == 0
}

// FailedResult builds the uniform failed-result shape used for timeouts and
// infrastructure errors, so callers cannot tell which dispatch strategy (or
// which failure) produced it.
func FailedResult(reason string) *ExecutionResult {
	one := 1
	return &ExecutionResult{
		Success:  false,
		ExitCode: &one,
		Error:    reason,
	}
}
