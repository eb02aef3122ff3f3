package domain

// TestVerdict is the interpreted outcome of running one test case.
type TestVerdict struct {
	TestCase        TestCase    `json:"test_case"`
	Passed          bool        `json:"passed"`
	ObservedOutput  interface{} `json:"observed_output,omitempty"`
	ObservedError   string      `json:"observed_error,omitempty"`
	ExecutionTimeMs int64       `json:"execution_time_ms"`
}

// ValidationReport aggregates the verdicts of one validation request.
// Verdict order always matches input test-case order, and TotalCount always
// equals the number of input test cases: an execution failure becomes a
// failed verdict, never a dropped one.
type ValidationReport struct {
	Verdicts    []TestVerdict `json:"verdicts"`
	TotalCount  int           `json:"total_count"`
	PassedCount int           `json:"passed_count"`
	AllPassed   bool          `json:"all_passed"`
}

// NewValidationReport computes the aggregate counters for an ordered verdict
// sequence.
func NewValidationReport(verdicts []TestVerdict) *ValidationReport {
	passed := 0
	for _, v := range verdicts {
		if v.Passed {
			passed++
		}
	}
	return &ValidationReport{
		Verdicts:    verdicts,
		TotalCount:  len(verdicts),
		PassedCount: passed,
		AllPassed:   passed == len(verdicts),
	}
}
