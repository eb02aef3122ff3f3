package validation

// ValidateRequest is the consumer-facing payload for function/class
// validation: a candidate solution plus a batch of test records in any of
// the accepted legacy or canonical shapes.
type ValidateRequest struct {
	Language     string        `json:"language"`
	SourceCode   string        `json:"source_code"`
	EntryPoint   string        `json:"entry_point,omitempty"`
	IsClassBased bool          `json:"is_class_based,omitempty"`
	TestCases    []interface{} `json:"test_cases"`
}

// RunRequest executes code once without test comparison.
type RunRequest struct {
	Language       string `json:"language"`
	SourceCode     string `json:"source_code"`
	Stdin          string `json:"stdin,omitempty"`
	TimeoutSeconds int    `json:"timeout_seconds,omitempty"`
	MemoryLimitMB  int    `json:"memory_limit_mb,omitempty"`
}
