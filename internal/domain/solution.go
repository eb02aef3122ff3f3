package domain

// Supported languages. SQL submissions skip harness synthesis entirely and
// go through the SQL validation path.
const (
	LanguagePython     = "python"
	LanguageJavaScript = "javascript"
	LanguageSQL        = "sql"
)

// CandidateSolution is the learner's (or the generation pipeline's)
// submission: source code in a declared language plus optional entry-point
// metadata. When EntryPoint is empty the harness synthesizer falls back to
// heuristic detection on the source text.
type CandidateSolution struct {
	Language   string `json:"language"`
	SourceCode string `json:"source_code"`

	// EntryPoint names the function (or class) to invoke. Declared by the
	// producer when available; derived otherwise.
	EntryPoint   string `json:"entry_point,omitempty"`
	IsClassBased bool   `json:"is_class_based,omitempty"`
}
