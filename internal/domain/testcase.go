package domain

// Category classifies a test case within the five-category generation
// strategy used by the content pipeline.
type Category string

const (
	CategorySmoke   Category = "smoke"
	CategoryBasic   Category = "basic"
	CategoryComplex Category = "complex"
	CategoryEdge    Category = "edge"
	CategoryScale   Category = "scale"
)

// GoldenCategories is the fixed category sequence emitted by the generation
// pipeline. The first two are shown to the learner, the last three are kept
// hidden as anti-cheat tests.
var GoldenCategories = []Category{
	CategorySmoke,
	CategoryBasic,
	CategoryComplex,
	CategoryEdge,
	CategoryScale,
}

// IsValid reports whether the category is one of the five known categories.
func (c Category) IsValid() bool {
	for _, known := range GoldenCategories {
		if c == known {
			return true
		}
	}
	return false
}

// HiddenByDefault reports whether a test case of this category is hidden
// from the learner when it is part of a golden five-category batch.
func (c Category) HiddenByDefault() bool {
	switch c {
	case CategoryComplex, CategoryEdge, CategoryScale:
		return true
	default:
		return false
	}
}

// TestCase is the canonical test-case record every component downstream of
// the normalizer works with. It is a value object: created by the normalizer,
// read-only afterwards, and discarded when the validation request completes.
type TestCase struct {
	Description    string        `json:"description"`
	Category       Category      `json:"category"`
	Visible        bool          `json:"visible"`
	InputArgs      []interface{} `json:"input_args"`
	ExpectedOutput interface{}   `json:"expected_output"`

	// CallExpression carries a legacy textual call such as "isPrime(7)".
	// When set, generated harnesses evaluate it verbatim instead of
	// spreading InputArgs.
	CallExpression string `json:"call_expression,omitempty"`

	// Defect is non-empty when the upstream record was malformed. A
	// defective test case always fails with Defect as its diagnostic and
	// is never executed.
	Defect string `json:"defect,omitempty"`
}
