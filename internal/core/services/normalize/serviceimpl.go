package normalize

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/domain"
)

var _ INormalizeService = (*NormalizeService)(nil)

// NormalizeService implements the INormalizeService interface.
type NormalizeService struct {
	logger primary.Logger
}

// NewNormalizeService creates a new normalizer.
func NewNormalizeService(logger primary.Logger) *NormalizeService {
	return &NormalizeService{logger: logger}
}

// callPattern matches a legacy textual call such as "isPrime(7)".
var callPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*\s*\(.*\)$`)

// Normalize maps every input record to exactly one TestCase, in input order.
func (s *NormalizeService) Normalize(records []interface{}) []domain.TestCase {
	cases := make([]domain.TestCase, 0, len(records))
	explicit := make([]bool, 0, len(records))

	for i, record := range records {
		tc, visibilityDeclared := s.normalizeOne(i, record)
		cases = append(cases, tc)
		explicit = append(explicit, visibilityDeclared)
	}

	s.applyVisibilityDefaults(cases, explicit)
	return cases
}

// normalizeOne converts a single loose record. The second return value
// reports whether the record declared its own visibility.
func (s *NormalizeService) normalizeOne(index int, record interface{}) (domain.TestCase, bool) {
	switch rec := record.(type) {
	case string:
		// A bare string is a legacy call expression with no expectation.
		call := strings.TrimSpace(rec)
		if !callPattern.MatchString(call) {
			return defectCase(index, fmt.Sprintf("bare-string record %q is not a call expression", call)), false
		}
		return domain.TestCase{
			Description:    call,
			CallExpression: call,
			Visible:        true,
		}, false
	case map[string]interface{}:
		return s.normalizeRecord(index, rec)
	default:
		return defectCase(index, fmt.Sprintf("record has unsupported shape %T", record)), false
	}
}

func (s *NormalizeService) normalizeRecord(index int, rec map[string]interface{}) (domain.TestCase, bool) {
	tc := domain.TestCase{
		Description: stringField(rec, "description", "name"),
		Visible:     true,
	}
	if tc.Description == "" {
		tc.Description = fmt.Sprintf("test case %d", index+1)
	}

	if raw, ok := firstField(rec, "category"); ok {
		if name, ok := raw.(string); ok {
			tc.Category = domain.Category(strings.ToLower(strings.TrimSpace(name)))
		}
	}

	visibilityDeclared := false
	if raw, ok := firstField(rec, "hidden"); ok {
		if hidden, ok := raw.(bool); ok {
			tc.Visible = !hidden
			visibilityDeclared = true
		}
	}
	if raw, ok := firstField(rec, "visible"); ok {
		if visible, ok := raw.(bool); ok {
			tc.Visible = visible
			visibilityDeclared = true
		}
	}

	tc.ExpectedOutput, _ = firstField(rec, "expected_output", "expectedOutput", "expected")

	if raw, ok := firstField(rec, "input_args", "inputArgs", "args"); ok {
		switch args := raw.(type) {
		case []interface{}:
			tc.InputArgs = args
		case string:
			// The pipeline sometimes double-encodes the argument list.
			var parsed []interface{}
			if err := json.Unmarshal([]byte(args), &parsed); err != nil {
				s.logger.Warn("Failed to parse input_args string, falling back to empty argument list",
					"index", index,
					"error", err)
				tc.InputArgs = []interface{}{}
			} else {
				tc.InputArgs = parsed
			}
		case nil:
			tc.InputArgs = []interface{}{}
		default:
			return defectCase(index, fmt.Sprintf("input_args has unsupported type %T", raw)), visibilityDeclared
		}
		return tc, visibilityDeclared
	}

	// No structured arguments: fall back to the legacy test_call shape.
	if raw, ok := firstField(rec, "test_call", "testCall"); ok {
		call, isString := raw.(string)
		call = strings.TrimSpace(call)
		if !isString || !callPattern.MatchString(call) {
			return defectCase(index, fmt.Sprintf("test_call %v is not a call expression", raw)), visibilityDeclared
		}
		tc.CallExpression = call
		if tc.Description == fmt.Sprintf("test case %d", index+1) {
			tc.Description = call
		}
		return tc, visibilityDeclared
	}

	// Neither arguments nor a call: invoke the entry point with no
	// arguments and compare against the expectation.
	tc.InputArgs = []interface{}{}
	return tc, visibilityDeclared
}

// applyVisibilityDefaults hides categories 3-5 of a golden five-category
// batch unless the record declared its own visibility.
func (s *NormalizeService) applyVisibilityDefaults(cases []domain.TestCase, explicit []bool) {
	if !isGoldenBatch(cases) {
		return
	}
	for i := range cases {
		if !explicit[i] {
			cases[i].Visible = !cases[i].Category.HiddenByDefault()
		}
	}
}

func isGoldenBatch(cases []domain.TestCase) bool {
	if len(cases) != len(domain.GoldenCategories) {
		return false
	}
	for i, tc := range cases {
		if tc.Category != domain.GoldenCategories[i] {
			return false
		}
	}
	return true
}

// defectCase builds the always-failing replacement for a malformed record so
// one bad record never blocks the rest of the batch.
func defectCase(index int, diagnostic string) domain.TestCase {
	return domain.TestCase{
		Description: fmt.Sprintf("test case %d (malformed)", index+1),
		Visible:     true,
		Defect:      diagnostic,
	}
}

func stringField(rec map[string]interface{}, keys ...string) string {
	if raw, ok := firstField(rec, keys...); ok {
		if value, ok := raw.(string); ok {
			return strings.TrimSpace(value)
		}
	}
	return ""
}

func firstField(rec map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if value, ok := rec[key]; ok {
			return value, true
		}
	}
	return nil, false
}
