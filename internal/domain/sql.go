package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// SQLValidationState tracks the two-state lifecycle of a SQL validation.
type SQLValidationState string

const (
	SQLStateNotValidated SQLValidationState = "NOT_VALIDATED"
	SQLStateValidated    SQLValidationState = "VALIDATED"
)

// Row is one result-set row keyed by column name.
type Row map[string]interface{}

// SQLValidationRequest carries everything the SQL path needs: the candidate
// query, the ground-truth query, the statements that seed a fresh schema,
// and optionally a pre-computed expected result set. ExpectedOutput may
// arrive pre-serialized as a JSON string.
type SQLValidationRequest struct {
	CandidateQuery        string      `json:"candidate_query"`
	ReferenceQuery        string      `json:"reference_query"`
	SchemaSetup           []string    `json:"schema_setup"`
	ExpectedOutput        interface{} `json:"expected_output,omitempty"`
	RequiresSpecialEngine bool        `json:"requires_special_engine,omitempty"`
}

// SQLValidationResult is the outcome of one SQL validation.
type SQLValidationResult struct {
	State           SQLValidationState `json:"state"`
	Success         bool               `json:"success"`
	ObservedRows    []Row              `json:"observed_rows,omitempty"`
	ExpectedRows    []Row              `json:"expected_rows,omitempty"`
	Columns         []string           `json:"columns,omitempty"`
	DiffMessage     string             `json:"diff_message,omitempty"`
	Error           string             `json:"error,omitempty"`
	ExecutionTimeMs int64              `json:"execution_time_ms"`
}

var orderByPattern = regexp.MustCompile(`(?i)\border\s+by\b`)

// QueryWantsOrder reports whether the query contains an ORDER BY clause, in
// which case row order is part of the contract being tested.
func QueryWantsOrder(query string) bool {
	return orderByPattern.MatchString(query)
}

// RowSetsEqual compares two result sets. Column names are matched
// case-insensitively and numeric values are compared after float64 coercion,
// since drivers and JSON round-trips disagree on both. Row order is ignored
// unless orderSensitive is set.
func RowSetsEqual(expected, observed []Row, orderSensitive bool) bool {
	if len(expected) != len(observed) {
		return false
	}
	expKeys := make([]string, len(expected))
	obsKeys := make([]string, len(observed))
	for i, row := range expected {
		expKeys[i] = canonicalRowKey(row)
	}
	for i, row := range observed {
		obsKeys[i] = canonicalRowKey(row)
	}
	if !orderSensitive {
		sort.Strings(expKeys)
		sort.Strings(obsKeys)
	}
	for i := range expKeys {
		if expKeys[i] != obsKeys[i] {
			return false
		}
	}
	return true
}

// canonicalRowKey renders a row as a deterministic string: lowercased column
// names in sorted order, values coerced to a canonical scalar form.
func canonicalRowKey(row Row) string {
	parts := make([]string, 0, len(row))
	for name, value := range row {
		parts = append(parts, strings.ToLower(name)+"="+canonicalValue(value))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func canonicalValue(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return "<nil>"
	case float64:
		return fmt.Sprintf("%g", value)
	case float32:
		return fmt.Sprintf("%g", float64(value))
	case int:
		return fmt.Sprintf("%g", float64(value))
	case int32:
		return fmt.Sprintf("%g", float64(value))
	case int64:
		return fmt.Sprintf("%g", float64(value))
	case []byte:
		return string(value)
	case bool:
		return fmt.Sprintf("%t", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
