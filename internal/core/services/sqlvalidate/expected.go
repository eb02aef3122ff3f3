package sqlvalidate

import (
	"encoding/json"
	"strings"

	"gitlab.com/codecapsules.net/internal/domain"
)

// parseExpectedRows accepts the expected result set as structured rows or as
// a pre-serialized JSON string. A string that does not parse as rows is
// returned as an opaque value instead of aborting the request.
func parseExpectedRows(raw interface{}) (rows []domain.Row, opaque string, ok bool) {
	switch value := raw.(type) {
	case nil:
		return nil, "", false
	case string:
		var parsed []domain.Row
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			return nil, value, true
		}
		return parsed, "", true
	case []domain.Row:
		return value, "", true
	case []interface{}:
		parsed := make([]domain.Row, 0, len(value))
		for _, item := range value {
			row, isRow := item.(map[string]interface{})
			if !isRow {
				// Not a row set after all; fall back to opaque form.
				encoded, err := json.Marshal(raw)
				if err != nil {
					return nil, "", false
				}
				return nil, string(encoded), true
			}
			parsed = append(parsed, domain.Row(row))
		}
		return parsed, "", true
	case map[string]interface{}:
		return []domain.Row{domain.Row(value)}, "", true
	default:
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, "", false
		}
		return nil, string(encoded), true
	}
}

// opaqueRowsMatch compares the observed rows, rendered as JSON, against an
// expected value that could not be parsed into rows.
func opaqueRowsMatch(expected string, observed []domain.Row) bool {
	encoded, err := json.Marshal(observed)
	if err != nil {
		return false
	}
	return strings.TrimSpace(expected) == strings.TrimSpace(string(encoded))
}
