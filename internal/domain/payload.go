package domain

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// EncodeTestPayload serializes a test case to JSON and then to base64 so it
// can be embedded as a string literal in any target-language source. Base64
// has no characters special to any target string-literal grammar, which is
// what makes embedding quotes, newlines and unicode in test data safe.
func EncodeTestPayload(tc TestCase) (string, error) {
	raw, err := json.Marshal(tc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal test case: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeTestPayload reverses EncodeTestPayload. Decoding an encoded test
// case must reproduce the original exactly.
func DecodeTestPayload(payload string) (TestCase, error) {
	var tc TestCase
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return tc, fmt.Errorf("failed to decode payload: %w", err)
	}
	if err := json.Unmarshal(raw, &tc); err != nil {
		return tc, fmt.Errorf("failed to unmarshal test case: %w", err)
	}
	return tc, nil
}
