package domain

import (
	"reflect"
	"testing"
)

func TestEncodeTestPayloadRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tc   TestCase
	}{
		{
			name: "simple args",
			tc: TestCase{
				Description:    "adds two numbers",
				Category:       CategorySmoke,
				Visible:        true,
				InputArgs:      []interface{}{float64(2), float64(3)},
				ExpectedOutput: float64(5),
			},
		},
		{
			name: "quotes and newlines",
			tc: TestCase{
				Description:    `handles "quoted" input`,
				Category:       CategoryEdge,
				InputArgs:      []interface{}{"line one\nline two", `she said "hi"`},
				ExpectedOutput: "ok\n",
			},
		},
		{
			name: "unicode",
			tc: TestCase{
				Description:    "unicode payload",
				Category:       CategoryBasic,
				Visible:        true,
				InputArgs:      []interface{}{"héllo wörld 日本語 🎯"},
				ExpectedOutput: "héllo",
			},
		},
		{
			name: "structured expected output",
			tc: TestCase{
				Description: "row set",
				Category:    CategoryComplex,
				InputArgs:   []interface{}{},
				ExpectedOutput: []interface{}{
					map[string]interface{}{"id": float64(1), "name": "ada"},
					map[string]interface{}{"id": float64(2), "name": "grace"},
				},
			},
		},
		{
			name: "legacy call expression",
			tc: TestCase{
				Description:    "isPrime(7)",
				Visible:        true,
				CallExpression: "isPrime(7)",
				ExpectedOutput: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeTestPayload(tt.tc)
			if err != nil {
				t.Fatalf("EncodeTestPayload() error = %v", err)
			}

			decoded, err := DecodeTestPayload(encoded)
			if err != nil {
				t.Fatalf("DecodeTestPayload() error = %v", err)
			}

			if !reflect.DeepEqual(decoded, tt.tc) {
				t.Errorf("round trip = %#v, want %#v", decoded, tt.tc)
			}
		})
	}
}

func TestDecodeTestPayloadRejectsGarbage(t *testing.T) {
	if _, err := DecodeTestPayload("not base64!!!"); err == nil {
		t.Error("expected error for invalid base64")
	}
	if _, err := DecodeTestPayload("bm90IGpzb24="); err == nil {
		t.Error("expected error for non-JSON payload")
	}
}
