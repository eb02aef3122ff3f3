package harness

import (
	"errors"
	"testing"

	"gitlab.com/codecapsules.net/internal/domain"
)

func TestDetectEntryPoint(t *testing.T) {
	tests := []struct {
		name      string
		language  string
		source    string
		wantName  string
		wantClass bool
		wantErr   error
	}{
		{
			name:     "python function",
			language: domain.LanguagePython,
			source:   "def solve(n):\n    return n * 2\n",
			wantName: "solve",
		},
		{
			name:     "python skips private helpers",
			language: domain.LanguagePython,
			source:   "def _helper(n):\n    return n\n\ndef solve(n):\n    return _helper(n)\n",
			wantName: "solve",
		},
		{
			name:      "python class with init",
			language:  domain.LanguagePython,
			source:    "class Solver:\n    def __init__(self):\n        pass\n",
			wantName:  "Solver",
			wantClass: true,
		},
		{
			name:     "python class without init falls through to methods",
			language: domain.LanguagePython,
			source:   "class Solver:\n    def solve(self):\n        pass\n",
			wantName: "solve",
		},
		{
			name:     "javascript function declaration",
			language: domain.LanguageJavaScript,
			source:   "function solve(n) { return n; }",
			wantName: "solve",
		},
		{
			name:     "javascript const arrow",
			language: domain.LanguageJavaScript,
			source:   "const solve = (n) => n;",
			wantName: "solve",
		},
		{
			name:      "javascript class with constructor",
			language:  domain.LanguageJavaScript,
			source:    "class Solver {\n  constructor() {}\n}",
			wantName:  "Solver",
			wantClass: true,
		},
		{
			name:     "shapeless python",
			language: domain.LanguagePython,
			source:   "print('hello')",
			wantErr:  ErrUnsupportedShape,
		},
		{
			name:     "shapeless javascript",
			language: domain.LanguageJavaScript,
			source:   "console.log('hello');",
			wantErr:  ErrUnsupportedShape,
		},
		{
			name:     "unknown language",
			language: "ruby",
			source:   "def solve(n) = n",
			wantErr:  ErrUnsupportedLanguage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := detectEntryPoint(tt.language, tt.source)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("detectEntryPoint() error = %v", err)
			}
			if entry.Name != tt.wantName || entry.ClassBased != tt.wantClass {
				t.Errorf("entry = %+v, want name %q class %v", entry, tt.wantName, tt.wantClass)
			}
		})
	}
}
