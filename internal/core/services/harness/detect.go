package harness

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/codecapsules.net/internal/domain"
)

var (
	// ErrUnsupportedLanguage is returned when no harness template exists
	// for the declared language.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrUnsupportedShape is returned when the source is neither clearly
	// function-shaped nor class-shaped and no metadata was declared.
	ErrUnsupportedShape = errors.New("unsupported solution shape")
)

type entryPoint struct {
	Name       string
	ClassBased bool
}

var (
	pythonClassPattern = regexp.MustCompile(`(?m)^\s*class\s+([A-Za-z_][A-Za-z0-9_]*)\s*[:(]`)
	pythonFuncPattern  = regexp.MustCompile(`(?m)^\s*def\s+([A-Za-z_][A-Za-z0-9_]*)\s*\(`)

	jsClassPattern = regexp.MustCompile(`\bclass\s+([A-Za-z_$][A-Za-z0-9_$]*)`)
	jsFuncPattern  = regexp.MustCompile(`\bfunction\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*\(`)
	jsBoundPattern = regexp.MustCompile(`(?m)^\s*(?:const|let|var)\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=\s*(?:async\s+)?(?:function\b|\()`)
)

// detectEntryPoint heuristically derives the invocation target from source
// text. Producers should declare entry-point metadata instead; this runs
// only when they did not.
func detectEntryPoint(language, source string) (entryPoint, error) {
	switch language {
	case domain.LanguagePython:
		return detectPythonEntryPoint(source)
	case domain.LanguageJavaScript:
		return detectJavaScriptEntryPoint(source)
	default:
		return entryPoint{}, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, language)
	}
}

func detectPythonEntryPoint(source string) (entryPoint, error) {
	if match := pythonClassPattern.FindStringSubmatch(source); match != nil {
		if strings.Contains(source, "def __init__") {
			return entryPoint{Name: match[1], ClassBased: true}, nil
		}
	}
	for _, match := range pythonFuncPattern.FindAllStringSubmatch(source, -1) {
		if !strings.HasPrefix(match[1], "_") {
			return entryPoint{Name: match[1]}, nil
		}
	}
	return entryPoint{}, ErrUnsupportedShape
}

func detectJavaScriptEntryPoint(source string) (entryPoint, error) {
	if match := jsClassPattern.FindStringSubmatch(source); match != nil {
		if strings.Contains(source, "constructor(") || strings.Contains(source, "constructor (") {
			return entryPoint{Name: match[1], ClassBased: true}, nil
		}
	}
	if match := jsFuncPattern.FindStringSubmatch(source); match != nil {
		return entryPoint{Name: match[1]}, nil
	}
	if match := jsBoundPattern.FindStringSubmatch(source); match != nil {
		return entryPoint{Name: match[1]}, nil
	}
	return entryPoint{}, ErrUnsupportedShape
}
