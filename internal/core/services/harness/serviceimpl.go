package harness

import (
	"bytes"
	"fmt"
	"text/template"

	"gitlab.com/codecapsules.net/internal/core/ports/primary"
	"gitlab.com/codecapsules.net/internal/domain"
)

// Fixed RNG seed injected into every harness so candidate code that reaches
// for the language's default random facility stays repeatable across runs.
const randomSeed = 42

var _ IHarnessService = (*HarnessService)(nil)

// HarnessService implements the IHarnessService interface with one typed
// template per target language.
type HarnessService struct {
	logger    primary.Logger
	templates map[string]*template.Template
}

// NewHarnessService creates a synthesizer with the built-in language
// templates.
func NewHarnessService(logger primary.Logger) *HarnessService {
	return &HarnessService{
		logger: logger,
		templates: map[string]*template.Template{
			domain.LanguagePython:     template.Must(template.New(domain.LanguagePython).Parse(pythonTemplate)),
			domain.LanguageJavaScript: template.Must(template.New(domain.LanguageJavaScript).Parse(javascriptTemplate)),
		},
	}
}

type templateData struct {
	Seed           int
	CandidateCode  string
	Payload        string
	EntryPoint     string
	IsClassBased   bool
	CallExpression string
	PassToken      string
	ObservedPrefix string
}

// Synthesize renders the harness program for one (solution, test case) pair.
func (s *HarnessService) Synthesize(solution *domain.CandidateSolution, tc domain.TestCase) (string, error) {
	tmpl, ok := s.templates[solution.Language]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, solution.Language)
	}

	data := templateData{
		Seed:           randomSeed,
		CandidateCode:  solution.SourceCode,
		EntryPoint:     solution.EntryPoint,
		IsClassBased:   solution.IsClassBased,
		CallExpression: tc.CallExpression,
		PassToken:      PassToken,
		ObservedPrefix: ObservedPrefix,
	}

	// Legacy call expressions name their own target; otherwise declared
	// metadata wins and heuristic detection is the fallback.
	if tc.CallExpression == "" && solution.EntryPoint == "" {
		entry, err := detectEntryPoint(solution.Language, solution.SourceCode)
		if err != nil {
			return "", err
		}
		data.EntryPoint = entry.Name
		data.IsClassBased = entry.ClassBased
		s.logger.Debug("Detected entry point heuristically",
			"language", solution.Language,
			"entryPoint", entry.Name,
			"classBased", entry.ClassBased)
	}

	payload, err := domain.EncodeTestPayload(tc)
	if err != nil {
		return "", fmt.Errorf("failed to encode test payload: %w", err)
	}
	data.Payload = payload

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render %s harness: %w", solution.Language, err)
	}
	return buf.String(), nil
}
