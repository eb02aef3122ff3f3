package harness

import (
	"gitlab.com/codecapsules.net/internal/domain"
)

// Markers the synthesized programs emit on stdout. The interpreter keys off
// both when deriving a verdict from raw process output.
const (
	// PassToken is printed exactly once when the observed value matches
	// the expectation.
	PassToken = "__CAPSULE_VERDICT_PASS__"

	// ObservedPrefix prefixes a line carrying the JSON-encoded observed
	// value, so the verdict can report what the candidate produced.
	ObservedPrefix = "__CAPSULE_OBSERVED__"
)

// IHarnessService synthesizes one self-contained, deterministic program per
// (solution, test case) pair. The program embeds the candidate code, decodes
// an encoded test payload, invokes the entry point and reports a verdict via
// stdout and exit code.
type IHarnessService interface {
	Synthesize(solution *domain.CandidateSolution, tc domain.TestCase) (string, error)
}
