package normalize

import (
	"gitlab.com/codecapsules.net/internal/domain"
)

// INormalizeService converts the loosely-typed test records produced by the
// generation pipeline or the learner's editor into canonical test cases.
type INormalizeService interface {
	// Normalize maps every input record to exactly one TestCase, in input
	// order. Malformed records become always-failing test cases rather
	// than aborting the batch.
	Normalize(records []interface{}) []domain.TestCase
}
