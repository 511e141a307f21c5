// Package filtering implements the loan qualification pipeline: a fixed
// sequence of threshold filters applied to a rate sheet, each narrowing
// the candidate set.
package filtering

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/finqualify/loan-qualifier/internal/ratesheet"
)

// Filter represents a single qualification step applied to the rate sheet.
// Apply must be stable (surviving records keep their input order) and must
// not modify the collection it receives.
type Filter interface {
	Name() string
	Apply(recs *ratesheet.Records) (*ratesheet.Records, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially, returning the records
// that survive every step. Per-step counts are logged so an applicant can
// see where they were cut.
func Run(logger *zap.Logger, steps []Filter, recs *ratesheet.Records) (*ratesheet.Records, error) {
	for _, step := range steps {
		next, info, err := step.Apply(recs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if logger != nil {
			logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		recs = next
	}

	return recs, nil
}
