package analyzer

import (
	"context"
)

// Outcome is the per-document result of a batch run: either Result or Err is
// set, never both.
type Outcome struct {
	FileName string
	Result   *Result
	Err      error
}

// Batch aggregates a batch run. Outcomes preserves input order and always
// has one entry per input.
type Batch struct {
	Outcomes   []Outcome
	Total      int
	Successful int
	Failed     int
}

// AnalyzeBatch processes each input independently; one document's failure
// never aborts or affects the others. Cancelling ctx stops further work and
// records the context error against every unprocessed document.
func (s *Service) AnalyzeBatch(ctx context.Context, ins []Input) *Batch {
	batch := &Batch{
		Outcomes: make([]Outcome, 0, len(ins)),
		Total:    len(ins),
	}

	for _, in := range ins {
		var outcome Outcome

		outcome.FileName = in.FileName

		if err := ctx.Err(); err != nil {
			outcome.Err = err
		} else {
			outcome.Result, outcome.Err = s.Analyze(ctx, in)
		}

		if outcome.Err != nil {
			batch.Failed++
		} else {
			batch.Successful++
		}

		batch.Outcomes = append(batch.Outcomes, outcome)
	}

	return batch
}
