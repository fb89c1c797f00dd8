// Package confidence scores how complete an extraction is. The score is a
// weighted completeness heuristic in [0,1], not a probability.
package confidence

import (
	"github.com/contaro/docintel/internal/document"
)

// rule is one weighted criterion of the scoring rubric.
type rule struct {
	name   string
	weight float64
	met    func(document.Extracted) bool
}

// rubric weights sum to 1.0. Vendor and total dominate deliberately: a wrong
// counterparty or amount is far more costly downstream than a missing
// line-item breakdown.
var rubric = []rule{
	{
		name:   "vendor",
		weight: 0.30,
		met: func(doc document.Extracted) bool {
			return doc.Vendor != nil && len(*doc.Vendor) > 3
		},
	},
	{
		name:   "total",
		weight: 0.40,
		met: func(doc document.Extracted) bool {
			return doc.Total != nil && *doc.Total > 0
		},
	},
	{
		name:   "issue_date",
		weight: 0.10,
		met: func(doc document.Extracted) bool {
			return doc.IssueDate != nil
		},
	},
	{
		name:   "document_number",
		weight: 0.10,
		met: func(doc document.Extracted) bool {
			return doc.Number != nil
		},
	},
	{
		name:   "line_items",
		weight: 0.10,
		met: func(doc document.Extracted) bool {
			return len(doc.LineItems) > 0
		},
	},
}

// Score computes the weighted completeness score for an extraction.
// Pure function: adding a field can only raise the score, never lower it.
func Score(doc document.Extracted) float64 {
	var total float64

	for _, r := range rubric {
		if r.met(doc) {
			total += r.weight
		}
	}

	return total
}
