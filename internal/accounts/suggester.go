package accounts

import (
	"strings"

	"github.com/contaro/docintel/internal/document"
)

// Suggester maps a document type and free-text category hints to a
// chart-of-accounts entry.
type Suggester struct {
	chart Chart
}

// NewSuggester returns a suggester over the given chart.
func NewSuggester(chart Chart) *Suggester {
	return &Suggester{chart: chart}
}

// Chart returns the table this suggester runs on, for review surfaces.
func (s *Suggester) Chart() Chart {
	return s.chart
}

// Suggest picks an account for the document type. Hints (vendor name, line
// item descriptions) are matched against the category keyword rules first;
// a matching rule overrides the per-type default. Nothing matching at all
// falls back to the chart's uncategorized account. Unknown documents get no
// suggestion.
func (s *Suggester) Suggest(typ document.Type, hints ...string) *document.Account {
	if typ == document.TypeUnknown {
		return nil
	}

	if acct, ok := s.matchCategory(hints); ok {
		return new(acct)
	}

	if acct, ok := s.chart.Defaults[typ]; ok {
		return new(acct)
	}

	return new(s.chart.Fallback)
}

func (s *Suggester) matchCategory(hints []string) (document.Account, bool) {
	for _, rule := range s.chart.Categories {
		for _, hint := range hints {
			lower := strings.ToLower(hint)

			for _, kw := range rule.Keywords {
				if strings.Contains(lower, kw) {
					return rule.Account, true
				}
			}
		}
	}

	return document.Account{}, false
}
