package extractor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/contaro/docintel/internal/document"
)

// amountGroup captures a monetary value: optional currency sign, thousands
// separators, up to two decimals.
const amountGroup = `\$?\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`

// totalPatterns, subtotalPatterns and taxPatterns are ordered label
// alternatives per field; for each field the first pattern that matches
// anywhere in the text wins. \btotal\b cannot match inside "subtotal", so the
// bare label is safe as the last resort.
var (
	totalPatterns = compileAmountPatterns(
		`(?:amount|balance)\s+due`,
		`(?:grand\s+)?total\s+a\s+pagar`,
		`importe\s+total`,
		`grand\s+total`,
		`\btotal\b`,
	)

	subtotalPatterns = compileAmountPatterns(
		`sub\s*-?\s*total`,
	)

	taxPatterns = compileAmountPatterns(
		`sales\s+tax`,
		`\biva\b`,
		`impuestos?`,
		`\bvat\b`,
		`\btax\b`,
	)
)

func compileAmountPatterns(labels ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(labels))

	for _, label := range labels {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+label+`\s*:?\s*`+amountGroup))
	}

	return patterns
}

// findAmount returns the first amount any pattern captures, in cents, or nil.
func findAmount(text string, patterns []*regexp.Regexp) *int64 {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		cents, err := parseCents(m[1])
		if err != nil {
			continue
		}

		return &cents
	}

	return nil
}

// parseCents parses a captured amount string into cents.
// "1,234.56" -> 123456, "535.00" -> 53500, "35" -> 3500.
func parseCents(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// reconcileAmounts back-fills any one missing amount from the other two:
// total = subtotal + tax, subtotal = total - tax, tax = total - subtotal.
// Negative back-fill results are discarded rather than recorded, since a
// negative subtotal or tax means the extracted pair is wrong, not the doc.
func reconcileAmounts(doc *document.Extracted) {
	switch {
	case doc.Total == nil && doc.Subtotal != nil && doc.Tax != nil:
		total := *doc.Subtotal + *doc.Tax
		doc.Total = &total

	case doc.Subtotal == nil && doc.Total != nil && doc.Tax != nil:
		if subtotal := *doc.Total - *doc.Tax; subtotal >= 0 {
			doc.Subtotal = &subtotal
		}

	case doc.Tax == nil && doc.Total != nil && doc.Subtotal != nil:
		if tax := *doc.Total - *doc.Subtotal; tax >= 0 {
			doc.Tax = &tax
		}
	}
}
