package extractor

import (
	"regexp"
	"strconv"

	"github.com/contaro/docintel/internal/document"
)

// lineItemRe expects "description  qty  unitPrice  amount" on one line, with
// at least two spaces between the description and the numeric columns. Lines
// that do not fit this shape are skipped without comment: tabular PDF bodies
// rarely OCR into clean single lines, and a missed item only costs a little
// confidence.
var lineItemRe = regexp.MustCompile(
	`^\s*(\S.*?\S)\s{2,}(\d+)\s+` + amountGroup + `\s+` + amountGroup + `\s*$`,
)

// extractLineItems scans each line for the tabular item shape.
func extractLineItems(lines []string) []document.LineItem {
	var items []document.LineItem

	for _, line := range lines {
		m := lineItemRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		qty, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			continue
		}

		unitPrice, err := parseCents(m[3])
		if err != nil {
			continue
		}

		amount, err := parseCents(m[4])
		if err != nil {
			continue
		}

		items = append(items, document.LineItem{
			Description: m[1],
			Quantity:    &qty,
			UnitPrice:   &unitPrice,
			Amount:      amount,
		})
	}

	return items
}
