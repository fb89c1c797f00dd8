package extractor

import (
	"strings"

	"github.com/contaro/docintel/internal/document"
	"github.com/contaro/docintel/internal/encoding"
)

// maxTextBytes is a hard backstop on how much text the regex extractors will
// scan. Document text is attacker-supplied; callers usually apply a tighter
// configurable cap before reaching this one.
const maxTextBytes = 1 << 20

// Extract runs every field extractor over the document text and returns the
// structured result. It never fails: each field independently degrades to nil
// when nothing parseable is found, and the caller decides whether the result
// is too sparse to use. Confidence is not set at this stage.
func Extract(text string) document.Extracted {
	text = encoding.Truncate(text, maxTextBytes)

	doc := document.Extracted{
		Type:    document.TypeUnknown,
		RawText: text,
	}

	lines := strings.Split(text, "\n")

	doc.Vendor = extractVendor(lines)
	doc.Number = extractNumber(text)

	issue, due, inferred := extractDates(text)
	doc.IssueDate = issue
	doc.DueDate = due
	doc.DatesInferred = inferred

	doc.Total = findAmount(text, totalPatterns)
	doc.Subtotal = findAmount(text, subtotalPatterns)
	doc.Tax = findAmount(text, taxPatterns)
	reconcileAmounts(&doc)

	doc.LineItems = extractLineItems(lines)

	return doc
}
