package extractor

import (
	"regexp"
)

// numberPatterns is the ordered list of document number patterns; the first
// pattern that matches anywhere in the text wins. More explicit forms come
// first so a labeled number beats a bare token.
var numberPatterns = []*regexp.Regexp{
	// "Invoice #INV-500", "Factura: A-0042"
	regexp.MustCompile(`(?i)(?:invoice|factura)\s*(?:no\.?|n[uú]m(?:ero)?\.?|number)?\s*[#:]\s*([A-Za-z0-9][A-Za-z0-9/-]*)`),
	// "Invoice Number 12345", "Factura Núm. 9-881"
	regexp.MustCompile(`(?i)(?:invoice|factura)\s+(?:no\.?|n[uú]m(?:ero)?\.?|number)\s*([A-Za-z0-9][A-Za-z0-9/-]*)`),
	// "Receipt #R-77", "Bill No: 5512", "Recibo: 0031"
	regexp.MustCompile(`(?i)(?:receipt|recibo|bill)\s*(?:no\.?|n[uú]m(?:ero)?\.?|number)?\s*[#:]\s*([A-Za-z0-9][A-Za-z0-9/-]*)`),
	// Bare tokens like "INV-12345"
	regexp.MustCompile(`(?i)\b(inv[-_][A-Za-z0-9-]+)\b`),
}

// extractNumber returns the first document number any pattern finds, or nil.
func extractNumber(text string) *string {
	for _, re := range numberPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		num := m[1]

		return &num
	}

	return nil
}
