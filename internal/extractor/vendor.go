package extractor

import (
	"strings"
)

// vendorScanLines is how many leading lines are considered for the vendor
// name. Real documents put the counterparty in the letterhead.
const vendorScanLines = 5

// vendorBoilerplate are substrings that disqualify a line from being the
// vendor name: they mark header noise, not a counterparty.
var vendorBoilerplate = []string{
	"invoice",
	"factura",
	"receipt",
	"recibo",
	"bill",
	"total",
	"date",
	"fecha",
	"due",
	"vencimiento",
	"statement",
	"estado de cuenta",
}

// extractVendor picks the best-guess counterparty name from the top of the
// document: the first non-empty line among the first few that carries no
// boilerplate keyword, falling back to the first non-empty line outright.
func extractVendor(lines []string) *string {
	var fallback *string

	limit := min(vendorScanLines, len(lines))

	for _, line := range lines[:limit] {
		candidate := strings.TrimSpace(line)
		if candidate == "" {
			continue
		}

		if fallback == nil {
			fallback = &candidate
		}

		if !containsBoilerplate(candidate) {
			return &candidate
		}
	}

	return fallback
}

func containsBoilerplate(line string) bool {
	lower := strings.ToLower(line)

	for _, kw := range vendorBoilerplate {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	return false
}
