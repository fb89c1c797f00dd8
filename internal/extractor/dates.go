package extractor

import (
	"regexp"
	"strings"
	"time"
)

// dateTokenRe matches anything that looks like a date: slash/dash-delimited
// numerics, ISO dates, and English or Spanish month-name forms.
var dateTokenRe = regexp.MustCompile(`(?i)` +
	`\d{4}-\d{1,2}-\d{1,2}` +
	`|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}` +
	`|(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)\.?\s+\d{1,2},?\s+\d{4}` +
	`|\d{1,2}\s+de\s+(?:enero|febrero|marzo|abril|mayo|junio|julio|agosto|septiembre|octubre|noviembre|diciembre)\s+de\s+\d{4}`)

// issueLabelPatterns locate an explicitly labeled issue date. Ordered: the
// specific "invoice date" label wins over a bare line-anchored "Date:" so a
// "Due Date:" line can never be claimed as the issue date.
var issueLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:invoice|issue)\s+date\s*[:\-]\s*(.{0,40})`),
	regexp.MustCompile(`(?i)fecha\s+de\s+(?:emisi[oó]n|factura)\s*[:\-]\s*(.{0,40})`),
	regexp.MustCompile(`(?im)^\s*(?:date|fecha)\s*[:\-]\s*(.{0,40})$`),
}

// dueLabelPatterns locate an explicitly labeled due date.
var dueLabelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)due\s+date\s*[:\-]\s*(.{0,40})`),
	regexp.MustCompile(`(?i)(?:payment\s+due|due\s+by)\s*[:\-]?\s*(.{0,40})`),
	regexp.MustCompile(`(?i)(?:fecha\s+de\s+)?vencimiento\s*[:\-]\s*(.{0,40})`),
	regexp.MustCompile(`(?i)\bvence\s*[:\-]\s*(.{0,40})`),
}

// dateLayouts are tried in order against each candidate token. Dates are
// month-first: the product's markets write 01/15/2024 for January 15.
var dateLayouts = []string{
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"Jan. 2, 2006",
	"Jan. 2 2006",
	// Day-first forms rescue tokens like 15/01/2024 that are invalid
	// month-first; unambiguous month-first parses still win above.
	"2/1/2006",
	"2-1-2006",
}

// spanishMonths translates Spanish month names so the shared layouts apply.
var spanishMonths = map[string]string{
	"enero":      "January",
	"febrero":    "February",
	"marzo":      "March",
	"abril":      "April",
	"mayo":       "May",
	"junio":      "June",
	"julio":      "July",
	"agosto":     "August",
	"septiembre": "September",
	"octubre":    "October",
	"noviembre":  "November",
	"diciembre":  "December",
}

// extractDates resolves the issue and due dates. Labeled dates always win;
// when a label is missing the collected dates are assigned positionally
// (first found = issue, second = due). Positional assignment is a lossy
// heuristic — a stray "last updated" stamp can land in the wrong slot — so
// inferred reports whether it was used at all.
func extractDates(text string) (issue, due *time.Time, inferred bool) {
	issue = findLabeledDate(text, issueLabelPatterns)
	due = findLabeledDate(text, dueLabelPatterns)

	if issue != nil && due != nil {
		return issue, due, false
	}

	// Positional fallback over every date in the text, skipping dates a
	// label already claimed.
	var candidates []time.Time

	for _, token := range dateTokenRe.FindAllString(text, -1) {
		t, ok := parseDateToken(token)
		if !ok {
			continue
		}

		if (issue != nil && t.Equal(*issue)) || (due != nil && t.Equal(*due)) {
			continue
		}

		candidates = append(candidates, t)
	}

	if issue == nil && len(candidates) > 0 {
		issue = &candidates[0]
		candidates = candidates[1:]
		inferred = true
	}

	if due == nil && len(candidates) > 0 {
		due = &candidates[0]
		inferred = true
	}

	return issue, due, inferred
}

// findLabeledDate tries each label pattern in order and parses the first
// date token found in its capture.
func findLabeledDate(text string, patterns []*regexp.Regexp) *time.Time {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		token := dateTokenRe.FindString(m[1])
		if token == "" {
			continue
		}

		if t, ok := parseDateToken(token); ok {
			return &t
		}
	}

	return nil
}

// parseDateToken parses a single date-like token; false for anything that
// fails every layout (e.g. 13/45/2024).
func parseDateToken(s string) (time.Time, bool) {
	s = normalizeDateToken(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// normalizeDateToken rewrites Spanish "15 de enero de 2024" into a form the
// shared layouts understand, and title-cases month names for time.Parse.
func normalizeDateToken(s string) string {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	for es, en := range spanishMonths {
		if !strings.Contains(lower, es) {
			continue
		}

		// "15 de enero de 2024" -> "January 15 2024"
		parts := strings.Fields(lower)
		if len(parts) == 5 && parts[1] == "de" && parts[3] == "de" {
			return en + " " + parts[0] + " " + parts[4]
		}

		return strings.ReplaceAll(lower, es, en)
	}

	if r := lower[0]; r >= 'a' && r <= 'z' {
		return strings.ToUpper(lower[:1]) + lower[1:]
	}

	return s
}
