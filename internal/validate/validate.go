// Package validate runs the business-rule checks over an extraction result,
// separating hard errors from advisory warnings.
package validate

import (
	"github.com/contaro/docintel/internal/document"
)

// reconcileEpsilonCents is the tolerance for the subtotal+tax vs total check:
// one cent, matching the rounding the amount parser applies.
const reconcileEpsilonCents = 1

// reviewThreshold is the confidence below which manual review is recommended.
const reviewThreshold = 0.5

// Check validates an extracted document. Errors make the result invalid;
// warnings only flag quality problems for a human. Check never mutates doc
// and auto-corrects nothing: amount reconciliation already happened during
// extraction, so a residual mismatch here signals an extraction-quality
// problem worth surfacing.
func Check(doc document.Extracted) document.Validation {
	var errs, warnings []string

	if doc.Vendor == nil || len(*doc.Vendor) <= 3 {
		errs = append(errs, "vendor is missing or too short")
	}

	if doc.Total == nil {
		errs = append(errs, "total amount is missing")
	} else if *doc.Total <= 0 {
		errs = append(errs, "total amount must be greater than zero")
	}

	if doc.IssueDate != nil && doc.DueDate != nil && doc.DueDate.Before(*doc.IssueDate) {
		errs = append(errs, "due date is earlier than issue date")
	}

	if doc.IssueDate == nil {
		warnings = append(warnings, "issue date not found")
	}

	if doc.Number == nil {
		warnings = append(warnings, "document number not found")
	}

	if doc.Total != nil && doc.Subtotal != nil && doc.Tax != nil {
		if diff := *doc.Subtotal + *doc.Tax - *doc.Total; diff > reconcileEpsilonCents || diff < -reconcileEpsilonCents {
			warnings = append(warnings, "subtotal plus tax does not match total")
		}
	}

	if doc.DatesInferred {
		warnings = append(warnings, "dates were inferred from position, not labels")
	}

	if doc.Confidence < reviewThreshold {
		warnings = append(warnings, "low extraction confidence; manual review recommended")
	}

	return document.Validation{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
