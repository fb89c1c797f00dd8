package validate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/contaro/docintel/internal/document"
	"github.com/contaro/docintel/internal/validate"
)

func strPtr(s string) *string        { return &s }
func centsPtr(n int64) *int64        { return &n }
func datePtr(t time.Time) *time.Time { return &t }

func cleanDoc() document.Extracted {
	return document.Extracted{
		Vendor:     strPtr("ACME Corp"),
		Number:     strPtr("INV-500"),
		Type:       document.TypeInvoice,
		IssueDate:  datePtr(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)),
		DueDate:    datePtr(time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)),
		Total:      centsPtr(53500),
		Subtotal:   centsPtr(50000),
		Tax:        centsPtr(3500),
		Confidence: 0.9,
	}
}

func TestCheck_CleanDocument(t *testing.T) {
	res := validate.Check(cleanDoc())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestCheck_Errors(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*document.Extracted)
		wantErr string
	}{
		{
			name:    "MissingVendor",
			modify:  func(d *document.Extracted) { d.Vendor = nil },
			wantErr: "vendor is missing or too short",
		},
		{
			name:    "ShortVendor",
			modify:  func(d *document.Extracted) { d.Vendor = strPtr("AB") },
			wantErr: "vendor is missing or too short",
		},
		{
			name:    "MissingTotal",
			modify:  func(d *document.Extracted) { d.Total = nil; d.Subtotal = nil; d.Tax = nil },
			wantErr: "total amount is missing",
		},
		{
			name:    "ZeroTotal",
			modify:  func(d *document.Extracted) { d.Total = centsPtr(0); d.Subtotal = nil; d.Tax = nil },
			wantErr: "total amount must be greater than zero",
		},
		{
			name:    "NegativeTotal",
			modify:  func(d *document.Extracted) { d.Total = centsPtr(-100); d.Subtotal = nil; d.Tax = nil },
			wantErr: "total amount must be greater than zero",
		},
		{
			name: "DueBeforeIssue",
			modify: func(d *document.Extracted) {
				d.DueDate = datePtr(d.IssueDate.AddDate(0, 0, -1))
			},
			wantErr: "due date is earlier than issue date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cleanDoc()
			tt.modify(&doc)

			res := validate.Check(doc)

			assert.False(t, res.Valid)
			assert.Contains(t, res.Errors, tt.wantErr)
		})
	}
}

func TestCheck_Boundaries(t *testing.T) {
	t.Run("OneCentTotalIsValid", func(t *testing.T) {
		doc := cleanDoc()
		doc.Total = centsPtr(1)
		doc.Subtotal = nil
		doc.Tax = nil

		assert.True(t, validate.Check(doc).Valid)
	})

	t.Run("DueEqualsIssueIsValid", func(t *testing.T) {
		doc := cleanDoc()
		doc.DueDate = datePtr(*doc.IssueDate)

		assert.True(t, validate.Check(doc).Valid)
	})

	t.Run("FourCharVendorIsValid", func(t *testing.T) {
		doc := cleanDoc()
		doc.Vendor = strPtr("ACME")

		assert.True(t, validate.Check(doc).Valid)
	})
}

func TestCheck_Warnings(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*document.Extracted)
		wantWarn string
	}{
		{
			name:     "MissingIssueDate",
			modify:   func(d *document.Extracted) { d.IssueDate = nil; d.DueDate = nil },
			wantWarn: "issue date not found",
		},
		{
			name:     "MissingNumber",
			modify:   func(d *document.Extracted) { d.Number = nil },
			wantWarn: "document number not found",
		},
		{
			name:     "AmountMismatch",
			modify:   func(d *document.Extracted) { d.Tax = centsPtr(3000) },
			wantWarn: "subtotal plus tax does not match total",
		},
		{
			name:     "InferredDates",
			modify:   func(d *document.Extracted) { d.DatesInferred = true },
			wantWarn: "dates were inferred from position, not labels",
		},
		{
			name:     "LowConfidence",
			modify:   func(d *document.Extracted) { d.Confidence = 0.4 },
			wantWarn: "low extraction confidence; manual review recommended",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := cleanDoc()
			tt.modify(&doc)

			res := validate.Check(doc)

			assert.True(t, res.Valid, "warnings must not invalidate the document")
			assert.Contains(t, res.Warnings, tt.wantWarn)
		})
	}
}

func TestCheck_MismatchTolerance(t *testing.T) {
	t.Run("OneCentOffPasses", func(t *testing.T) {
		doc := cleanDoc()
		doc.Tax = centsPtr(3501)

		assert.Empty(t, validate.Check(doc).Warnings)
	})

	t.Run("TwoCentsOffWarns", func(t *testing.T) {
		doc := cleanDoc()
		doc.Tax = centsPtr(3502)

		assert.Contains(t, validate.Check(doc).Warnings, "subtotal plus tax does not match total")
	})

	t.Run("SkippedWhenSubtotalMissing", func(t *testing.T) {
		doc := cleanDoc()
		doc.Subtotal = nil

		assert.Empty(t, validate.Check(doc).Warnings)
	})
}

func TestCheck_ConfidenceThreshold(t *testing.T) {
	doc := cleanDoc()
	doc.Confidence = 0.5

	assert.Empty(t, validate.Check(doc).Warnings, "threshold itself does not warn")
}

func TestCheck_AccumulatesAll(t *testing.T) {
	res := validate.Check(document.Extracted{})

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 2)
	assert.GreaterOrEqual(t, len(res.Warnings), 3)
}
