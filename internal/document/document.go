package document

import (
	"time"
)

// Type represents the classification of an uploaded financial document.
type Type string

const (
	TypeInvoice       Type = "invoice"
	TypeReceipt       Type = "receipt"
	TypeBankStatement Type = "bank_statement"
	TypeUnknown       Type = "unknown"
)

// Extracted holds the structured fields pulled out of a document's raw text.
// Optional fields are pointers so an absent value stays distinguishable from
// a legitimate zero. Monetary fields are in cents.
type Extracted struct {
	Vendor    *string
	Number    *string
	Type      Type
	IssueDate *time.Time
	DueDate   *time.Time
	Total     *int64
	Subtotal  *int64
	Tax       *int64
	LineItems []LineItem
	// Confidence is the weighted completeness score in [0,1],
	// set by the scorer after extraction.
	Confidence float64
	// DatesInferred is true when issue/due dates were assigned by
	// position in the text rather than matched to an explicit label.
	DatesInferred bool
	RawText       string
}

// LineItem is a single parsed line of a tabular document body.
type LineItem struct {
	Description string
	Quantity    *int64
	UnitPrice   *int64 // cents
	Amount      int64  // cents
}

// Account is a chart-of-accounts entry suggested for posting.
type Account struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

// Line is one side of a journal entry. Exactly one of Debit/Credit is
// non-zero; both are in cents.
type Line struct {
	AccountCode string
	AccountName string
	Debit       int64
	Credit      int64
}

// Entry is a double-entry journal suggestion. Every Entry produced by this
// subsystem satisfies Balanced().
type Entry struct {
	Lines []Line
}

// Balanced reports whether total debits equal total credits to the cent.
func (e Entry) Balanced() bool {
	var debit, credit int64

	for _, l := range e.Lines {
		debit += l.Debit
		credit += l.Credit
	}

	return debit == credit
}

// Validation is the outcome of the business-rule checks. Valid is true iff
// Errors is empty; warnings never affect validity.
type Validation struct {
	Valid    bool
	Errors   []string
	Warnings []string
}
