package journal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/document"
	"github.com/contaro/docintel/internal/journal"
)

func centsPtr(n int64) *int64 { return &n }

func TestSynthesize_Invoice(t *testing.T) {
	doc := document.Extracted{Type: document.TypeInvoice, Total: centsPtr(53500)}
	acct := document.Account{Code: "6600", Name: "Software & Subscriptions"}

	entry := journal.Synthesize(doc, &acct)

	require.NotNil(t, entry)
	require.Len(t, entry.Lines, 2)

	debit, credit := entry.Lines[0], entry.Lines[1]
	assert.Equal(t, "6600", debit.AccountCode)
	assert.Equal(t, int64(53500), debit.Debit)
	assert.Zero(t, debit.Credit)

	assert.Equal(t, accounts.AccountsPayable.Code, credit.AccountCode)
	assert.Equal(t, int64(53500), credit.Credit)
	assert.Zero(t, credit.Debit)

	assert.True(t, entry.Balanced())
}

func TestSynthesize_InvoicePayableSuggestionFlips(t *testing.T) {
	// The default chart suggests Accounts Payable for invoices, but AP is the
	// credit side. The debit falls back to uncategorized expense so both lines
	// never hit the same account.
	doc := document.Extracted{Type: document.TypeInvoice, Total: centsPtr(10000)}
	ap := accounts.AccountsPayable

	entry := journal.Synthesize(doc, &ap)

	require.NotNil(t, entry)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.Uncategorized.Code, entry.Lines[0].AccountCode)
	assert.Equal(t, accounts.AccountsPayable.Code, entry.Lines[1].AccountCode)
	assert.NotEqual(t, entry.Lines[0].AccountCode, entry.Lines[1].AccountCode)
	assert.True(t, entry.Balanced())
}

func TestSynthesize_Receipt(t *testing.T) {
	doc := document.Extracted{Type: document.TypeReceipt, Total: centsPtr(4250)}
	acct := document.Account{Code: "6500", Name: "Meals & Entertainment"}

	entry := journal.Synthesize(doc, &acct)

	require.NotNil(t, entry)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, "6500", entry.Lines[0].AccountCode)
	assert.Equal(t, int64(4250), entry.Lines[0].Debit)
	assert.Equal(t, accounts.Cash.Code, entry.Lines[1].AccountCode)
	assert.Equal(t, int64(4250), entry.Lines[1].Credit)
	assert.True(t, entry.Balanced())
}

func TestSynthesize_NoEntry(t *testing.T) {
	acct := document.Account{Code: "6100", Name: "Office Supplies"}

	tests := []struct {
		name string
		doc  document.Extracted
		acct *document.Account
	}{
		{
			name: "BankStatement",
			doc:  document.Extracted{Type: document.TypeBankStatement, Total: centsPtr(10000)},
			acct: &acct,
		},
		{
			name: "UnknownType",
			doc:  document.Extracted{Type: document.TypeUnknown, Total: centsPtr(10000)},
			acct: &acct,
		},
		{
			name: "NilAccount",
			doc:  document.Extracted{Type: document.TypeInvoice, Total: centsPtr(10000)},
			acct: nil,
		},
		{
			name: "NilTotal",
			doc:  document.Extracted{Type: document.TypeInvoice},
			acct: &acct,
		},
		{
			name: "ZeroTotal",
			doc:  document.Extracted{Type: document.TypeInvoice, Total: centsPtr(0)},
			acct: &acct,
		},
		{
			name: "NegativeTotal",
			doc:  document.Extracted{Type: document.TypeReceipt, Total: centsPtr(-500)},
			acct: &acct,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, journal.Synthesize(tt.doc, tt.acct))
		})
	}
}

func TestSynthesize_OneCentStaysBalanced(t *testing.T) {
	doc := document.Extracted{Type: document.TypeReceipt, Total: centsPtr(1)}
	acct := document.Account{Code: "6100", Name: "Office Supplies"}

	entry := journal.Synthesize(doc, &acct)

	require.NotNil(t, entry)
	assert.True(t, entry.Balanced())
	assert.Equal(t, int64(1), entry.Lines[0].Debit)
}
