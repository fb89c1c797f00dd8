// Package journal turns an extracted document plus a suggested account into a
// balanced double-entry journal suggestion.
package journal

import (
	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/document"
)

// Synthesize produces a journal entry suggestion for the document, or nil
// when no single entry makes sense: bank statements summarize many
// transactions, unknown documents have no posting rule, and a document
// without a positive total has nothing to post.
//
// Entries are balanced by construction, never by after-the-fact correction:
// always exactly two lines carrying the same cent amount on opposite sides,
// so sum(debits) == sum(credits) holds exactly with no room for rounding
// drift.
func Synthesize(doc document.Extracted, acct *document.Account) *document.Entry {
	if acct == nil || doc.Total == nil || *doc.Total <= 0 {
		return nil
	}

	amount := *doc.Total

	switch doc.Type {
	case document.TypeInvoice:
		return twoLines(invoiceDebitSide(*acct), accounts.AccountsPayable, amount)

	case document.TypeReceipt:
		return twoLines(*acct, accounts.Cash, amount)

	default:
		return nil
	}
}

// invoiceDebitSide picks the debit account for an invoice entry. The default
// chart suggests Accounts Payable for invoices, which is the credit side; a
// payable suggestion flips to debiting the uncategorized expense account so
// the entry never posts both sides to the same account.
func invoiceDebitSide(acct document.Account) document.Account {
	if acct.Code == accounts.AccountsPayable.Code {
		return accounts.Uncategorized
	}

	return acct
}

// twoLines builds the canonical two-line entry: one debit, one credit, same
// amount.
func twoLines(debit, credit document.Account, amount int64) *document.Entry {
	return &document.Entry{
		Lines: []document.Line{
			{
				AccountCode: debit.Code,
				AccountName: debit.Name,
				Debit:       amount,
			},
			{
				AccountCode: credit.Code,
				AccountName: credit.Name,
				Credit:      amount,
			},
		},
	}
}
