package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaro/docintel/internal/extractor"
)

func TestExtract_Amounts(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{name: "Plain", text: "ACME\nTotal: 535.00", want: 53500},
		{name: "DollarSign", text: "ACME\nTotal: $535.00", want: 53500},
		{name: "Thousands", text: "ACME\nTotal: $12,345.67", want: 1234567},
		{name: "NoDecimals", text: "ACME\nTotal: 535", want: 53500},
		{name: "AmountDue", text: "ACME\nAmount Due: 99.95", want: 9995},
		{name: "BalanceDue", text: "ACME\nBalance Due: $1.00", want: 100},
		{name: "GrandTotal", text: "ACME\nGrand Total: 535.00", want: 53500},
		{name: "Spanish", text: "ACME\nImporte Total: 1,160.00", want: 116000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := extractor.Extract(tt.text)

			require.NotNil(t, doc.Total)
			assert.Equal(t, tt.want, *doc.Total)
		})
	}
}

func TestExtract_AmountPatternOrder(t *testing.T) {
	// "Amount Due" outranks the bare "Total" label even when "Total"
	// appears first in the text.
	text := `ACME Corp
Total: $999.00
Amount Due: $42.00`

	doc := extractor.Extract(text)

	require.NotNil(t, doc.Total)
	assert.Equal(t, int64(4200), *doc.Total)
}

func TestExtract_SubtotalDoesNotClaimTotal(t *testing.T) {
	// \btotal\b cannot match inside "Subtotal".
	text := `ACME Corp
Subtotal: $500.00`

	doc := extractor.Extract(text)

	assert.Nil(t, doc.Total)
	require.NotNil(t, doc.Subtotal)
	assert.Equal(t, int64(50000), *doc.Subtotal)
}

func TestExtract_TaxVariants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int64
	}{
		{name: "Tax", text: "ACME\nTax: 35.00", want: 3500},
		{name: "SalesTax", text: "ACME\nSales Tax: $12.00", want: 1200},
		{name: "VAT", text: "ACME\nVAT: 20.00", want: 2000},
		{name: "IVA", text: "ACME\nIVA: 16.00", want: 1600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := extractor.Extract(tt.text)

			require.NotNil(t, doc.Tax)
			assert.Equal(t, tt.want, *doc.Tax)
		})
	}
}

func TestExtract_BackfillTotal(t *testing.T) {
	text := `ACME Corp
Subtotal: 100.00
Tax: 16.00`

	doc := extractor.Extract(text)

	require.NotNil(t, doc.Total)
	assert.Equal(t, int64(11600), *doc.Total)
}

func TestExtract_BackfillSubtotal(t *testing.T) {
	text := `ACME Corp
Total: 116.00
Tax: 16.00`

	doc := extractor.Extract(text)

	require.NotNil(t, doc.Subtotal)
	assert.Equal(t, int64(10000), *doc.Subtotal)
}

func TestExtract_BackfillTax(t *testing.T) {
	text := `ACME Corp
Subtotal: 100.00
Total: 116.00`

	doc := extractor.Extract(text)

	require.NotNil(t, doc.Tax)
	assert.Equal(t, int64(1600), *doc.Tax)
}

func TestExtract_NoNegativeBackfill(t *testing.T) {
	// Tax larger than total means the extracted pair is wrong; the
	// subtotal stays absent instead of going negative.
	text := `ACME Corp
Total: 10.00
Tax: 16.00`

	doc := extractor.Extract(text)
	assert.Nil(t, doc.Subtotal)
}
