package accounts_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaro/docintel/internal/accounts"
	"github.com/contaro/docintel/internal/document"
)

func TestSuggest_Defaults(t *testing.T) {
	s := accounts.NewSuggester(accounts.DefaultChart())

	tests := []struct {
		name string
		typ  document.Type
		want document.Account
	}{
		{name: "Invoice", typ: document.TypeInvoice, want: accounts.AccountsPayable},
		{name: "Receipt", typ: document.TypeReceipt, want: document.Account{Code: "6100", Name: "Office Supplies"}},
		{name: "BankStatement", typ: document.TypeBankStatement, want: accounts.Cash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Suggest(tt.typ)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestSuggest_UnknownType(t *testing.T) {
	s := accounts.NewSuggester(accounts.DefaultChart())

	assert.Nil(t, s.Suggest(document.TypeUnknown, "Cloud Hotel"))
}

func TestSuggest_CategoryHintOverridesDefault(t *testing.T) {
	s := accounts.NewSuggester(accounts.DefaultChart())

	tests := []struct {
		name     string
		hints    []string
		wantCode string
	}{
		{name: "TravelVendor", hints: []string{"Grand Hotel Madrid"}, wantCode: "6300"},
		{name: "UtilitiesSpanish", hints: []string{"Pago de luz y agua"}, wantCode: "6400"},
		{name: "MealsLineItem", hints: []string{"ACME Corp", "Catering for offsite"}, wantCode: "6500"},
		{name: "Software", hints: []string{"Annual SaaS subscription"}, wantCode: "6600"},
		{name: "CaseInsensitive", hints: []string{"HOTEL PLAYA"}, wantCode: "6300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Suggest(document.TypeInvoice, tt.hints...)

			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestSuggest_FirstRuleWins(t *testing.T) {
	// "hotel" (travel) appears in the rule list before "restaurante" (meals),
	// so a hint matching both categories lands on travel.
	s := accounts.NewSuggester(accounts.DefaultChart())

	got := s.Suggest(document.TypeReceipt, "Hotel restaurante El Faro")

	require.NotNil(t, got)
	assert.Equal(t, "6300", got.Code)
}

func TestSuggest_FallbackWhenNoDefault(t *testing.T) {
	chart := accounts.Chart{
		Defaults: map[document.Type]document.Account{},
		Fallback: accounts.Uncategorized,
	}
	s := accounts.NewSuggester(chart)

	got := s.Suggest(document.TypeReceipt, "unmatched vendor")

	require.NotNil(t, got)
	assert.Equal(t, accounts.Uncategorized, *got)
}

func TestSuggest_ReturnsCopy(t *testing.T) {
	s := accounts.NewSuggester(accounts.DefaultChart())

	first := s.Suggest(document.TypeInvoice)
	require.NotNil(t, first)
	first.Name = "mutated"

	second := s.Suggest(document.TypeInvoice)
	require.NotNil(t, second)
	assert.Equal(t, accounts.AccountsPayable.Name, second.Name)
}

func TestLoadChart(t *testing.T) {
	const chartYAML = `
defaults:
  invoice:
    code: "2100"
    name: "Trade Payables"
categories:
  - category: fuel
    keywords: ["gasolina", "fuel"]
    account:
      code: "6700"
      name: "Fuel"
fallback:
  code: "6999"
  name: "Suspense"
`

	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(chartYAML), 0o600))

	chart, err := accounts.LoadChart(path)
	require.NoError(t, err)

	assert.Equal(t, "2100", chart.Defaults[document.TypeInvoice].Code)
	assert.Equal(t, "6999", chart.Fallback.Code)

	s := accounts.NewSuggester(chart)

	fuel := s.Suggest(document.TypeReceipt, "Gasolina Pemex")
	require.NotNil(t, fuel)
	assert.Equal(t, "6700", fuel.Code)
}

func TestLoadChart_MissingSectionsFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: []\n"), 0o600))

	chart, err := accounts.LoadChart(path)
	require.NoError(t, err)

	assert.Equal(t, accounts.AccountsPayable, chart.Defaults[document.TypeInvoice])
	assert.Equal(t, accounts.Uncategorized, chart.Fallback)
	assert.NotEmpty(t, chart.Categories)
}

func TestLoadChart_MissingFile(t *testing.T) {
	_, err := accounts.LoadChart(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}
