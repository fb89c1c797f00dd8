package accounts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contaro/docintel/internal/document"
)

// Well-known posting accounts the journal synthesizer needs as counterparts.
// Kept here with the rest of the chart so the whole account surface lives in
// one reviewable place.
var (
	Cash            = document.Account{Code: "1000", Name: "Cash"}
	AccountsPayable = document.Account{Code: "2000", Name: "Accounts Payable"}
	Uncategorized   = document.Account{Code: "6900", Name: "Uncategorized Expense"}
)

// CategoryRule maps category keywords found in vendor names or line items to
// a specific expense account. Keywords must be lower case.
type CategoryRule struct {
	Category string           `yaml:"category" json:"category"`
	Keywords []string         `yaml:"keywords" json:"keywords"`
	Account  document.Account `yaml:"account" json:"account"`
}

// Chart is the account-mapping table driving suggestions. It is data, not
// logic: accounting rules change per jurisdiction and company, so a company
// ships a YAML chart instead of patching the suggester.
type Chart struct {
	Defaults   map[document.Type]document.Account `yaml:"defaults" json:"defaults"`
	Categories []CategoryRule                     `yaml:"categories" json:"categories"`
	Fallback   document.Account                   `yaml:"fallback" json:"fallback"`
}

// DefaultChart returns the built-in chart for the bilingual EN/ES market.
func DefaultChart() Chart {
	return Chart{
		Defaults: map[document.Type]document.Account{
			document.TypeInvoice:       AccountsPayable,
			document.TypeReceipt:       {Code: "6100", Name: "Office Supplies"},
			document.TypeBankStatement: Cash,
		},
		Categories: []CategoryRule{
			{
				Category: "travel",
				Keywords: []string{
					"travel", "hotel", "flight", "airline", "airfare",
					"uber", "taxi", "viaje", "vuelo", "hospedaje",
				},
				Account: document.Account{Code: "6300", Name: "Travel Expense"},
			},
			{
				Category: "utilities",
				Keywords: []string{
					"utility", "utilities", "electric", "electricity",
					"water", "internet", "phone", "luz", "agua",
					"electricidad", "telefono", "teléfono",
				},
				Account: document.Account{Code: "6400", Name: "Utilities"},
			},
			{
				Category: "meals",
				Keywords: []string{
					"restaurant", "meal", "cafe", "coffee", "catering",
					"restaurante", "comida", "café",
				},
				Account: document.Account{Code: "6500", Name: "Meals & Entertainment"},
			},
			{
				Category: "software",
				Keywords: []string{
					"software", "subscription", "saas", "hosting",
					"license", "licencia", "suscripcion", "suscripción",
				},
				Account: document.Account{Code: "6600", Name: "Software & Subscriptions"},
			},
			{
				Category: "office",
				Keywords: []string{
					"office", "supplies", "stationery",
					"oficina", "papeleria", "papelería",
				},
				Account: document.Account{Code: "6100", Name: "Office Supplies"},
			},
		},
		Fallback: Uncategorized,
	}
}

// LoadChart reads a chart from a YAML file. Missing sections fall back to the
// built-in chart so a company can override just its category rules.
func LoadChart(path string) (Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Chart{}, fmt.Errorf("read chart file: %w", err)
	}

	var chart Chart
	if err := yaml.Unmarshal(raw, &chart); err != nil {
		return Chart{}, fmt.Errorf("parse chart file: %w", err)
	}

	defaults := DefaultChart()

	if len(chart.Defaults) == 0 {
		chart.Defaults = defaults.Defaults
	}

	if len(chart.Categories) == 0 {
		chart.Categories = defaults.Categories
	}

	if chart.Fallback.Code == "" {
		chart.Fallback = defaults.Fallback
	}

	return chart, nil
}
