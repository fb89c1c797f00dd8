package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contaro/docintel/internal/document"
)

// Family maps a document type to the keywords that identify it. Keywords must
// be lower case; matching is case-insensitive substring search.
type Family struct {
	Type     document.Type `yaml:"type"`
	Keywords []string      `yaml:"keywords"`
}

// defaultFamilies is the ordered built-in keyword table for the English and
// Spanish document formats the product handles. Order is part of the contract:
// invoice keywords are tried before receipt, receipt before bank statement,
// and the bare "statement" keyword sits last within its family so it cannot
// shadow a more specific match.
//
// Adding a market is adding keywords here (or shipping a keywords file),
// not touching classifier logic.
var defaultFamilies = []Family{
	{
		Type: document.TypeInvoice,
		Keywords: []string{
			"invoice",
			"factura",
			"inv-",
			"inv_",
		},
	},
	{
		Type: document.TypeReceipt,
		Keywords: []string{
			"receipt",
			"recibo",
			"ticket de compra",
		},
	},
	{
		Type: document.TypeBankStatement,
		Keywords: []string{
			"bank-statement",
			"bank statement",
			"estado de cuenta",
			"extracto bancario",
			"statement",
		},
	},
}

// LoadFamilies reads an ordered keyword family list from a YAML file.
func LoadFamilies(path string) ([]Family, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keywords file: %w", err)
	}

	var cfg struct {
		Families []Family `yaml:"families"`
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse keywords file: %w", err)
	}

	if len(cfg.Families) == 0 {
		return nil, fmt.Errorf("keywords file %s defines no families", path)
	}

	return cfg.Families, nil
}
