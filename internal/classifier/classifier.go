package classifier

import (
	"strings"

	"github.com/contaro/docintel/internal/document"
)

// Classifier assigns a document type from the file name and body text using
// ordered keyword families. The file name is scanned before the body because
// it is cheap and high-precision: a receipt can mention "factura" in a footer
// without being an invoice. First matching family wins.
type Classifier struct {
	families []Family
}

// New returns a classifier using the built-in bilingual keyword families.
func New() *Classifier {
	return &Classifier{families: defaultFamilies}
}

// NewWithFamilies returns a classifier using a custom ordered family list,
// e.g. one loaded from a keywords file.
func NewWithFamilies(families []Family) *Classifier {
	if len(families) == 0 {
		families = defaultFamilies
	}

	return &Classifier{families: families}
}

// Classify returns the document type for the given file name and text.
// Deterministic: same inputs always yield the same type.
func (c *Classifier) Classify(fileName, text string) document.Type {
	if typ, ok := c.match(fileName); ok {
		return typ
	}

	if typ, ok := c.match(text); ok {
		return typ
	}

	return document.TypeUnknown
}

// match scans s against each family in order.
func (c *Classifier) match(s string) (document.Type, bool) {
	if strings.TrimSpace(s) == "" {
		return document.TypeUnknown, false
	}

	lower := strings.ToLower(s)

	for _, f := range c.families {
		for _, kw := range f.Keywords {
			if strings.Contains(lower, kw) {
				return f.Type, true
			}
		}
	}

	return document.TypeUnknown, false
}
