package pricing

import (
	"fmt"
	"strings"

	"hvacops/internal/pkg/errs"
)

type catalogKey struct {
	affiliate string
	model     string
}

func newCatalogKey(affiliate, model string) catalogKey {
	return catalogKey{
		affiliate: strings.ToUpper(strings.TrimSpace(affiliate)),
		model:     strings.ToUpper(strings.TrimSpace(model)),
	}
}

// Catalog is an immutable, indexed price table.
type Catalog struct {
	entries map[catalogKey]*PriceEntry
}

// NewCatalog indexes entries. Two entries for the same affiliate and model
// are rejected.
func NewCatalog(entries []*PriceEntry) (*Catalog, error) {
	c := &Catalog{entries: make(map[catalogKey]*PriceEntry, len(entries))}

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, err
		}

		k := e.key()
		if _, dup := c.entries[k]; dup {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"priceTable",
				fmt.Errorf("duplicate entry for model %s, affiliate %q", e.ModelName(), e.Affiliate()),
			)
		}
		c.entries[k] = e
	}

	return c, nil
}

// Len is the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup finds the price of a model for an affiliate, falling back to the
// default price. Model names match case-insensitively.
func (c *Catalog) Lookup(affiliate, modelName string) (*PriceEntry, error) {
	if e, ok := c.entries[newCatalogKey(affiliate, modelName)]; ok {
		return e, nil
	}
	if e, ok := c.entries[newCatalogKey("", modelName)]; ok {
		return e, nil
	}
	return nil, errs.NewObjectNotFoundError("priceEntry", strings.TrimSpace(modelName))
}
