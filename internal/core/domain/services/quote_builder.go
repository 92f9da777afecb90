package services

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// QuoteLine is one quoted model. UnitPrice overrides the price table.
type QuoteLine struct {
	ModelName string
	Quantity  int
	UnitPrice *decimal.Decimal
}

// QuoteBuilder expands quote lines into equipment items.
type QuoteBuilder struct{}

func NewQuoteBuilder() QuoteBuilder {
	return QuoteBuilder{}
}

// Build prices each line from the catalog unless the line carries its own
// price. A SET model becomes one item per component; the first component
// carries the SET price and the others are priced at zero, so the order total
// matches the catalog.
func (QuoteBuilder) Build(catalog *pricing.Catalog, affiliate string, lines []QuoteLine) ([]order.EquipmentItem, error) {
	items := make([]order.EquipmentItem, 0, len(lines))

	for _, line := range lines {
		entry, err := catalog.Lookup(affiliate, line.ModelName)
		if err != nil && (line.UnitPrice == nil || !errors.Is(err, errs.ErrObjectNotFound)) {
			return nil, err
		}

		price := decimal.Zero
		switch {
		case line.UnitPrice != nil:
			price = *line.UnitPrice
		case entry != nil:
			price = entry.UnitPrice()
		}

		if entry == nil || !entry.IsSet() {
			item, itemErr := order.NewEquipmentItem(line.ModelName, line.ModelName, line.Quantity, price, kernel.Date{})
			if itemErr != nil {
				return nil, itemErr
			}
			items = append(items, item)
			continue
		}

		for i, component := range entry.Components() {
			componentPrice := decimal.Zero
			if i == 0 {
				componentPrice = price
			}

			item, itemErr := order.NewEquipmentItem(component.Name, component.ModelName, line.Quantity, componentPrice, kernel.Date{})
			if itemErr != nil {
				return nil, itemErr
			}
			items = append(items, item)
		}
	}

	return items, nil
}
