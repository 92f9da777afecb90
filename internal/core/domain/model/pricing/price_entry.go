package pricing

import (
	"errors"
	"fmt"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPriceEntryIsNotConstructed = errors.New("PriceEntry must be created via NewPriceEntry constructor")

// PriceEntry is one row of the price table.
type PriceEntry struct {
	id           kernel.UUID
	affiliate    string
	modelName    string
	components   []Component
	unitPrice    decimal.Decimal
	installPrice decimal.Decimal

	isConstructed bool
}

func NewPriceEntry(
	id kernel.UUID,
	affiliate, modelName string,
	components []Component,
	unitPrice, installPrice decimal.Decimal,
) (*PriceEntry, error) {
	e := &PriceEntry{
		id:            id,
		affiliate:     strings.TrimSpace(affiliate),
		components:    append([]Component(nil), components...),
		isConstructed: true,
	}

	if err := errors.Join(
		id.Validate(),
		e.setModelName(modelName),
		e.setPrice("unitPrice", unitPrice, &e.unitPrice),
		e.setPrice("installPrice", installPrice, &e.installPrice),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *PriceEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrPriceEntryIsNotConstructed
	}
	return nil
}

func (e *PriceEntry) ID() kernel.UUID {
	return e.id
}

// Affiliate is empty for the default price.
func (e *PriceEntry) Affiliate() string {
	return e.affiliate
}

func (e *PriceEntry) ModelName() string {
	return e.modelName
}

func (e *PriceEntry) Components() []Component {
	return append([]Component(nil), e.components...)
}

// IsSet reports whether the entry bundles several components.
func (e *PriceEntry) IsSet() bool {
	return len(e.components) > 0
}

func (e *PriceEntry) UnitPrice() decimal.Decimal {
	return e.unitPrice
}

func (e *PriceEntry) InstallPrice() decimal.Decimal {
	return e.installPrice
}

func (e *PriceEntry) key() catalogKey {
	return newCatalogKey(e.affiliate, e.modelName)
}

func (e *PriceEntry) setModelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("modelName")
	}
	e.modelName = name
	return nil
}

func (e *PriceEntry) setPrice(param string, price decimal.Decimal, dst *decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s is negative", price.String()))
	}
	*dst = price
	return nil
}
