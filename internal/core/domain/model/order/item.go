package order

import (
	"errors"
	"fmt"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxItemQuantity = 999

// ErrEquipmentItemIsNotConstructed is returned for items not built by NewEquipmentItem.
var ErrEquipmentItemIsNotConstructed = errors.New("EquipmentItem must be created via NewEquipmentItem constructor")

// EquipmentItem is one physical component on an order. A SET model is
// represented by one item per component.
type EquipmentItem struct {
	componentName         string
	modelName             string
	quantity              int
	unitPrice             decimal.Decimal
	confirmedDeliveryDate kernel.Date

	isConstructed bool
}

func NewEquipmentItem(
	componentName, modelName string,
	quantity int,
	unitPrice decimal.Decimal,
	confirmedDeliveryDate kernel.Date,
) (EquipmentItem, error) {
	item := EquipmentItem{
		confirmedDeliveryDate: confirmedDeliveryDate,
		isConstructed:         true,
	}

	if err := errors.Join(
		item.setComponentName(componentName),
		item.setModelName(modelName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return EquipmentItem{}, err
	}

	return item, nil
}

func (i EquipmentItem) Validate() error {
	if !i.isConstructed {
		return ErrEquipmentItemIsNotConstructed
	}
	return nil
}

func (i EquipmentItem) ComponentName() string {
	return i.componentName
}

func (i EquipmentItem) ModelName() string {
	return i.modelName
}

func (i EquipmentItem) Quantity() int {
	return i.quantity
}

func (i EquipmentItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Amount is quantity times unit price.
func (i EquipmentItem) Amount() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

func (i EquipmentItem) ConfirmedDeliveryDate() kernel.Date {
	return i.confirmedDeliveryDate
}

// WithConfirmedDeliveryDate returns a copy carrying the vendor-confirmed date.
func (i EquipmentItem) WithConfirmedDeliveryDate(d kernel.Date) EquipmentItem {
	i.confirmedDeliveryDate = d
	return i
}

func (i *EquipmentItem) setComponentName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("componentName")
	}
	i.componentName = name
	return nil
}

func (i *EquipmentItem) setModelName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("modelName")
	}
	i.modelName = name
	return nil
}

func (i *EquipmentItem) setQuantity(quantity int) error {
	if quantity < 1 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *EquipmentItem) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price.String()))
	}
	i.unitPrice = price
	return nil
}
