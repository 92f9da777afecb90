package commands

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/guard"
)

var ErrInputDeliveryCommandIsNotConstructed = errors.New(
	"InputDeliveryCommand must be created via NewInputDeliveryCommand constructor",
)

// InputDeliveryCommand records the vendor purchase order and the delivery
// dates the vendor confirmed, for the order and optionally per item.
type InputDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	vendorOrderNumber     string
	confirmedDeliveryDate kernel.Date
	itemDeliveryDates     []kernel.Date

	guard guard.ConstructorGuard
}

// NewInputDeliveryCommand parses the dates. Blank dates are absent;
// itemDeliveryDates is either empty or has one entry per equipment item.
func NewInputDeliveryCommand(
	orderID kernel.UUID,
	vendorOrderNumber string,
	confirmedDeliveryDate string,
	itemDeliveryDates []string,
) (InputDeliveryCommand, error) {
	cmd := InputDeliveryCommand{
		vendorOrderNumber: vendorOrderNumber,
		guard:             guard.NewConstructorGuard(),
	}

	confirmed, confirmedErr := parseOptionalDate("confirmedDeliveryDate", confirmedDeliveryDate)
	itemDates, itemsErr := parseOptionalDates("itemDeliveryDates", itemDeliveryDates)

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		confirmedErr,
		itemsErr,
	); err != nil {
		return InputDeliveryCommand{}, err
	}

	cmd.confirmedDeliveryDate = confirmed
	cmd.itemDeliveryDates = itemDates
	return cmd, nil
}

func (c InputDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrInputDeliveryCommandIsNotConstructed)
}

func (c InputDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c InputDeliveryCommand) VendorOrderNumber() string {
	return c.vendorOrderNumber
}

func (c InputDeliveryCommand) ConfirmedDeliveryDate() kernel.Date {
	return c.confirmedDeliveryDate
}

func (c InputDeliveryCommand) ItemDeliveryDates() []kernel.Date {
	return append([]kernel.Date(nil), c.itemDeliveryDates...)
}
