package commands

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/guard"
)

var ErrChangeRequestedDeliveryDateCommandIsNotConstructed = errors.New(
	"ChangeRequestedDeliveryDateCommand must be created via NewChangeRequestedDeliveryDateCommand constructor",
)

// ChangeRequestedDeliveryDateCommand moves or clears the delivery date the
// customer asked for.
type ChangeRequestedDeliveryDateCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

func NewChangeRequestedDeliveryDateCommand(orderID kernel.UUID, date string) (ChangeRequestedDeliveryDateCommand, error) {
	cmd := ChangeRequestedDeliveryDateCommand{
		guard: guard.NewConstructorGuard(),
	}

	d, dateErr := parseOptionalDate("requestedDeliveryDate", date)
	if err := errors.Join(setOrderID(&cmd.orderID, orderID), dateErr); err != nil {
		return ChangeRequestedDeliveryDateCommand{}, err
	}

	cmd.date = d
	return cmd, nil
}

func (c ChangeRequestedDeliveryDateCommand) Validate() error {
	return c.guard.Validate(ErrChangeRequestedDeliveryDateCommandIsNotConstructed)
}

func (c ChangeRequestedDeliveryDateCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeRequestedDeliveryDateCommand) Date() kernel.Date {
	return c.date
}
