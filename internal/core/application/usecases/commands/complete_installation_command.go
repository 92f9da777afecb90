package commands

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/guard"
)

var ErrCompleteInstallationCommandIsNotConstructed = errors.New(
	"CompleteInstallationCommand must be created via NewCompleteInstallationCommand constructor",
)

// CompleteInstallationCommand records the day the installation finished.
type CompleteInstallationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

func NewCompleteInstallationCommand(orderID kernel.UUID, date string) (CompleteInstallationCommand, error) {
	cmd := CompleteInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	d, dateErr := parseRequiredDate("installCompleteDate", date)
	if err := errors.Join(setOrderID(&cmd.orderID, orderID), dateErr); err != nil {
		return CompleteInstallationCommand{}, err
	}

	cmd.date = d
	return cmd, nil
}

func (c CompleteInstallationCommand) Validate() error {
	return c.guard.Validate(ErrCompleteInstallationCommandIsNotConstructed)
}

func (c CompleteInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteInstallationCommand) Date() kernel.Date {
	return c.date
}
