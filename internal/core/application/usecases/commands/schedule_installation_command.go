package commands

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/guard"
)

var ErrScheduleInstallationCommandIsNotConstructed = errors.New(
	"ScheduleInstallationCommand must be created via NewScheduleInstallationCommand constructor",
)

// ScheduleInstallationCommand books the installation crew for a date and
// moves the order to in-progress.
type ScheduleInstallationCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	date    kernel.Date

	guard guard.ConstructorGuard
}

func NewScheduleInstallationCommand(orderID kernel.UUID, date string) (ScheduleInstallationCommand, error) {
	cmd := ScheduleInstallationCommand{
		guard: guard.NewConstructorGuard(),
	}

	d, dateErr := parseRequiredDate("installScheduleDate", date)
	if err := errors.Join(setOrderID(&cmd.orderID, orderID), dateErr); err != nil {
		return ScheduleInstallationCommand{}, err
	}

	cmd.date = d
	return cmd, nil
}

func (c ScheduleInstallationCommand) Validate() error {
	return c.guard.Validate(ErrScheduleInstallationCommandIsNotConstructed)
}

func (c ScheduleInstallationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ScheduleInstallationCommand) Date() kernel.Date {
	return c.date
}
