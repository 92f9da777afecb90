package commands

import (
	"errors"

	"hvacops/internal/pkg/guard"
)

var ErrRefreshDeliveryStatusesCommandIsNotConstructed = errors.New(
	"RefreshDeliveryStatusesCommand must be created via NewRefreshDeliveryStatusesCommand constructor",
)

// RefreshDeliveryStatusesCommand recomputes the cached delivery status of
// every tracked order. Orders become delivered by the passage of time, so
// this runs once a day.
type RefreshDeliveryStatusesCommand struct {
	guard guard.ConstructorGuard
}

func NewRefreshDeliveryStatusesCommand() RefreshDeliveryStatusesCommand {
	return RefreshDeliveryStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *RefreshDeliveryStatusesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDeliveryStatusesCommandIsNotConstructed)
}
