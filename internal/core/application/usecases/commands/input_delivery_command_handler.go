package commands

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// InputDeliveryCommandHandler applies delivery input and refreshes the
// cached delivery status in the same write.
type InputDeliveryCommandHandler struct {
	mutator orderMutator
}

func NewInputDeliveryCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) InputDeliveryCommandHandler {
	return InputDeliveryCommandHandler{
		mutator: newOrderMutator(uowFactory, clock),
	}
}

func (h *InputDeliveryCommandHandler) Handle(ctx context.Context, cmd InputDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, today kernel.Date) error {
		return o.InputDelivery(cmd.VendorOrderNumber(), cmd.ConfirmedDeliveryDate(), cmd.ItemDeliveryDates(), today)
	})
}
