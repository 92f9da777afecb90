package commands

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// OrderStageCommandHandler applies the single-order stage inputs: installation
// dates, requested delivery date changes and the id-only actions. Each call
// is one transaction holding the order row lock.
type OrderStageCommandHandler struct {
	mutator orderMutator
}

func NewOrderStageCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) OrderStageCommandHandler {
	return OrderStageCommandHandler{
		mutator: newOrderMutator(uowFactory, clock),
	}
}

func (h *OrderStageCommandHandler) HandleScheduleInstallation(ctx context.Context, cmd ScheduleInstallationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, _ kernel.Date) error {
		return o.ScheduleInstallation(cmd.Date())
	})
}

func (h *OrderStageCommandHandler) HandleCompleteInstallation(ctx context.Context, cmd CompleteInstallationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, _ kernel.Date) error {
		return o.CompleteInstallation(cmd.Date())
	})
}

func (h *OrderStageCommandHandler) HandleChangeRequestedDeliveryDate(
	ctx context.Context,
	cmd ChangeRequestedDeliveryDateCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, today kernel.Date) error {
		return o.ChangeRequestedDeliveryDate(cmd.Date(), today)
	})
}

func (h *OrderStageCommandHandler) HandleAction(ctx context.Context, cmd OrderActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, today kernel.Date) error {
		switch cmd.Action() {
		case ActionSettle:
			return o.Settle()
		case ActionCancel:
			return o.Cancel()
		default:
			return o.EnableDeliveryTracking(today)
		}
	})
}
