package commands

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
)

// RefreshDeliveryStatusesCommandHandler rewrites stale cached delivery
// statuses in one transaction and reports how many orders changed.
type RefreshDeliveryStatusesCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func NewRefreshDeliveryStatusesCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) RefreshDeliveryStatusesCommandHandler {
	return RefreshDeliveryStatusesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RefreshDeliveryStatusesCommandHandler) Handle(ctx context.Context, cmd RefreshDeliveryStatusesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()
	orders, err := ordersRepo.GetAllDeliveryTracked(ctx)
	if err != nil {
		return 0, err
	}

	today := h.clock.Today()
	changed := 0

	for _, o := range orders {
		if !o.RefreshDeliveryStatus(today) {
			continue
		}

		if err = ordersRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
