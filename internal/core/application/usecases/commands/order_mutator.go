package commands

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// mutation changes one locked order. today is the business date of the write.
type mutation func(o *order.Order, today kernel.Date) error

// orderMutator runs a mutation in its own transaction with the order row
// locked. The unit of work announces the status change on commit.
type orderMutator struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

func newOrderMutator(uowFactory OrderUoWFactory, clock kernel.Clock) orderMutator {
	return orderMutator{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (m orderMutator) mutate(ctx context.Context, id kernel.UUID, fn mutation) error {
	uow := m.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, id)
	if err != nil {
		return err
	}

	if err = fn(aggregate, m.clock.Today()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
