package commands_test

import (
	"testing"

	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewInputDeliveryCommand(t *testing.T) {
	t.Run("should parse order and item dates", func(t *testing.T) {
		cmd, err := commands.NewInputDeliveryCommand(kernel.NewUUID(), "SO-1", "2025-03-12", []string{"2025-03-12", ""})

		require.NoError(t, err)
		assert.Equal(t, "2025-03-12", cmd.ConfirmedDeliveryDate().String())
		require.Len(t, cmd.ItemDeliveryDates(), 2)
		assert.False(t, cmd.ItemDeliveryDates()[1].IsPresent())
	})

	t.Run("should reject unparsable dates", func(t *testing.T) {
		_, err := commands.NewInputDeliveryCommand(kernel.NewUUID(), "SO-1", "2025-13-40", []string{"soon"})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestInputDeliveryCommandHandler_Handle(t *testing.T) {
	t.Run("should move tracked order in transit", func(t *testing.T) {
		ctx := t.Context()
		o := newTrackedOrder(t)
		cmd, err := commands.NewInputDeliveryCommand(o.ID(), "SO-77", "2025-03-12", nil)
		require.NoError(t, err)

		factory, uow, repo := expectOrderWrite(t, o)

		h := commands.NewInputDeliveryCommandHandler(factory, kernel.FixedClock(testToday))
		require.NoError(t, h.Handle(ctx, cmd))

		status, tracked := o.DeliveryStatus(testToday)
		assert.True(t, tracked)
		assert.Equal(t, order.DeliveryInTransit, status)
		assert.Equal(t, order.DeliveryInTransit, *o.CachedDeliveryStatus())
		event := pendingChange(t, o)
		assert.Equal(t, order.DeliveryPending, *event.Previous.Delivery)
		assert.Equal(t, order.DeliveryInTransit, *event.Current.Delivery)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should not update a cancelled order", func(t *testing.T) {
		ctx := t.Context()
		o := newTrackedOrder(t)
		require.NoError(t, o.Cancel())
		cmd, err := commands.NewInputDeliveryCommand(o.ID(), "SO-77", "2025-03-12", nil)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewInputDeliveryCommandHandler(factory, kernel.FixedClock(testToday))
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", mock.Anything)
	})

	t.Run("should return not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		cmd, err := commands.NewInputDeliveryCommand(id, "SO-77", "", nil)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(repo).Once()
		repo.On("GetForUpdate", ctx, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewInputDeliveryCommandHandler(factory, kernel.FixedClock(testToday))
		err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertExpectations(t)
	})
}
