package commands_test

import (
	"errors"
	"testing"

	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/core/domain/services"
	"hvacops/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputQuoteCommand(t *testing.T) {
	t.Run("should require at least one line", func(t *testing.T) {
		_, err := commands.NewInputQuoteCommand(kernel.NewUUID(), nil)

		assert.ErrorIs(t, err, commands.ErrQuoteLinesAreRequired)
	})

	t.Run("should require model names", func(t *testing.T) {
		_, err := commands.NewInputQuoteCommand(kernel.NewUUID(), []services.QuoteLine{{ModelName: " ", Quantity: 1}})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestInputQuoteCommandHandler_Handle(t *testing.T) {
	t.Run("should price lines from the shared catalog", func(t *testing.T) {
		ctx := t.Context()
		o := newTrackedOrder(t)
		entry, err := pricing.NewPriceEntry(kernel.NewUUID(), "", "AR07", nil, decimal.NewFromInt(700000), decimal.Zero)
		require.NoError(t, err)
		catalog, err := pricing.NewCatalog([]*pricing.PriceEntry{entry})
		require.NoError(t, err)

		cmd, err := commands.NewInputQuoteCommand(o.ID(), []services.QuoteLine{{ModelName: "AR07", Quantity: 2}})
		require.NoError(t, err)

		catalogs := new(MockCatalogLoader)
		catalogs.On("Acquire", ctx).Return(catalog, nil).Once()
		factory, uow, repo := expectOrderWrite(t, o)

		h := commands.NewInputQuoteCommandHandler(factory, catalogs, kernel.FixedClock(testToday))
		require.NoError(t, h.Handle(ctx, cmd))

		require.Len(t, o.Items(), 1)
		assert.True(t, decimal.NewFromInt(1400000).Equal(o.TotalAmount()))
		catalogs.AssertExpectations(t)
		repo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should expand a priced SET line into its components", func(t *testing.T) {
		ctx := t.Context()
		o := newTrackedOrder(t)
		entry, err := pricing.NewPriceEntry(kernel.NewUUID(), "", "AR-SET", []pricing.Component{
			{Name: "indoor", ModelName: "AR07-IN"},
			{Name: "outdoor", ModelName: "AR07-OUT"},
		}, decimal.NewFromInt(1200000), decimal.Zero)
		require.NoError(t, err)
		catalog, err := pricing.NewCatalog([]*pricing.PriceEntry{entry})
		require.NoError(t, err)

		price := decimal.NewFromInt(1000000)
		cmd, err := commands.NewInputQuoteCommand(o.ID(), []services.QuoteLine{{ModelName: "AR-SET", Quantity: 1, UnitPrice: &price}})
		require.NoError(t, err)

		catalogs := new(MockCatalogLoader)
		catalogs.On("Acquire", ctx).Return(catalog, nil).Once()
		factory, _, repo := expectOrderWrite(t, o)

		h := commands.NewInputQuoteCommandHandler(factory, catalogs, kernel.FixedClock(testToday))
		require.NoError(t, h.Handle(ctx, cmd))

		items := o.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "AR07-IN", items[0].ModelName())
		assert.Equal(t, "AR07-OUT", items[1].ModelName())
		assert.True(t, price.Equal(o.TotalAmount()))
		catalogs.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("should keep an own-priced model missing from the catalog", func(t *testing.T) {
		ctx := t.Context()
		o := newTrackedOrder(t)
		catalog, err := pricing.NewCatalog(nil)
		require.NoError(t, err)
		price := decimal.NewFromInt(50000)
		cmd, err := commands.NewInputQuoteCommand(o.ID(), []services.QuoteLine{{ModelName: "FILTER", Quantity: 3, UnitPrice: &price}})
		require.NoError(t, err)

		catalogs := new(MockCatalogLoader)
		catalogs.On("Acquire", ctx).Return(catalog, nil).Once()
		factory, _, repo := expectOrderWrite(t, o)

		h := commands.NewInputQuoteCommandHandler(factory, catalogs, kernel.FixedClock(testToday))
		require.NoError(t, h.Handle(ctx, cmd))

		require.Len(t, o.Items(), 1)
		assert.True(t, decimal.NewFromInt(150000).Equal(o.TotalAmount()))
		repo.AssertExpectations(t)
	})

	t.Run("should fail before opening a transaction when the catalog fails", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewInputQuoteCommand(kernel.NewUUID(), []services.QuoteLine{{ModelName: "AR07", Quantity: 1}})
		require.NoError(t, err)

		catalogs := new(MockCatalogLoader)
		catalogs.On("Acquire", ctx).Return(nil, errors.New("db down")).Once()
		factory := new(MockOrderUoWFactory)

		h := commands.NewInputQuoteCommandHandler(factory, catalogs, kernel.FixedClock(testToday))
		require.EqualError(t, h.Handle(ctx, cmd), "db down")
		factory.AssertNotCalled(t, "Create")
	})
}
