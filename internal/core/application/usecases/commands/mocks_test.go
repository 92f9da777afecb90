package commands_test

import (
	"context"
	"testing"
	"time"

	"hvacops/internal/core/application/usecases/commands"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testToday = kernel.NewDate(2025, time.March, 10)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllDeliveryTracked(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPriceRepository struct{ mock.Mock }

func (m *MockPriceRepository) ReplaceAll(ctx context.Context, entries []*pricing.PriceEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockPriceRepository) GetAll(ctx context.Context) ([]*pricing.PriceEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.PriceEntry), args.Error(1)
}

type MockPriceUoW struct{ mock.Mock }

func (m *MockPriceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPriceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPriceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPriceUoW) PriceRepository() ports.PriceRepository {
	args := m.Called()
	return args.Get(0).(ports.PriceRepository)
}

type MockPriceUoWFactory struct{ mock.Mock }

func (m *MockPriceUoWFactory) Create() commands.PriceUoW {
	args := m.Called()
	return args.Get(0).(commands.PriceUoW)
}

type MockCatalogLoader struct{ mock.Mock }

func (m *MockCatalogLoader) Acquire(ctx context.Context) (*pricing.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Catalog), args.Error(1)
}

func (m *MockCatalogLoader) Reset() {
	m.Called()
}

type MockPriceTableReader struct{ mock.Mock }

func (m *MockPriceTableReader) Read(ctx context.Context, content []byte) ([]*pricing.PriceEntry, error) {
	args := m.Called(ctx, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.PriceEntry), args.Error(1)
}

// newTrackedOrder returns an active order on the delivery board whose
// intake was already announced.
func newTrackedOrder(t *testing.T) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "HQ", "Gangnam tower", testToday.AddDays(3), true, time.Now())
	require.NoError(t, err)
	o.MarkStatusPublished()
	return o
}

// pendingChange returns the status change the next commit will announce.
func pendingChange(t *testing.T, o *order.Order) order.StatusChanged {
	t.Helper()

	event, ok := o.PendingStatusChange(time.Now())
	require.True(t, ok, "order has no pending status change")
	return event
}

// expectOrderWrite wires a successful lock-mutate-update-commit sequence.
func expectOrderWrite(
	t *testing.T,
	o *order.Order,
) (*MockOrderUoWFactory, *MockOrderUoW, *MockOrderRepository) {
	t.Helper()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", mock.Anything).Return(nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	return factory, uow, repo
}
