// Package postgres provides the GORM implementation of the Unit of Work
// pattern for orders and the price table.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	if err != nil {
//	    return err
//	}
//	// mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Every order written through the unit of work is tracked. After a successful
// commit the status changes of tracked orders are published; a rollback
// discards them.
//
// Each UnitOfWork instance owns at most one transaction; goroutines must not
// share an instance.
package postgres

import (
	"context"
	"time"

	"hvacops/internal/adapters/out/postgres/orderrepo"
	"hvacops/internal/adapters/out/postgres/pricerepo"
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// statusSource is implemented by aggregates that announce status changes.
type statusSource interface {
	PendingStatusChange(at time.Time) (order.StatusChanged, bool)
	MarkStatusPublished()
}

// GormUnitOfWorkFactory hands out one GormUnitOfWork per command.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *zap.Logger
}

// NewGormUnitOfWorkFactory creates a factory over an open connection pool.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    return err
//	}
//	factory := NewGormUnitOfWorkFactory(db, rabbitmq.NopPublisher{}, zap.NewNop())
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "unit_of_work")),
	}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork wraps one GORM transaction. Repositories obtained after
// Begin run inside it; repositories obtained before Begin use the pool
// directly.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *zap.Logger
	trackedAggregates []trackedAggregate
}

// Begin opens the transaction. A second Begin while one is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit ends the transaction and then publishes the status changes of the
// orders written in it. It returns gorm.ErrInvalidTransaction when none is
// open, which makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return err
	}

	uow.publishStatusChanges(ctx, tracked)
	return nil
}

// Rollback discards the transaction, or returns gorm.ErrInvalidTransaction
// when none is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PriceRepository returns a price repository bound to the current transaction.
func (uow *GormUnitOfWork) PriceRepository() ports.PriceRepository {
	return pricerepo.NewGormPriceRepository(uow.conn())
}

// TrackAggregate is called by repositories for every aggregate they write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// publishStatusChanges logs failures instead of returning them: the write is
// already committed. An aggregate tracked twice is announced once.
func (uow *GormUnitOfWork) publishStatusChanges(ctx context.Context, tracked []trackedAggregate) {
	now := time.Now().UTC()
	seen := make(map[kernel.UUID]struct{}, len(tracked))
	for _, t := range tracked {
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}

		source, ok := t.Aggregate.(statusSource)
		if !ok {
			continue
		}

		event, changed := source.PendingStatusChange(now)
		if !changed {
			continue
		}
		source.MarkStatusPublished()

		if err := uow.publisher.PublishStatusChanged(ctx, event); err != nil {
			uow.logger.Warn("Failed to publish order status change",
				zap.String("orderID", event.OrderID.String()),
				zap.String("kanban", string(event.Current.Kanban)),
				zap.Error(err),
			)
		}
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &pricerepo.PriceEntryDTO{})
}
