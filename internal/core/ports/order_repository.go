// Package ports defines the contracts between the order core and its
// infrastructure: persistence, the price table, messaging and the unit of work.
package ports

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their equipment items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and replaces its
	// equipment items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the surrounding
	// transaction ends, so concurrent writes to one order are serialized.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDeliveryTracked retrieves every non-cancelled order on the
	// delivery board, locked for update.
	GetAllDeliveryTracked(ctx context.Context) ([]*order.Order, error)
}
