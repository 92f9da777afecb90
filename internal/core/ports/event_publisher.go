package ports

import (
	"context"

	"hvacops/internal/core/domain/model/order"
)

// EventPublisher delivers order events to other systems. Publishing happens
// after commit; a failed publish does not undo the write.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event order.StatusChanged) error
}
