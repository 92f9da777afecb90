package order

import (
	"time"

	"hvacops/internal/core/domain/model/kernel"
)

// Snapshot is the pair of derived statuses observed after a write.
type Snapshot struct {
	Kanban   KanbanStatus
	Delivery *DeliveryStatus
}

// Snapshot captures the current board stage and cached delivery status.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Kanban:   o.KanbanStatus(),
		Delivery: o.CachedDeliveryStatus(),
	}
}

// Equal compares two snapshots by value.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Kanban != other.Kanban {
		return false
	}
	if s.Delivery == nil || other.Delivery == nil {
		return s.Delivery == nil && other.Delivery == nil
	}
	return *s.Delivery == *other.Delivery
}

// StatusChanged is raised when a write moves an order to another kanban
// column or delivery stage.
type StatusChanged struct {
	OrderID    kernel.UUID
	Affiliate  string
	Previous   Snapshot
	Current    Snapshot
	OccurredAt time.Time
}

// NewStatusChanged returns the event for the transition, or false when
// nothing observable changed.
func NewStatusChanged(o *Order, previous Snapshot, at time.Time) (StatusChanged, bool) {
	current := o.Snapshot()
	if previous.Equal(current) {
		return StatusChanged{}, false
	}

	return StatusChanged{
		OrderID:    o.ID(),
		Affiliate:  o.Affiliate(),
		Previous:   previous,
		Current:    current,
		OccurredAt: at,
	}, true
}

// PendingStatusChange reports the transition since the last published
// snapshot. A new order reports its first column against an empty snapshot.
func (o *Order) PendingStatusChange(at time.Time) (StatusChanged, bool) {
	return NewStatusChanged(o, o.published, at)
}

// MarkStatusPublished makes the current snapshot the baseline of the next
// PendingStatusChange.
func (o *Order) MarkStatusPublished() {
	o.published = o.Snapshot()
}
