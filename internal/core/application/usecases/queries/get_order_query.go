package queries

import (
	"errors"
	"time"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/pkg/errs"
	"hvacops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its derived statuses.
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery parses the order id as received from a client.
func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return GetOrderQuery{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return GetOrderQuery{orderID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order detail read model. DeliveryStatus is nil
// for orders outside delivery tracking.
type GetOrderQueryResponse struct {
	ID                    kernel.UUID
	Affiliate             string
	SiteName              string
	CreatedAt             time.Time
	KanbanStatus          order.KanbanStatus
	DeliveryStatus        *order.DeliveryStatus
	AlertType             order.AlertType
	VendorOrderNumber     string
	RequestedDeliveryDate kernel.Date
	ConfirmedDeliveryDate kernel.Date
	InstallScheduleDate   kernel.Date
	InstallCompleteDate   kernel.Date
	Items                 []ItemView
	TotalAmount           decimal.Decimal
}
