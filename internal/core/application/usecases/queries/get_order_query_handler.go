package queries

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and evaluates its statuses against
// the clock's date.
type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, clock kernel.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: clock}
}

// Handle returns an ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := loadOrderRecords(ctx, h.db, "WHERE o.id = ?", query.OrderID().Bytes())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	today := h.clock.Today()
	r := records[0]

	return &GetOrderQueryResponse{
		ID:                    r.ID,
		Affiliate:             r.Affiliate,
		SiteName:              r.SiteName,
		CreatedAt:             r.CreatedAt,
		KanbanStatus:          order.ComputeKanbanStatus(r.Fields),
		DeliveryStatus:        r.deliveryStatus(today),
		AlertType:             r.alertType(today),
		VendorOrderNumber:     r.VendorOrderNumber,
		RequestedDeliveryDate: r.Fields.RequestedDeliveryDate,
		ConfirmedDeliveryDate: r.Fields.ConfirmedDeliveryDate,
		InstallScheduleDate:   r.Fields.InstallScheduleDate,
		InstallCompleteDate:   r.Fields.InstallCompleteDate,
		Items:                 r.Items,
		TotalAmount:           r.TotalAmount,
	}, nil
}
