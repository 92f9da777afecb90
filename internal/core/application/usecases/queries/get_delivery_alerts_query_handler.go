package queries

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"

	"gorm.io/gorm"
)

type GetDeliveryAlertsQueryHandler struct {
	db         *gorm.DB
	clock      kernel.Clock
	classifier services.DeliveryAlertClassifier
}

func NewGetDeliveryAlertsQueryHandler(db *gorm.DB, clock kernel.Clock) GetDeliveryAlertsQueryHandler {
	return GetDeliveryAlertsQueryHandler{
		db:         db,
		clock:      clock,
		classifier: services.NewDeliveryAlertClassifier(),
	}
}

// Handle classifies every tracked order still in the workflow (active and
// not settled) against one date. The cached delivery_status column only
// selects the rows; statuses are recomputed.
func (h GetDeliveryAlertsQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryAlertsQuery,
) (*GetDeliveryAlertsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := loadOrderRecords(ctx, h.db,
		"WHERE o.delivery_status IS NOT NULL AND o.status = ? AND o.settlement_status = ?",
		int(order.Active), int(order.Unsettled))
	if err != nil {
		return nil, err
	}

	today := h.clock.Today()
	fields := make([]order.Fields, len(records))
	for i, r := range records {
		fields[i] = r.Fields
	}
	alerts := h.classifier.Classify(fields, today)

	response := &GetDeliveryAlertsQueryResponse{
		Today:   today,
		Orders:  make([]DeliveryAlert, len(records)),
		Summary: h.classifier.Summarize(fields, today),
	}
	for i, r := range records {
		response.Orders[i] = DeliveryAlert{
			ID:                r.ID,
			Affiliate:         r.Affiliate,
			SiteName:          r.SiteName,
			VendorOrderNumber: r.VendorOrderNumber,
			DeliveryStatus:    order.ComputeDeliveryStatus(r.Fields, today),
			AlertType:         alerts[i],
			ReferenceDate:     order.AlertReferenceDate(r.Fields),
		}
	}

	return response, nil
}
