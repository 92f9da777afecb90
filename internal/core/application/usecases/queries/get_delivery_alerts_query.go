package queries

import (
	"errors"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"
	"hvacops/internal/pkg/guard"
)

var (
	ErrGetDeliveryAlertsQueryIsNotConstructed = errors.New(
		"GetDeliveryAlertsQuery must be created via NewGetDeliveryAlertsQuery constructor",
	)
)

// GetDeliveryAlertsQuery retrieves the delivery board of active, tracked
// orders with their alert buckets.
type GetDeliveryAlertsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryAlertsQuery() GetDeliveryAlertsQuery {
	return GetDeliveryAlertsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryAlertsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryAlertsQueryIsNotConstructed)
}

// DeliveryAlert is one tracked order with its urgency.
type DeliveryAlert struct {
	ID                kernel.UUID
	Affiliate         string
	SiteName          string
	VendorOrderNumber string
	DeliveryStatus    order.DeliveryStatus
	AlertType         order.AlertType
	ReferenceDate     kernel.Date
}

type GetDeliveryAlertsQueryResponse struct {
	Today   kernel.Date
	Orders  []DeliveryAlert
	Summary services.AlertSummary
}
