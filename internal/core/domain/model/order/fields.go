package order

import "hvacops/internal/core/domain/model/kernel"

// Fields is the snapshot of an order that the status rules read. Absent dates
// mean "not yet known".
type Fields struct {
	Status                Status
	SettlementStatus      SettlementStatus
	InstallCompleteDate   kernel.Date
	InstallScheduleDate   kernel.Date
	VendorOrderNumber     string
	ConfirmedDeliveryDate kernel.Date
	RequestedDeliveryDate kernel.Date
	Items                 []ItemFields
}

// ItemFields is the part of an equipment item the delivery rule reads.
type ItemFields struct {
	ConfirmedDeliveryDate kernel.Date
}
