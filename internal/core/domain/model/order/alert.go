package order

import "hvacops/internal/core/domain/model/kernel"

// AlertType flags delivery urgency on the dashboard.
type AlertType string

const (
	AlertDelayed  AlertType = "delayed"
	AlertToday    AlertType = "today"
	AlertTomorrow AlertType = "tomorrow"
	AlertNone     AlertType = "none"
)

// AlertTypes lists the buckets in display order.
func AlertTypes() []AlertType {
	return []AlertType{AlertDelayed, AlertToday, AlertTomorrow, AlertNone}
}

// GetAlertType classifies delivery urgency. Delivered orders never alert.
// The reference date is the vendor-confirmed delivery date, falling back to
// the requested one.
func GetAlertType(f Fields, today kernel.Date) AlertType {
	if ComputeDeliveryStatus(f, today) == DeliveryDelivered {
		return AlertNone
	}

	due := AlertReferenceDate(f)
	switch {
	case !due.IsPresent() || !today.IsPresent():
		return AlertNone
	case due.Before(today):
		return AlertDelayed
	case due.Equal(today):
		return AlertToday
	case due.Equal(today.AddDays(1)):
		return AlertTomorrow
	default:
		return AlertNone
	}
}

// AlertReferenceDate is the delivery date GetAlertType compares with today.
func AlertReferenceDate(f Fields) kernel.Date {
	if f.ConfirmedDeliveryDate.IsPresent() {
		return f.ConfirmedDeliveryDate
	}
	return f.RequestedDeliveryDate
}
