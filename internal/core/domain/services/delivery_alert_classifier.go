package services

import (
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
)

// AlertSummary counts orders per alert bucket.
type AlertSummary struct {
	Delayed  int
	Today    int
	Tomorrow int
	None     int
}

// Total is the number of classified orders.
func (s AlertSummary) Total() int {
	return s.Delayed + s.Today + s.Tomorrow + s.None
}

// Count returns the bucket size for an alert type.
func (s AlertSummary) Count(a order.AlertType) int {
	switch a {
	case order.AlertDelayed:
		return s.Delayed
	case order.AlertToday:
		return s.Today
	case order.AlertTomorrow:
		return s.Tomorrow
	default:
		return s.None
	}
}

func (s *AlertSummary) add(a order.AlertType) {
	switch a {
	case order.AlertDelayed:
		s.Delayed++
	case order.AlertToday:
		s.Today++
	case order.AlertTomorrow:
		s.Tomorrow++
	default:
		s.None++
	}
}

// DeliveryAlertClassifier applies GetAlertType with one reference date to a
// collection of orders. It never mutates its input.
type DeliveryAlertClassifier struct{}

func NewDeliveryAlertClassifier() DeliveryAlertClassifier {
	return DeliveryAlertClassifier{}
}

// Classify returns the alert type of each order, index-aligned with fields.
func (DeliveryAlertClassifier) Classify(fields []order.Fields, today kernel.Date) []order.AlertType {
	alerts := make([]order.AlertType, len(fields))
	for i, f := range fields {
		alerts[i] = order.GetAlertType(f, today)
	}
	return alerts
}

// Summarize partitions the orders into alert buckets. The result does not
// depend on input order.
func (c DeliveryAlertClassifier) Summarize(fields []order.Fields, today kernel.Date) AlertSummary {
	var summary AlertSummary
	for _, a := range c.Classify(fields, today) {
		summary.add(a)
	}
	return summary
}
