package order

import (
	"fmt"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"
)

// DeliveryStatus is the derived delivery stage of a tracked order.
type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "pending"
	DeliveryInTransit DeliveryStatus = "in-transit"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// ParseDeliveryStatus reads a cached value back from storage.
func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	switch ds := DeliveryStatus(s); ds {
	case DeliveryPending, DeliveryInTransit, DeliveryDelivered:
		return ds, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("delivery status is invalid", fmt.Errorf("%q is not a valid delivery status", s))
}

// ComputeDeliveryStatus derives the delivery stage as of today.
//
// Delivered requires every equipment item to have arrived: one missing
// component of a SET keeps the whole order out of delivered. In transit needs
// both a vendor order number and a confirmed delivery date.
func ComputeDeliveryStatus(f Fields, today kernel.Date) DeliveryStatus {
	if allItemsArrived(f.Items, today) {
		return DeliveryDelivered
	}

	if strings.TrimSpace(f.VendorOrderNumber) != "" && f.ConfirmedDeliveryDate.IsPresent() {
		return DeliveryInTransit
	}

	return DeliveryPending
}

func allItemsArrived(items []ItemFields, today kernel.Date) bool {
	if len(items) == 0 || !today.IsPresent() {
		return false
	}

	for _, item := range items {
		if !item.ConfirmedDeliveryDate.IsPresent() || item.ConfirmedDeliveryDate.After(today) {
			return false
		}
	}
	return true
}
