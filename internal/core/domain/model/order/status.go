package order

import (
	"fmt"

	"hvacops/internal/pkg/errs"
)

// Status is the persisted lifecycle flag of an order.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Active covers every stage from intake to settlement.
	Active

	// Cancelled is terminal and reachable from Active.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Active:    "active",
		Cancelled: "cancelled",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Active && s != Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateMutable fails for statuses whose order can no longer be edited.
func (s Status) ValidateMutable() error {
	if s != Active {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to modify", s.String()),
		)
	}
	return nil
}

// Cancel returns the status after cancellation.
func (s Status) Cancel() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}

// SettlementStatus records whether the order went through the monthly close-out.
type SettlementStatus int

const (
	Unsettled SettlementStatus = iota
	Settled
)

func (s SettlementStatus) String() string {
	if s == Settled {
		return "settled"
	}
	return "unsettled"
}

// Settle returns Settled, or an error when the order already is.
func (s SettlementStatus) Settle() (SettlementStatus, error) {
	if s == Settled {
		return s, errs.NewValueIsInvalidErrorWithCause(
			"settlement status is invalid",
			fmt.Errorf("%s is not a valid settlement status to settle", s.String()),
		)
	}
	return Settled, nil
}
