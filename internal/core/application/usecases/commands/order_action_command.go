package commands

import (
	"errors"
	"fmt"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"
	"hvacops/internal/pkg/guard"
)

var ErrOrderActionCommandIsNotConstructed = errors.New(
	"OrderActionCommand must be created via NewOrderActionCommand constructor",
)

// OrderAction is a state change that needs nothing but the order id.
type OrderAction string

const (
	ActionSettle        OrderAction = "settle"
	ActionCancel        OrderAction = "cancel"
	ActionTrackDelivery OrderAction = "track-delivery"
)

// OrderActionCommand settles, cancels or starts delivery tracking of an order.
//
// Example:
//
//	cmd, err := NewOrderActionCommand(orderID, ActionSettle)
//	if err != nil {
//	    return err
//	}
//	return handler.Handle(ctx, cmd)
type OrderActionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewOrderActionCommand(orderID kernel.UUID, action OrderAction) (OrderActionCommand, error) {
	cmd := OrderActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		cmd.setAction(action),
	); err != nil {
		return OrderActionCommand{}, err
	}

	return cmd, nil
}

func (c OrderActionCommand) Validate() error {
	return c.guard.Validate(ErrOrderActionCommandIsNotConstructed)
}

func (c OrderActionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OrderActionCommand) Action() OrderAction {
	return c.action
}

func (c *OrderActionCommand) setAction(action OrderAction) error {
	switch action {
	case ActionSettle, ActionCancel, ActionTrackDelivery:
		c.action = action
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown order action %q", action))
	}
}
