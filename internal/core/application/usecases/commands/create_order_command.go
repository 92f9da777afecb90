package commands

import (
	"errors"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/pkg/errs"
	"hvacops/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrAffiliateIsRequired = errs.NewValueIsRequiredError("affiliate")
)

// CreateOrderCommand registers a new installation order at intake.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Samsung Welstory", "Pangyo campus B1", "2025-03-14", true)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.UUID
	affiliate             string
	siteName              string
	requestedDeliveryDate kernel.Date
	trackDelivery         bool

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the intake form. A blank requested
// delivery date is allowed; an unparsable one is not.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	affiliate, siteName, requestedDeliveryDate string,
	trackDelivery bool,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		siteName:      strings.TrimSpace(siteName),
		trackDelivery: trackDelivery,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setAffiliate(affiliate),
		orderCommand.setRequestedDeliveryDate(requestedDeliveryDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Affiliate() string {
	return c.affiliate
}

func (c CreateOrderCommand) SiteName() string {
	return c.siteName
}

func (c CreateOrderCommand) RequestedDeliveryDate() kernel.Date {
	return c.requestedDeliveryDate
}

func (c CreateOrderCommand) TrackDelivery() bool {
	return c.trackDelivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setAffiliate(affiliate string) error {
	affiliate = strings.TrimSpace(affiliate)
	if affiliate == "" {
		return ErrAffiliateIsRequired
	}

	c.affiliate = affiliate
	return nil
}

func (c *CreateOrderCommand) setRequestedDeliveryDate(s string) error {
	d, err := parseOptionalDate("requestedDeliveryDate", s)
	if err != nil {
		return err
	}

	c.requestedDeliveryDate = d
	return nil
}
