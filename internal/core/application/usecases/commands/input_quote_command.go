package commands

import (
	"errors"
	"strings"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/services"
	"hvacops/internal/pkg/errs"
	"hvacops/internal/pkg/guard"
)

var (
	ErrInputQuoteCommandIsNotConstructed = errors.New(
		"InputQuoteCommand must be created via NewInputQuoteCommand constructor",
	)
	ErrQuoteLinesAreRequired = errs.NewValueIsRequiredError("quoteLines")
)

// InputQuoteCommand replaces the equipment on an order with a quote.
// Lines without a unit price are priced from the price table.
type InputQuoteCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []services.QuoteLine

	guard guard.ConstructorGuard
}

func NewInputQuoteCommand(orderID kernel.UUID, lines []services.QuoteLine) (InputQuoteCommand, error) {
	cmd := InputQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setOrderID(&cmd.orderID, orderID),
		cmd.setLines(lines),
	); err != nil {
		return InputQuoteCommand{}, err
	}

	return cmd, nil
}

func (c InputQuoteCommand) Validate() error {
	return c.guard.Validate(ErrInputQuoteCommandIsNotConstructed)
}

func (c InputQuoteCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns a copy of the quote lines.
func (c InputQuoteCommand) Lines() []services.QuoteLine {
	return append([]services.QuoteLine(nil), c.lines...)
}

func (c *InputQuoteCommand) setLines(lines []services.QuoteLine) error {
	if len(lines) == 0 {
		return ErrQuoteLinesAreRequired
	}

	c.lines = make([]services.QuoteLine, 0, len(lines))
	for _, line := range lines {
		line.ModelName = strings.TrimSpace(line.ModelName)
		if line.ModelName == "" {
			return errs.NewValueIsRequiredError("modelName")
		}
		c.lines = append(c.lines, line)
	}
	return nil
}

// setOrderID is shared by the single-order commands.
func setOrderID(dst *kernel.UUID, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	*dst = orderID
	return nil
}
