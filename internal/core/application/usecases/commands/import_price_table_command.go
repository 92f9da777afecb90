package commands

import (
	"errors"

	"hvacops/internal/pkg/errs"
	"hvacops/internal/pkg/guard"
)

var (
	ErrImportPriceTableCommandIsNotConstructed = errors.New(
		"ImportPriceTableCommand must be created via NewImportPriceTableCommand constructor",
	)
	ErrPriceTableIsEmpty = errs.NewValueIsRequiredError("priceTable")
)

// ImportPriceTableCommand replaces the price table with an uploaded sheet.
type ImportPriceTableCommand struct { //nolint:recvcheck //using for validation
	content []byte

	guard guard.ConstructorGuard
}

func NewImportPriceTableCommand(content []byte) (ImportPriceTableCommand, error) {
	if len(content) == 0 {
		return ImportPriceTableCommand{}, ErrPriceTableIsEmpty
	}

	return ImportPriceTableCommand{
		content: content,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ImportPriceTableCommand) Validate() error {
	return c.guard.Validate(ErrImportPriceTableCommandIsNotConstructed)
}

func (c ImportPriceTableCommand) Content() []byte {
	return c.content
}
