package commands

import (
	"context"

	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/order"
	"hvacops/internal/core/domain/services"
	"hvacops/internal/core/ports"
)

// InputQuoteCommandHandler prices the quote and stores the resulting items.
type InputQuoteCommandHandler struct {
	mutator  orderMutator
	catalogs ports.PriceCatalogLoader
	builder  services.QuoteBuilder
}

func NewInputQuoteCommandHandler(
	uowFactory OrderUoWFactory,
	catalogs ports.PriceCatalogLoader,
	clock kernel.Clock,
) InputQuoteCommandHandler {
	return InputQuoteCommandHandler{
		mutator:  newOrderMutator(uowFactory, clock),
		catalogs: catalogs,
		builder:  services.NewQuoteBuilder(),
	}
}

// Handle always consults the shared price catalog: a line's own price
// overrides the table price but SET models still expand into components.
func (h *InputQuoteCommandHandler) Handle(ctx context.Context, cmd InputQuoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	catalog, err := h.catalogs.Acquire(ctx)
	if err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, today kernel.Date) error {
		items, buildErr := h.builder.Build(catalog, o.Affiliate(), cmd.Lines())
		if buildErr != nil {
			return buildErr
		}
		return o.InputQuote(items, today)
	})
}
