package commands

import (
	"context"

	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/core/ports"
)

// ImportPriceTableCommandHandler parses, validates and stores a price table,
// then drops the cached catalog so the next quote sees the new prices.
type ImportPriceTableCommandHandler struct {
	uowFactory PriceUoWFactory
	reader     ports.PriceTableReader
	catalogs   ports.PriceCatalogLoader
}

func NewImportPriceTableCommandHandler(
	uowFactory PriceUoWFactory,
	reader ports.PriceTableReader,
	catalogs ports.PriceCatalogLoader,
) ImportPriceTableCommandHandler {
	return ImportPriceTableCommandHandler{
		uowFactory: uowFactory,
		reader:     reader,
		catalogs:   catalogs,
	}
}

// Handle returns the number of imported entries.
func (h *ImportPriceTableCommandHandler) Handle(ctx context.Context, cmd ImportPriceTableCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	entries, err := h.reader.Read(ctx, cmd.Content())
	if err != nil {
		return 0, err
	}
	if len(entries) == 0 {
		return 0, ErrPriceTableIsEmpty
	}

	// Duplicate rows are rejected before anything is written.
	if _, err = pricing.NewCatalog(entries); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PriceRepository().ReplaceAll(ctx, entries); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.catalogs.Reset()
	return len(entries), nil
}
