package ports

import (
	"context"

	"hvacops/internal/core/domain/model/pricing"
)

// PriceRepository stores the price table.
type PriceRepository interface {
	// ReplaceAll swaps the entire price table for the given entries.
	ReplaceAll(ctx context.Context, entries []*pricing.PriceEntry) error

	// GetAll returns every entry of the price table.
	GetAll(ctx context.Context) ([]*pricing.PriceEntry, error)
}

// PriceCatalogLoader hands out the shared, lazily loaded price catalog.
// Reset drops the loaded catalog after the table changes.
type PriceCatalogLoader interface {
	Acquire(ctx context.Context) (*pricing.Catalog, error)
	Reset()
}

// PriceTableReader parses an uploaded price table sheet.
type PriceTableReader interface {
	Read(ctx context.Context, content []byte) ([]*pricing.PriceEntry, error)
}
