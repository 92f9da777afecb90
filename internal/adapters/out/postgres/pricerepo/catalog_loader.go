package pricerepo

import (
	"context"

	"hvacops/internal/core/domain/model/pricing"
	"hvacops/internal/pkg/loader"

	"gorm.io/gorm"
)

// NewCatalogLoader builds the price catalog from the stored table on first
// use. The import handler resets it after replacing the table.
func NewCatalogLoader(db *gorm.DB) *loader.Loader[*pricing.Catalog] {
	repo := NewGormPriceRepository(db)
	return loader.New(func(ctx context.Context) (*pricing.Catalog, error) {
		entries, err := repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		return pricing.NewCatalog(entries)
	})
}
