// Package pricerepo persists the price table.
package pricerepo

import (
	"hvacops/internal/core/domain/model/kernel"
	"hvacops/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceEntryDTO is one row of the price table. Components use the
// "name:model;name:model" notation and are empty for single units.
type PriceEntryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Affiliate    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_price_affiliate_model"`
	ModelName    string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_price_affiliate_model"`
	Components   string          `gorm:"type:text"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	InstallPrice decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (PriceEntryDTO) TableName() string {
	return "price_entries"
}

func fromDomain(e *pricing.PriceEntry) PriceEntryDTO {
	return PriceEntryDTO{
		ID:           e.ID().Bytes(),
		Affiliate:    e.Affiliate(),
		ModelName:    e.ModelName(),
		Components:   pricing.FormatComponents(e.Components()),
		UnitPrice:    e.UnitPrice(),
		InstallPrice: e.InstallPrice(),
	}
}

func toDomain(dto PriceEntryDTO) (*pricing.PriceEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	components, err := pricing.ParseComponents(dto.Components)
	if err != nil {
		return nil, err
	}

	return pricing.NewPriceEntry(id, dto.Affiliate, dto.ModelName, components, dto.UnitPrice, dto.InstallPrice)
}
