package pricerepo

import (
	"context"

	"hvacops/internal/core/domain/model/pricing"

	"gorm.io/gorm"
)

const insertBatchSize = 200

// GormPriceRepository implements PriceRepository using GORM.
type GormPriceRepository struct {
	db *gorm.DB
}

func NewGormPriceRepository(db *gorm.DB) *GormPriceRepository {
	return &GormPriceRepository{db: db}
}

// ReplaceAll deletes the current table and inserts the entries. Run it
// inside a transaction so readers never see a half-written table.
func (r *GormPriceRepository) ReplaceAll(ctx context.Context, entries []*pricing.PriceEntry) error {
	dtos := make([]PriceEntryDTO, 0, len(entries))
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(e))
	}

	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&PriceEntryDTO{}).Error; err != nil {
		return err
	}

	if len(dtos) == 0 {
		return nil
	}
	return db.CreateInBatches(&dtos, insertBatchSize).Error
}

// GetAll returns the whole table ordered by affiliate and model.
func (r *GormPriceRepository) GetAll(ctx context.Context) ([]*pricing.PriceEntry, error) {
	var dtos []PriceEntryDTO
	if err := r.db.WithContext(ctx).Order("affiliate, model_name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*pricing.PriceEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, nil
}
