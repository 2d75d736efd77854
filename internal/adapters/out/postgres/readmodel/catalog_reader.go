package readmodel

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

var _ queries.CatalogReader = (*GormCatalogReader)(nil)

// GormCatalogReader implements queries.CatalogReader.
type GormCatalogReader struct {
	db *gorm.DB
}

func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

func (r *GormCatalogReader) Services(ctx context.Context, filter queries.ServiceFilter) ([]queries.ServiceView, error) {
	db := r.db.WithContext(ctx).
		Table("services").
		Select("id, category, name, description, is_active")
	if filter.OnlyActive {
		db = db.Where("is_active")
	}
	if filter.Category != nil {
		db = db.Where("category = ?", *filter.Category)
	}

	services := make([]queries.ServiceView, 0)
	if err := db.Order("category").Order("name").Order("id").Scan(&services).Error; err != nil {
		return nil, pgerr.Wrap("list services", err)
	}
	return services, nil
}

func (r *GormCatalogReader) Vendors(ctx context.Context, onlyActive bool) ([]queries.VendorView, error) {
	db := r.db.WithContext(ctx).
		Table("vendors").
		Select("id, name, legal_name, tax_id, contacts, is_active, created_at")
	if onlyActive {
		db = db.Where("is_active")
	}

	var rows []vendorRow
	if err := db.Order("created_at DESC").Order("id DESC").Scan(&rows).Error; err != nil {
		return nil, pgerr.Wrap("list vendors", err)
	}
	vendors := make([]queries.VendorView, 0, len(rows))
	for _, row := range rows {
		vendors = append(vendors, row.view())
	}
	return vendors, nil
}
