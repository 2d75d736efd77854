package catalogrepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerr"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

var (
	_ ports.ServiceRepository = (*GormServiceRepository)(nil)
	_ ports.VendorRepository  = (*GormVendorRepository)(nil)
)

// GormServiceRepository implements ports.ServiceRepository using GORM.
type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) Add(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	dto := serviceFromDomain(service)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("insert service", err)
	}
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	service.SetPersistedID(id)
	return nil
}

// Update writes only the activity flag; the rest of a service is fixed.
func (r *GormServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ServiceDTO{}).
		Where("id = ?", service.ID().Int64()).
		Update("is_active", service.IsActive())
	if result.Error != nil {
		return pgerr.Wrap("update service", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("service", service.ID().String())
	}
	return nil
}

func (r *GormServiceRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Lookup("get service", "service", id, err)
	}
	return serviceToDomain(dto)
}

// GormVendorRepository implements ports.VendorRepository using GORM.
type GormVendorRepository struct {
	db *gorm.DB
}

func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

func (r *GormVendorRepository) Add(ctx context.Context, vendor *catalog.Vendor) error {
	if err := vendor.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(vendor)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Wrap("insert vendor", err)
	}
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	vendor.SetPersisted(id, dto.CreatedAt)
	return nil
}

// Update writes only the activity flag.
func (r *GormVendorRepository) Update(ctx context.Context, vendor *catalog.Vendor) error {
	if err := vendor.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&VendorDTO{}).
		Where("id = ?", vendor.ID().Int64()).
		Update("is_active", vendor.IsActive())
	if result.Error != nil {
		return pgerr.Wrap("update vendor", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vendor", vendor.ID().String())
	}
	return nil
}

func (r *GormVendorRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Vendor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		return nil, pgerr.Lookup("get vendor", "vendor", id, err)
	}
	return vendorToDomain(dto)
}
