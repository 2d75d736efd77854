package ports

import (
	"context"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
)

// ServiceRepository persists catalog services.
type ServiceRepository interface {
	Add(ctx context.Context, service *catalog.Service) error
	Update(ctx context.Context, service *catalog.Service) error
	// Get returns ObjectNotFound when the service does not exist.
	Get(ctx context.Context, id kernel.ID) (*catalog.Service, error)
}

// VendorRepository persists vendor profiles.
type VendorRepository interface {
	Add(ctx context.Context, vendor *catalog.Vendor) error
	Update(ctx context.Context, vendor *catalog.Vendor) error
	// Get returns ObjectNotFound when the vendor does not exist.
	Get(ctx context.Context, id kernel.ID) (*catalog.Vendor, error)
}
