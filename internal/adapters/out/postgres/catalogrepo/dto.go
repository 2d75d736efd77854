// Package catalogrepo persists catalog services and vendor companies.
package catalogrepo

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"

	"gorm.io/datatypes"
)

// ServiceDTO is the services row.
type ServiceDTO struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Category    string `gorm:"type:varchar(200);not null"`
	Name        string `gorm:"type:varchar(200);not null"`
	Description *string
	IsActive    bool `gorm:"not null"`
}

func (ServiceDTO) TableName() string {
	return "services"
}

// VendorDTO is the vendors row. Contacts is a JSON object stored as jsonb.
type VendorDTO struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	Name      string         `gorm:"type:varchar(120);not null"`
	LegalName string         `gorm:"type:varchar(200);not null"`
	TaxID     *string        `gorm:"type:varchar(32)"`
	Contacts  datatypes.JSON `gorm:"type:jsonb;not null"`
	IsActive  bool           `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (VendorDTO) TableName() string {
	return "vendors"
}

func serviceFromDomain(s *catalog.Service) ServiceDTO {
	return ServiceDTO{
		ID:          s.ID().Int64(),
		Category:    s.Category(),
		Name:        s.Name(),
		Description: s.Description(),
		IsActive:    s.IsActive(),
	}
}

func serviceToDomain(dto ServiceDTO) (*catalog.Service, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreService(id, dto.Category, dto.Name, dto.Description, dto.IsActive)
}

func vendorFromDomain(v *catalog.Vendor) VendorDTO {
	return VendorDTO{
		ID:        v.ID().Int64(),
		Name:      v.Name(),
		LegalName: v.LegalName(),
		TaxID:     v.TaxID(),
		Contacts:  datatypes.JSON(v.Contacts()),
		IsActive:  v.IsActive(),
		CreatedAt: v.CreatedAt(),
	}
}

func vendorToDomain(dto VendorDTO) (*catalog.Vendor, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreVendor(id, dto.Name, dto.LegalName, dto.TaxID, json.RawMessage(dto.Contacts), dto.IsActive, dto.CreatedAt)
}
