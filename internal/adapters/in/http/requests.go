package http

import (
	"encoding/json"
	"time"
)

type createOrderRequest struct {
	ServiceID  int64           `json:"serviceId"  validate:"required,gt=0"`
	ParamsJSON json.RawMessage `json:"paramsJson"`
	Subtotal   *int64          `json:"subtotal"   validate:"required"`
	Commission *int64          `json:"commission" validate:"required"`
	Total      *int64          `json:"total"      validate:"required"`
	DueAt      *time.Time      `json:"dueAt"`
}

type assignVendorRequest struct {
	VendorID int64  `json:"vendorId" validate:"required,gt=0"`
	Note     string `json:"note"`
}

type noteRequest struct {
	Note string `json:"note"`
}

type changeStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type commentRequest struct {
	Message string `json:"message" validate:"required"`
}

type fileRequest struct {
	FileURL  string `json:"fileUrl"  validate:"required"`
	FileName string `json:"fileName" validate:"required"`
	FileType string `json:"fileType"`
}

type createServiceRequest struct {
	Category    string `json:"category"    validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type createVendorRequest struct {
	Name      string          `json:"name"      validate:"required"`
	LegalName string          `json:"legalName" validate:"required"`
	TaxID     string          `json:"taxId"`
	Contacts  json.RawMessage `json:"contacts"`
	IsActive  *bool           `json:"isActive"`
}

type activeRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type createUserRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role"     validate:"required,oneof=CLIENT VENDOR ADMIN"`
	VendorID *int64 `json:"vendorId" validate:"omitempty,gt=0"`
}
