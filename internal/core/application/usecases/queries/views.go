// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for API responses.
package queries

import (
	"encoding/json"
	"time"
)

// OrderHeader is the order row itself, without related records.
type OrderHeader struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"userId"`
	ServiceID         int64           `json:"serviceId"`
	VendorID          *int64          `json:"vendorId"`
	ParamsJSON        json.RawMessage `json:"paramsJson"`
	Subtotal          int64           `json:"subtotal"`
	Commission        int64           `json:"commission"`
	Total             int64           `json:"total"`
	Status            string          `json:"status"`
	DueAt             *time.Time      `json:"dueAt"`
	CancelledAt       *time.Time      `json:"cancelledAt"`
	CancelledByUserID *int64          `json:"cancelledByUserId"`
	CancelledByRole   *string         `json:"cancelledByRole"`
	CancelReason      *string         `json:"cancelReason"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// UserView is the public projection of a user account. Credentials never
// leave the identity service.
type UserView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	VendorID  *int64    `json:"vendorId"`
	CreatedAt time.Time `json:"createdAt"`
}

// VendorView is a vendor profile. LegalName, TaxID and Contacts are only
// filled for admins and for order aggregates.
type VendorView struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	LegalName *string         `json:"legalName,omitempty"`
	TaxID     *string         `json:"taxId,omitempty"`
	Contacts  json.RawMessage `json:"contacts,omitempty"`
	IsActive  bool            `json:"isActive"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Public strips the fields reserved for admins.
func (v VendorView) Public() VendorView {
	return VendorView{ID: v.ID, Name: v.Name, IsActive: v.IsActive, CreatedAt: v.CreatedAt}
}

type ServiceView struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
}

type HistoryView struct {
	ID              int64     `json:"id"`
	OrderID         int64     `json:"orderId"`
	Status          string    `json:"status"`
	ChangedByUserID int64     `json:"changedByUserId"`
	Note            *string   `json:"note"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CommentView struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"orderId"`
	UserID    int64     `json:"userId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

type FileView struct {
	ID               int64     `json:"id"`
	OrderID          int64     `json:"orderId"`
	FileURL          string    `json:"fileUrl"`
	FileName         string    `json:"fileName"`
	FileType         string    `json:"fileType"`
	UploadedByUserID int64     `json:"uploadedByUserId"`
	CreatedAt        time.Time `json:"createdAt"`
}

type OfferView struct {
	ID              int64      `json:"id"`
	OrderID         int64      `json:"orderId"`
	VendorID        int64      `json:"vendorId"`
	Subtotal        int64      `json:"subtotal"`
	Commission      int64      `json:"commission"`
	Total           int64      `json:"total"`
	DueAt           *time.Time `json:"dueAt"`
	Note            *string    `json:"note"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	DecidedAt       *time.Time `json:"decidedAt"`
	DecidedByUserID *int64     `json:"decidedByUserId"`
}

// OrderDetails is the assembled order aggregate returned by every order
// operation.
type OrderDetails struct {
	OrderHeader

	User     *UserView     `json:"user"`
	Vendor   *VendorView   `json:"vendor"`
	Service  *ServiceView  `json:"service"`
	History  []HistoryView `json:"history"`
	Comments []CommentView `json:"comments"`
	Files    []FileView    `json:"files"`
	Offers   []OfferView   `json:"offers"`
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Total int64          `json:"total"`
	Take  int            `json:"take"`
	Skip  int            `json:"skip"`
	Rows  []OrderDetails `json:"rows"`
}
