// Package readmodel implements the query-side readers with plain SQL over
// gorm. Rows are scanned into local structs and mapped to views, so the
// views stay free of storage tags.
package readmodel

import (
	"encoding/json"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"gorm.io/datatypes"
)

const orderColumns = `
	id, user_id, service_id, vendor_id, params_json,
	subtotal, commission, total, status, due_at,
	cancelled_at, cancelled_by_user_id, cancelled_by_role, cancel_reason,
	created_at, updated_at`

type orderRow struct {
	ID                int64
	UserID            int64
	ServiceID         int64
	VendorID          *int64
	ParamsJSON        datatypes.JSON
	Subtotal          int64
	Commission        int64
	Total             int64
	Status            string
	DueAt             *time.Time
	CancelledAt       *time.Time
	CancelledByUserID *int64
	CancelledByRole   *string
	CancelReason      *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (r orderRow) view() queries.OrderHeader {
	return queries.OrderHeader{
		ID:                r.ID,
		UserID:            r.UserID,
		ServiceID:         r.ServiceID,
		VendorID:          r.VendorID,
		ParamsJSON:        json.RawMessage(r.ParamsJSON),
		Subtotal:          r.Subtotal,
		Commission:        r.Commission,
		Total:             r.Total,
		Status:            r.Status,
		DueAt:             r.DueAt,
		CancelledAt:       r.CancelledAt,
		CancelledByUserID: r.CancelledByUserID,
		CancelledByRole:   r.CancelledByRole,
		CancelReason:      r.CancelReason,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func orderViews(rows []orderRow) []queries.OrderHeader {
	out := make([]queries.OrderHeader, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.view())
	}
	return out
}

type vendorRow struct {
	ID        int64
	Name      string
	LegalName string
	TaxID     *string
	Contacts  datatypes.JSON
	IsActive  bool
	CreatedAt time.Time
}

func (r vendorRow) view() queries.VendorView {
	legalName := r.LegalName
	return queries.VendorView{
		ID:        r.ID,
		Name:      r.Name,
		LegalName: &legalName,
		TaxID:     r.TaxID,
		Contacts:  json.RawMessage(r.Contacts),
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
	}
}
