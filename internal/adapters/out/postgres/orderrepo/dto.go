// Package orderrepo persists the order aggregate and its status history.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"gorm.io/datatypes"
)

// OrderDTO is the orders row.
type OrderDTO struct {
	ID                int64          `gorm:"primaryKey;autoIncrement"`
	UserID            int64          `gorm:"not null;index"`
	ServiceID         int64          `gorm:"not null"`
	VendorID          *int64         `gorm:"index"`
	ParamsJSON        datatypes.JSON `gorm:"column:params_json;type:jsonb;not null"`
	Subtotal          int64
	Commission        int64
	Total             int64
	Status            string `gorm:"type:varchar(16);not null;index"`
	DueAt             *time.Time
	CancelledAt       *time.Time
	CancelledByUserID *int64
	CancelledByRole   *string `gorm:"type:varchar(16)"`
	CancelReason      *string
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO is one order_status_history row. Rows are only ever inserted.
type HistoryDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderID         int64  `gorm:"not null;index"`
	Status          string `gorm:"type:varchar(16);not null"`
	ChangedByUserID int64  `gorm:"not null"`
	Note            *string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	pricing := o.Pricing()
	dto := OrderDTO{
		ID:         o.ID().Int64(),
		UserID:     o.UserID().Int64(),
		ServiceID:  o.ServiceID().Int64(),
		VendorID:   kernel.Int64Ptr(o.VendorID()),
		ParamsJSON: datatypes.JSON(o.Params()),
		Subtotal:   pricing.Subtotal(),
		Commission: pricing.Commission(),
		Total:      pricing.Total(),
		Status:     o.Status().String(),
		DueAt:      o.DueAt(),
	}
	if c := o.Cancellation(); c != nil {
		at := c.At
		by := c.ByUserID.Int64()
		role := c.ByRole.String()
		dto.CancelledAt = &at
		dto.CancelledByUserID = &by
		dto.CancelledByRole = &role
		dto.CancelReason = c.Reason
	}
	return dto
}

// mutableColumns lists what a transition may change. Identity, ownership
// and pricing columns are never part of an update.
func mutableColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"vendor_id":            dto.VendorID,
		"status":               dto.Status,
		"cancelled_at":         dto.CancelledAt,
		"cancelled_by_user_id": dto.CancelledByUserID,
		"cancelled_by_role":    dto.CancelledByRole,
		"cancel_reason":        dto.CancelReason,
	}
}

func historyFromDomain(orderID kernel.ID, changes []order.StatusChange) []HistoryDTO {
	rows := make([]HistoryDTO, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, HistoryDTO{
			OrderID:         orderID.Int64(),
			Status:          c.Status.String(),
			ChangedByUserID: c.ChangedBy.Int64(),
			Note:            c.Note,
		})
	}
	return rows
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.NewID(dto.ServiceID)
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.OptionalID(dto.VendorID)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	cancellation, err := cancellationToDomain(dto)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		UserID:       userID,
		ServiceID:    serviceID,
		VendorID:     vendorID,
		Subtotal:     dto.Subtotal,
		Commission:   dto.Commission,
		Total:        dto.Total,
		Status:       status,
		Params:       []byte(dto.ParamsJSON),
		DueAt:        dto.DueAt,
		Cancellation: cancellation,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func cancellationToDomain(dto OrderDTO) (*order.Cancellation, error) {
	if dto.CancelledAt == nil {
		return nil, nil
	}
	var by kernel.ID
	if dto.CancelledByUserID != nil {
		id, err := kernel.NewID(*dto.CancelledByUserID)
		if err != nil {
			return nil, err
		}
		by = id
	}
	role := actor.UnknownRole
	if dto.CancelledByRole != nil {
		r, err := actor.ParseRole(*dto.CancelledByRole)
		if err != nil {
			return nil, err
		}
		role = r
	}
	return &order.Cancellation{
		At:       *dto.CancelledAt,
		ByUserID: by,
		ByRole:   role,
		Reason:   dto.CancelReason,
	}, nil
}
