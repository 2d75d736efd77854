package order

import "marketplace/internal/core/domain/model/kernel"

// Filter narrows an order listing. Nil fields do not filter.
type Filter struct {
	UserID    *kernel.ID
	VendorID  *kernel.ID
	ServiceID *kernel.ID
	Status    *Status
}
