package order

import "marketplace/internal/core/domain/model/kernel"

// Ownership is the minimal projection the visibility rules need: the client
// that placed the order and the vendor it is assigned to, if any.
type Ownership struct {
	UserID   kernel.ID
	VendorID *kernel.ID
}

// HasVendor reports whether the order is assigned to vendorID.
func (o Ownership) HasVendor(vendorID kernel.ID) bool {
	return o.VendorID != nil && o.VendorID.IsEqual(vendorID)
}
