package services

import (
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

const reasonVendorNotLinked = "vendor account is not linked"

// VisibilityPolicy decides whether an actor may see an order. Seeing an order
// is also the precondition for annotating it with comments and files.
type VisibilityPolicy struct{}

func NewVisibilityPolicy() VisibilityPolicy {
	return VisibilityPolicy{}
}

// CanSee applies the rules in order, first match wins:
//  1. ADMIN sees everything
//  2. CLIENT sees orders it placed
//  3. VENDOR sees orders assigned to its linked vendor
//  4. nothing else is visible
func (VisibilityPolicy) CanSee(a actor.Actor, o order.Ownership) bool {
	switch a.Role() {
	case actor.Admin:
		return true
	case actor.Client:
		return o.UserID.IsEqual(a.ID())
	case actor.Vendor:
		vendorID, linked := a.VendorID()
		return linked && o.HasVendor(vendorID)
	case actor.UnknownRole:
	}
	return false
}

// RequireCanSee returns Forbidden when CanSee is false. An unlinked vendor
// fails closed with its own reason.
func (p VisibilityPolicy) RequireCanSee(a actor.Actor, o order.Ownership) error {
	if p.CanSee(a, o) {
		return nil
	}
	if a.Role() == actor.Vendor {
		if _, linked := a.VendorID(); !linked {
			return errs.NewForbiddenErrorWithReason("view order", reasonVendorNotLinked)
		}
	}
	return errs.NewForbiddenError("view order")
}

// Scope rewrites a requested listing filter so that it only reaches orders
// the actor can see. Admins keep every filter. Clients and vendors are pinned
// to themselves and may only narrow further by status and service.
func (VisibilityPolicy) Scope(a actor.Actor, requested order.Filter) (order.Filter, error) {
	narrowed := order.Filter{ServiceID: requested.ServiceID, Status: requested.Status}

	switch a.Role() {
	case actor.Admin:
		return requested, nil
	case actor.Client:
		id := a.ID()
		narrowed.UserID = &id
		return narrowed, nil
	case actor.Vendor:
		vendorID, linked := a.VendorID()
		if !linked {
			return order.Filter{}, errs.NewForbiddenErrorWithReason("list orders", reasonVendorNotLinked)
		}
		narrowed.VendorID = &vendorID
		return narrowed, nil
	case actor.UnknownRole:
	}
	return order.Filter{}, errs.NewForbiddenError("list orders")
}
