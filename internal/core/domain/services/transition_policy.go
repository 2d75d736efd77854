package services

import (
	"fmt"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// VendorProgression controls which targets a vendor may pick when changing
// the status of its order.
type VendorProgression int

const (
	// ProgressionLenient lets a vendor pick any vendor target from any live
	// state, including moving back.
	ProgressionLenient VendorProgression = iota
	// ProgressionForward requires the target to rank strictly after the
	// current state: ASSIGNED < IN_PROGRESS < READY < DELIVERED. Steps may be
	// skipped.
	ProgressionForward
)

// ParseVendorProgression accepts "lenient" and "forward". Empty means lenient.
func ParseVendorProgression(s string) (VendorProgression, error) {
	switch s {
	case "", "lenient":
		return ProgressionLenient, nil
	case "forward":
		return ProgressionForward, nil
	}
	return ProgressionLenient, errs.NewValueIsInvalidErrorWithCause("vendor status progression",
		fmt.Errorf("%q is neither lenient nor forward", s))
}

func (p VendorProgression) String() string {
	if p == ProgressionForward {
		return "forward"
	}
	return "lenient"
}

// vendorTargets are the only statuses a vendor may set through ChangeStatus.
func vendorTargets() map[order.Status]struct{} {
	return map[order.Status]struct{}{
		order.InProgress: {},
		order.Ready:      {},
		order.Delivered:  {},
	}
}

// TransitionPolicy decides who may trigger each lifecycle transition.
//
// Checks run in a fixed order: role, then ownership, then any state rule the
// policy owns. State rules that do not depend on the actor are left to the
// Order aggregate. Command handlers evaluate a policy once on a plain read
// and again on the row locked for update.
type TransitionPolicy struct {
	visibility  VisibilityPolicy
	progression VendorProgression
}

func NewTransitionPolicy(progression VendorProgression) TransitionPolicy {
	return TransitionPolicy{visibility: NewVisibilityPolicy(), progression: progression}
}

// Progression returns the configured vendor progression mode.
func (p TransitionPolicy) Progression() VendorProgression {
	return p.progression
}

// CanCreate allows only clients to place orders, always on their own behalf.
func (p TransitionPolicy) CanCreate(a actor.Actor) Decision {
	if a.Role() != actor.Client {
		return deny(errs.NewForbiddenErrorWithReason("create order", "only clients place orders"))
	}
	return allow()
}

// CanAssignVendor allows only admins.
func (p TransitionPolicy) CanAssignVendor(a actor.Actor, _ *order.Order) Decision {
	if !a.IsAdmin() {
		return deny(errs.NewForbiddenError("assign vendor"))
	}
	return allow()
}

// CanAccept allows the vendor the order is assigned to.
func (p TransitionPolicy) CanAccept(a actor.Actor, o *order.Order) Decision {
	return p.requireAssignedVendor("accept order", a, o)
}

// CanReject allows the vendor the order is assigned to.
func (p TransitionPolicy) CanReject(a actor.Actor, o *order.Order) Decision {
	return p.requireAssignedVendor("reject order", a, o)
}

// CanChangeStatus checks a generic status change. CANCELLED is refused for
// everyone since cancellation has its own operation. Admins may pick any
// other target; the assigned vendor may pick IN_PROGRESS, READY or DELIVERED,
// subject to the progression mode.
func (p TransitionPolicy) CanChangeStatus(a actor.Actor, o *order.Order, target order.Status) Decision {
	if target == order.Cancelled {
		return deny(errs.NewInvalidStateErrorWithCause("change status", o.Status().String(),
			fmt.Errorf("use cancel to move an order to %s", order.Cancelled)))
	}

	switch a.Role() {
	case actor.Admin:
		return allow()
	case actor.Vendor:
		if d := p.requireAssignedVendor("change status", a, o); !d.Allowed() {
			return d
		}
		if _, ok := vendorTargets()[target]; !ok {
			return deny(errs.NewForbiddenErrorWithReason("change status",
				fmt.Sprintf("vendors cannot set %s", target)))
		}
		if p.progression == ProgressionForward && !o.Status().IsTerminal() && !target.IsAfter(o.Status()) {
			return deny(errs.NewInvalidStateErrorWithCause("change status", o.Status().String(),
				fmt.Errorf("%s does not move the order forward", target)))
		}
		return allow()
	case actor.Client, actor.UnknownRole:
	}
	return deny(errs.NewForbiddenError("change status"))
}

// CanCancel allows admins on any order, clients on their own orders and
// vendors on orders assigned to them.
func (p TransitionPolicy) CanCancel(a actor.Actor, o *order.Order) Decision {
	switch a.Role() {
	case actor.Admin:
		return allow()
	case actor.Client:
		if !o.UserID().IsEqual(a.ID()) {
			return deny(errs.NewForbiddenError("cancel order"))
		}
		return allow()
	case actor.Vendor:
		return p.requireAssignedVendor("cancel order", a, o)
	case actor.UnknownRole:
	}
	return deny(errs.NewForbiddenError("cancel order"))
}

// CanAnnotate allows anyone who can see the order to add comments and files.
func (p TransitionPolicy) CanAnnotate(a actor.Actor, o order.Ownership) Decision {
	if err := p.visibility.RequireCanSee(a, o); err != nil {
		return deny(err)
	}
	return allow()
}

func (p TransitionPolicy) requireAssignedVendor(action string, a actor.Actor, o *order.Order) Decision {
	if a.Role() != actor.Vendor {
		return deny(errs.NewForbiddenErrorWithReason(action, "only the assigned vendor may do this"))
	}
	vendorID, linked := a.VendorID()
	if !linked {
		return deny(errs.NewForbiddenErrorWithReason(action, reasonVendorNotLinked))
	}
	if !o.Ownership().HasVendor(vendorID) {
		return deny(errs.NewForbiddenErrorWithReason(action, "order is assigned to another vendor"))
	}
	return allow()
}
