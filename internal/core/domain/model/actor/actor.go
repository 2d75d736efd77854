package actor

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor is the authenticated caller resolved by the identity context:
// {id, role, vendorId}. It is supplied per request and never persisted here.
//
// A Vendor actor may legitimately lack a vendor link (an account not yet
// attached to a vendor); policies treat such actors as forbidden rather than
// as seeing nothing.
type Actor struct {
	id       kernel.ID
	role     Role
	vendorID *kernel.ID

	guard guard.ConstructorGuard
}

// NewActor validates the identity and role. The vendor link is kept only for
// Vendor actors.
func NewActor(id kernel.ID, role Role, vendorID *kernel.ID) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	a := Actor{id: id, role: role, guard: guard.NewConstructorGuard()}
	if role == Vendor && vendorID != nil {
		if err := vendorID.Validate(); err != nil {
			return Actor{}, err
		}
		v := *vendorID
		a.vendorID = &v
	}
	return a, nil
}

// Validate ensures the actor was built through NewActor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.ID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

// VendorID returns the linked vendor account, if any.
func (a Actor) VendorID() (kernel.ID, bool) {
	if a.vendorID == nil {
		return kernel.ID{}, false
	}
	return *a.vendorID, true
}

func (a Actor) IsAdmin() bool {
	return a.role == Admin
}
