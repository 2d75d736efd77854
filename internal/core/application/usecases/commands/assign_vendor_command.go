package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

var ErrAssignVendorCommandIsNotConstructed = errors.New(
	"AssignVendorCommand must be created via NewAssignVendorCommand constructor",
)

// AssignVendorCommand assigns or reassigns an order to a vendor.
type AssignVendorCommand struct {
	orderCommand
	vendorID kernel.ID
}

func NewAssignVendorCommand(a actor.Actor, orderID, vendorID kernel.ID, note string) (AssignVendorCommand, error) {
	base, err := newOrderCommand(a, orderID, note)
	if err = errors.Join(err, vendorID.Validate()); err != nil {
		return AssignVendorCommand{}, err
	}
	return AssignVendorCommand{orderCommand: base, vendorID: vendorID}, nil
}

func (c AssignVendorCommand) Validate() error {
	return c.guard.Validate(ErrAssignVendorCommandIsNotConstructed)
}

func (c AssignVendorCommand) VendorID() kernel.ID {
	return c.vendorID
}
