package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var ErrChangeStatusCommandIsNotConstructed = errors.New(
	"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
)

// ChangeStatusCommand moves an order to an explicit target status.
type ChangeStatusCommand struct {
	orderCommand
	target order.Status
}

func NewChangeStatusCommand(a actor.Actor, orderID kernel.ID, target order.Status, note string) (ChangeStatusCommand, error) {
	base, err := newOrderCommand(a, orderID, note)
	if err = errors.Join(err, target.Validate()); err != nil {
		return ChangeStatusCommand{}, err
	}
	return ChangeStatusCommand{orderCommand: base, target: target}, nil
}

func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

func (c ChangeStatusCommand) Target() order.Status {
	return c.target
}
