package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a live order. The acting role is recorded as
// the cancelling role.
type CancelOrderCommand struct {
	orderCommand
}

func NewCancelOrderCommand(a actor.Actor, orderID kernel.ID, reason string) (CancelOrderCommand, error) {
	base, err := newOrderCommand(a, orderID, reason)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderCommand: base}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Reason is the raw cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.note
}
