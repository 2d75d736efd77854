package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
)

var (
	ErrAcceptOrderCommandIsNotConstructed = errors.New(
		"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
	)
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
)

// AcceptOrderCommand is the assigned vendor taking the order into work.
type AcceptOrderCommand struct {
	orderCommand
}

func NewAcceptOrderCommand(a actor.Actor, orderID kernel.ID, note string) (AcceptOrderCommand, error) {
	base, err := newOrderCommand(a, orderID, note)
	if err != nil {
		return AcceptOrderCommand{}, err
	}
	return AcceptOrderCommand{orderCommand: base}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// RejectOrderCommand is the assigned vendor declining the order. The note
// becomes the cancellation reason.
type RejectOrderCommand struct {
	orderCommand
}

func NewRejectOrderCommand(a actor.Actor, orderID kernel.ID, note string) (RejectOrderCommand, error) {
	base, err := newOrderCommand(a, orderID, note)
	if err != nil {
		return RejectOrderCommand{}, err
	}
	return RejectOrderCommand{orderCommand: base}, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}
