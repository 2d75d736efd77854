package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

// orderCommand carries what every command on an existing order needs: who
// is acting, on which order, and an optional free-text note.
type orderCommand struct {
	actor   actor.Actor
	orderID kernel.ID
	note    string

	guard guard.ConstructorGuard
}

func newOrderCommand(a actor.Actor, orderID kernel.ID, note string) (orderCommand, error) {
	if err := errors.Join(a.Validate(), orderID.Validate()); err != nil {
		return orderCommand{}, err
	}
	return orderCommand{actor: a, orderID: orderID, note: note, guard: guard.NewConstructorGuard()}, nil
}

func (c orderCommand) Actor() actor.Actor {
	return c.actor
}

func (c orderCommand) OrderID() kernel.ID {
	return c.orderID
}

// Note is the raw note; the aggregate trims it and treats blank as absent.
func (c orderCommand) Note() string {
	return c.note
}
