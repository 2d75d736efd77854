package commands

import (
	"encoding/json"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order for one catalog service. The client
// placing it is the acting user.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(client, serviceID, json.RawMessage(`{"rooms":2}`), 1000, 100, 1100, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	details, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	actor      actor.Actor
	serviceID  kernel.ID
	params     json.RawMessage
	subtotal   int64
	commission int64
	total      int64
	dueAt      *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand checks identities only. Amounts and params are
// validated by the domain so that a mismatched total is reported as a state
// conflict rather than malformed input.
func NewCreateOrderCommand(
	a actor.Actor,
	serviceID kernel.ID,
	params json.RawMessage,
	subtotal, commission, total int64,
	dueAt *time.Time,
) (CreateOrderCommand, error) {
	if err := errors.Join(a.Validate(), serviceID.Validate()); err != nil {
		return CreateOrderCommand{}, err
	}
	return CreateOrderCommand{
		actor:      a,
		serviceID:  serviceID,
		params:     params,
		subtotal:   subtotal,
		commission: commission,
		total:      total,
		dueAt:      dueAt,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() actor.Actor      { return c.actor }
func (c CreateOrderCommand) ServiceID() kernel.ID    { return c.serviceID }
func (c CreateOrderCommand) Params() json.RawMessage { return c.params }
func (c CreateOrderCommand) Subtotal() int64         { return c.subtotal }
func (c CreateOrderCommand) Commission() int64       { return c.commission }
func (c CreateOrderCommand) Total() int64            { return c.total }
func (c CreateOrderCommand) DueAt() *time.Time       { return c.dueAt }
