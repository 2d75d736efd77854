package commands

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an order for an admin, its client or its
// assigned vendor.
type CancelOrderCommandHandler struct {
	transition transition
	policy     services.TransitionPolicy
	now        func() time.Time
}

func NewCancelOrderCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		transition: transition{uowFactory: uowFactory, assembler: assembler, observer: observer},
		policy:     policy,
		now:        time.Now,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := h.transition.run(ctx, transitionStep{
		operation: "cancel",
		orderID:   cmd.OrderID(),
		decide: func(o *order.Order) services.Decision {
			return h.policy.CanCancel(cmd.Actor(), o)
		},
		mutate: func(o *order.Order) error {
			return o.Cancel(cmd.Actor().ID(), cmd.Actor().Role(), cmd.Reason(), h.now())
		},
	})
	if err != nil {
		return queries.OrderDetails{}, err
	}
	return h.transition.assembler.Assemble(ctx, o.ID())
}
