package commands

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// AcceptOrderCommandHandler moves an ASSIGNED order to IN_PROGRESS.
type AcceptOrderCommandHandler struct {
	transition transition
	policy     services.TransitionPolicy
}

func NewAcceptOrderCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		transition: transition{uowFactory: uowFactory, assembler: assembler, observer: observer},
		policy:     policy,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := h.transition.run(ctx, transitionStep{
		operation: "accept",
		orderID:   cmd.OrderID(),
		decide: func(o *order.Order) services.Decision {
			return h.policy.CanAccept(cmd.Actor(), o)
		},
		mutate: func(o *order.Order) error {
			return o.Accept(cmd.Actor().ID(), cmd.Note())
		},
	})
	if err != nil {
		return queries.OrderDetails{}, err
	}
	return h.transition.assembler.Assemble(ctx, o.ID())
}

// RejectOrderCommandHandler cancels an ASSIGNED order on behalf of its
// vendor.
type RejectOrderCommandHandler struct {
	transition transition
	policy     services.TransitionPolicy
	now        func() time.Time
}

func NewRejectOrderCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		transition: transition{uowFactory: uowFactory, assembler: assembler, observer: observer},
		policy:     policy,
		now:        time.Now,
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := h.transition.run(ctx, transitionStep{
		operation: "reject",
		orderID:   cmd.OrderID(),
		decide: func(o *order.Order) services.Decision {
			return h.policy.CanReject(cmd.Actor(), o)
		},
		mutate: func(o *order.Order) error {
			return o.Reject(cmd.Actor().ID(), cmd.Note(), h.now())
		},
	})
	if err != nil {
		return queries.OrderDetails{}, err
	}
	return h.transition.assembler.Assemble(ctx, o.ID())
}
