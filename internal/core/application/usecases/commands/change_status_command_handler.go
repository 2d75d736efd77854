package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// ChangeStatusCommandHandler applies an admin or vendor status change.
// CANCELLED is refused here; cancellation has its own command.
type ChangeStatusCommandHandler struct {
	transition transition
	policy     services.TransitionPolicy
}

func NewChangeStatusCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		transition: transition{uowFactory: uowFactory, assembler: assembler, observer: observer},
		policy:     policy,
	}
}

func (h ChangeStatusCommandHandler) Handle(ctx context.Context, cmd ChangeStatusCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := h.transition.run(ctx, transitionStep{
		operation: "change_status",
		orderID:   cmd.OrderID(),
		decide: func(o *order.Order) services.Decision {
			return h.policy.CanChangeStatus(cmd.Actor(), o, cmd.Target())
		},
		mutate: func(o *order.Order) error {
			return o.ChangeStatus(cmd.Target(), cmd.Actor().ID(), cmd.Note())
		},
	})
	if err != nil {
		return queries.OrderDetails{}, err
	}
	return h.transition.assembler.Assemble(ctx, o.ID())
}
