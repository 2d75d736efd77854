package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// AssignVendorCommandHandler lets an admin hand an order to an active vendor.
// The vendor is checked inside the transaction, so an inactive vendor leaves
// neither the order nor its history touched.
type AssignVendorCommandHandler struct {
	transition transition
	policy     services.TransitionPolicy
}

func NewAssignVendorCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) AssignVendorCommandHandler {
	return AssignVendorCommandHandler{
		transition: transition{uowFactory: uowFactory, assembler: assembler, observer: observer},
		policy:     policy,
	}
}

func (h AssignVendorCommandHandler) Handle(ctx context.Context, cmd AssignVendorCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := h.transition.run(ctx, transitionStep{
		operation: "assign_vendor",
		orderID:   cmd.OrderID(),
		decide: func(o *order.Order) services.Decision {
			return h.policy.CanAssignVendor(cmd.Actor(), o)
		},
		prepare: func(ctx context.Context, uow UoW) error {
			vendor, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
			if err != nil {
				return err
			}
			return vendor.RequireActive()
		},
		mutate: func(o *order.Order) error {
			return o.AssignVendor(cmd.VendorID(), cmd.Actor().ID(), cmd.Note())
		},
	})
	if err != nil {
		return queries.OrderDetails{}, err
	}
	return h.transition.assembler.Assemble(ctx, o.ID())
}
