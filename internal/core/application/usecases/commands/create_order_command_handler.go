package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// CreateOrderCommandHandler places an order in NEW status and writes its
// first history row in the same transaction.
//
// Checks run in this order, and nothing is written unless all pass:
// role, amounts and total, client account, service existence and activity.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	assembler  OrderAssembler
	observer   TransitionObserver
	policy     services.TransitionPolicy
}

func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	assembler OrderAssembler,
	policy services.TransitionPolicy,
	observer TransitionObserver,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		assembler:  assembler,
		observer:   observerOrNoop(observer),
		policy:     policy,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (queries.OrderDetails, error) {
	if err := cmd.Validate(); err != nil {
		return queries.OrderDetails{}, err
	}
	if d := h.policy.CanCreate(cmd.Actor()); !d.Allowed() {
		return queries.OrderDetails{}, d.Err()
	}

	pricing, err := order.NewPricing(cmd.Subtotal(), cmd.Commission(), cmd.Total())
	if err != nil {
		return queries.OrderDetails{}, err
	}
	clientID := cmd.Actor().ID()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.OrderDetails{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.UserRepository().Exists(ctx, clientID)
	if err != nil {
		return queries.OrderDetails{}, err
	}
	if !exists {
		return queries.OrderDetails{}, errs.NewObjectNotFoundError("user", clientID.String())
	}

	service, err := uow.ServiceRepository().Get(ctx, cmd.ServiceID())
	if err != nil {
		return queries.OrderDetails{}, err
	}
	if err := service.RequireActive(); err != nil {
		return queries.OrderDetails{}, err
	}

	o, err := order.NewOrder(clientID, cmd.ServiceID(), pricing, cmd.Params(), cmd.DueAt())
	if err != nil {
		return queries.OrderDetails{}, err
	}
	if err := uow.OrderRepository().Add(ctx, o); err != nil {
		return queries.OrderDetails{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.OrderDetails{}, err
	}

	h.observer.ObserveTransition("create", o.Status())
	return h.assembler.Assemble(ctx, o.ID())
}
