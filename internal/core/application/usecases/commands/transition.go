package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// transition is the shared skeleton of every order status change:
//  1. read the order without a lock and evaluate the policy, failing fast
//  2. begin a transaction and re-read the order FOR UPDATE
//  3. re-evaluate the policy against the locked row
//  4. run prepare (extra reads inside the transaction), then mutate the
//     aggregate and persist it with its history rows
//  5. commit, then assemble the view from committed state
type transition struct {
	uowFactory UoWFactory
	assembler  OrderAssembler
	observer   TransitionObserver
}

type transitionStep struct {
	operation string
	orderID   kernel.ID
	decide    func(o *order.Order) services.Decision
	// prepare runs inside the transaction before the policy re-check. It may
	// be nil.
	prepare func(ctx context.Context, uow UoW) error
	mutate  func(o *order.Order) error
}

func (t transition) run(ctx context.Context, step transitionStep) (*order.Order, error) {
	uow := t.uowFactory.Create()

	current, err := uow.OrderRepository().Get(ctx, step.orderID)
	if err != nil {
		return nil, err
	}
	if d := step.decide(current); !d.Allowed() {
		return nil, d.Err()
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if step.prepare != nil {
		if err := step.prepare(ctx, uow); err != nil {
			return nil, err
		}
	}

	repo := uow.OrderRepository()
	locked, err := repo.GetForUpdate(ctx, step.orderID)
	if err != nil {
		return nil, err
	}
	if d := step.decide(locked); !d.Allowed() {
		return nil, d.Err()
	}
	if err := step.mutate(locked); err != nil {
		return nil, err
	}
	if err := repo.Update(ctx, locked); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	observerOrNoop(t.observer).ObserveTransition(step.operation, locked.Status())
	return locked, nil
}
