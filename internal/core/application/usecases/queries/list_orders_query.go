package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders visible to an actor. The requested filter is
// narrowed by the visibility policy before it reaches the store.
type ListOrdersQuery struct {
	actor  actor.Actor
	filter order.Filter
	page   kernel.Page

	guard guard.ConstructorGuard
}

// NewListOrdersQuery clamps take to [1, 100] (default 20) and skip to >= 0.
func NewListOrdersQuery(a actor.Actor, filter order.Filter, take, skip *int) (ListOrdersQuery, error) {
	if err := a.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{
		actor:  a,
		filter: filter,
		page:   kernel.NewPage(take, skip),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() actor.Actor {
	return q.actor
}

func (q ListOrdersQuery) Filter() order.Filter {
	return q.filter
}

func (q ListOrdersQuery) Page() kernel.Page {
	return q.page
}
