package queries

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListServicesQueryIsNotConstructed = errors.New(
		"ListServicesQuery must be created via NewListServicesQuery constructor",
	)
	ErrListVendorsQueryIsNotConstructed = errors.New(
		"ListVendorsQuery must be created via NewListVendorsQuery constructor",
	)
)

// ListServicesQuery lists catalog services, optionally only active ones of a
// single category.
type ListServicesQuery struct {
	filter ServiceFilter

	guard guard.ConstructorGuard
}

func NewListServicesQuery(onlyActive bool, category string) ListServicesQuery {
	filter := ServiceFilter{OnlyActive: onlyActive}
	if c := strings.TrimSpace(category); c != "" {
		filter.Category = &c
	}
	return ListServicesQuery{filter: filter, guard: guard.NewConstructorGuard()}
}

func (q ListServicesQuery) Validate() error {
	return q.guard.Validate(ErrListServicesQueryIsNotConstructed)
}

func (q ListServicesQuery) Filter() ServiceFilter {
	return q.filter
}

// ListVendorsQuery lists vendors. Admins receive full profiles, everyone
// else the public summary.
type ListVendorsQuery struct {
	actor      actor.Actor
	onlyActive bool

	guard guard.ConstructorGuard
}

func NewListVendorsQuery(a actor.Actor, onlyActive bool) (ListVendorsQuery, error) {
	if err := a.Validate(); err != nil {
		return ListVendorsQuery{}, err
	}
	return ListVendorsQuery{actor: a, onlyActive: onlyActive, guard: guard.NewConstructorGuard()}, nil
}

func (q ListVendorsQuery) Validate() error {
	return q.guard.Validate(ErrListVendorsQueryIsNotConstructed)
}

func (q ListVendorsQuery) Actor() actor.Actor {
	return q.actor
}

func (q ListVendorsQuery) OnlyActive() bool {
	return q.onlyActive
}
