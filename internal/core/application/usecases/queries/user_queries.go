package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/pkg/guard"
)

const (
	DefaultUserPageTake = 50
	MaxUserPageTake     = 200
)

var (
	ErrListUsersQueryIsNotConstructed = errors.New(
		"ListUsersQuery must be created via NewListUsersQuery constructor",
	)
	ErrGetUserQueryIsNotConstructed = errors.New(
		"GetUserQuery must be created via NewGetUserQuery constructor",
	)
)

// ListUsersQuery lists accounts for admins, optionally by role or vendor.
type ListUsersQuery struct {
	actor  actor.Actor
	filter UserFilter
	page   kernel.Page

	guard guard.ConstructorGuard
}

// NewListUsersQuery rejects a vendor filter combined with a role that can
// never be linked to a vendor. Take defaults to DefaultUserPageTake and is
// clamped to [1, MaxUserPageTake].
func NewListUsersQuery(a actor.Actor, filter UserFilter, take, skip *int) (ListUsersQuery, error) {
	if err := a.Validate(); err != nil {
		return ListUsersQuery{}, err
	}
	if filter.Role != nil {
		if err := filter.Role.Validate(); err != nil {
			return ListUsersQuery{}, err
		}
		if filter.VendorID != nil {
			if err := user.RequireNoVendorLink(*filter.Role); err != nil {
				return ListUsersQuery{}, err
			}
		}
	}
	return ListUsersQuery{
		actor:  a,
		filter: filter,
		page:   kernel.NewBoundedPage(take, skip, DefaultUserPageTake, MaxUserPageTake),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListUsersQuery) Validate() error {
	return q.guard.Validate(ErrListUsersQueryIsNotConstructed)
}

func (q ListUsersQuery) Actor() actor.Actor { return q.actor }
func (q ListUsersQuery) Filter() UserFilter { return q.filter }
func (q ListUsersQuery) Page() kernel.Page  { return q.page }

// GetUserQuery reads one account.
type GetUserQuery struct {
	actor  actor.Actor
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserQuery(a actor.Actor, userID kernel.ID) (GetUserQuery, error) {
	if err := errors.Join(a.Validate(), userID.Validate()); err != nil {
		return GetUserQuery{}, err
	}
	return GetUserQuery{actor: a, userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

func (q GetUserQuery) Actor() actor.Actor { return q.actor }
func (q GetUserQuery) UserID() kernel.ID  { return q.userID }
