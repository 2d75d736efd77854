package services

import (
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// UserPolicy guards account provisioning and lookups.
type UserPolicy struct{}

func NewUserPolicy() UserPolicy {
	return UserPolicy{}
}

// CanManage allows only admins to create and list accounts.
func (UserPolicy) CanManage(a actor.Actor, action string) Decision {
	if !a.IsAdmin() {
		return deny(errs.NewForbiddenErrorWithReason(action, "admin only"))
	}
	return allow()
}

// CanView allows admins and the account holder.
func (UserPolicy) CanView(a actor.Actor, id kernel.ID) Decision {
	if a.IsAdmin() || a.ID().IsEqual(id) {
		return allow()
	}
	return deny(errs.NewForbiddenError("get user"))
}
