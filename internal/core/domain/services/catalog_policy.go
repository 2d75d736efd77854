package services

import (
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/pkg/errs"
)

// CatalogPolicy guards catalog management. Reading the catalog is open to
// every authenticated actor.
type CatalogPolicy struct{}

func NewCatalogPolicy() CatalogPolicy {
	return CatalogPolicy{}
}

// CanManage allows only admins to create, activate or deactivate services
// and vendors.
func (CatalogPolicy) CanManage(a actor.Actor, action string) Decision {
	if !a.IsAdmin() {
		return deny(errs.NewForbiddenErrorWithReason(action, "admin only"))
	}
	return allow()
}
