package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/services"
)

// CatalogCommandHandler manages services and vendors on behalf of admins.
type CatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	policy     services.CatalogPolicy
}

func NewCatalogCommandHandler(uowFactory CatalogUoWFactory) CatalogCommandHandler {
	return CatalogCommandHandler{uowFactory: uowFactory, policy: services.NewCatalogPolicy()}
}

// CreateService adds a service and returns it.
func (h CatalogCommandHandler) CreateService(ctx context.Context, cmd CreateServiceCommand) (queries.ServiceView, error) {
	if err := cmd.Validate(); err != nil {
		return queries.ServiceView{}, err
	}
	if d := h.policy.CanManage(cmd.Actor(), "create service"); !d.Allowed() {
		return queries.ServiceView{}, d.Err()
	}

	service, err := catalog.NewService(cmd.Category(), cmd.Name(), cmd.Description(), cmd.IsActive())
	if err != nil {
		return queries.ServiceView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.ServiceView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ServiceRepository().Add(ctx, service); err != nil {
		return queries.ServiceView{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.ServiceView{}, err
	}
	return serviceView(service), nil
}

// SetServiceActive toggles a service. Orders already placed are unaffected.
func (h CatalogCommandHandler) SetServiceActive(ctx context.Context, cmd SetActiveCommand) (queries.ServiceView, error) {
	if err := cmd.Validate(); err != nil {
		return queries.ServiceView{}, err
	}
	if d := h.policy.CanManage(cmd.Actor(), "set service active"); !d.Allowed() {
		return queries.ServiceView{}, d.Err()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.ServiceView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ServiceRepository()
	service, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return queries.ServiceView{}, err
	}
	service.SetActive(cmd.Active())
	if err := repo.Update(ctx, service); err != nil {
		return queries.ServiceView{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.ServiceView{}, err
	}
	return serviceView(service), nil
}

// CreateVendor registers a vendor and returns its full profile.
func (h CatalogCommandHandler) CreateVendor(ctx context.Context, cmd CreateVendorCommand) (queries.VendorView, error) {
	if err := cmd.Validate(); err != nil {
		return queries.VendorView{}, err
	}
	if d := h.policy.CanManage(cmd.Actor(), "create vendor"); !d.Allowed() {
		return queries.VendorView{}, d.Err()
	}

	vendor, err := catalog.NewVendor(cmd.Name(), cmd.LegalName(), cmd.TaxID(), cmd.Contacts(), cmd.IsActive())
	if err != nil {
		return queries.VendorView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.VendorView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.VendorRepository().Add(ctx, vendor); err != nil {
		return queries.VendorView{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.VendorView{}, err
	}
	return vendorView(vendor), nil
}

// SetVendorActive toggles a vendor. Orders already assigned keep it.
func (h CatalogCommandHandler) SetVendorActive(ctx context.Context, cmd SetActiveCommand) (queries.VendorView, error) {
	if err := cmd.Validate(); err != nil {
		return queries.VendorView{}, err
	}
	if d := h.policy.CanManage(cmd.Actor(), "set vendor active"); !d.Allowed() {
		return queries.VendorView{}, d.Err()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.VendorView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.VendorRepository()
	vendor, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return queries.VendorView{}, err
	}
	vendor.SetActive(cmd.Active())
	if err := repo.Update(ctx, vendor); err != nil {
		return queries.VendorView{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.VendorView{}, err
	}
	return vendorView(vendor), nil
}

func serviceView(s *catalog.Service) queries.ServiceView {
	return queries.ServiceView{
		ID:          s.ID().Int64(),
		Category:    s.Category(),
		Name:        s.Name(),
		Description: s.Description(),
		IsActive:    s.IsActive(),
	}
}

func vendorView(v *catalog.Vendor) queries.VendorView {
	legalName := v.LegalName()
	return queries.VendorView{
		ID:        v.ID().Int64(),
		Name:      v.Name(),
		LegalName: &legalName,
		TaxID:     v.TaxID(),
		Contacts:  v.Contacts(),
		IsActive:  v.IsActive(),
		CreatedAt: v.CreatedAt(),
	}
}
