package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/domain/services"
)

// CreateUserCommandHandler lets an admin provision client, admin and vendor
// staff accounts. A vendor staff account is bound to an existing vendor;
// that binding is what later scopes the account to the vendor's orders.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
	policy     services.UserPolicy
}

func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory, policy: services.NewUserPolicy()}
}

func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (queries.UserView, error) {
	if err := cmd.Validate(); err != nil {
		return queries.UserView{}, err
	}
	if d := h.policy.CanManage(cmd.Actor(), "create user"); !d.Allowed() {
		return queries.UserView{}, d.Err()
	}

	account, err := user.NewUser(cmd.Name(), cmd.Email(), cmd.Phone(), cmd.Role(), cmd.VendorID())
	if err != nil {
		return queries.UserView{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return queries.UserView{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if vendorID := account.VendorID(); vendorID != nil {
		if _, err := uow.VendorRepository().Get(ctx, *vendorID); err != nil {
			return queries.UserView{}, err
		}
	}
	if err := uow.UserRepository().Add(ctx, account); err != nil {
		return queries.UserView{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return queries.UserView{}, err
	}
	return userView(account), nil
}

func userView(u *user.User) queries.UserView {
	view := queries.UserView{
		ID:        u.ID().Int64(),
		Name:      u.Name(),
		Phone:     u.Phone(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
	if v := u.VendorID(); v != nil {
		id := v.Int64()
		view.VendorID = &id
	}
	return view
}
