package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
)

type ListUsersQueryHandler struct {
	reader UserReader
	policy services.UserPolicy
}

func NewListUsersQueryHandler(reader UserReader) ListUsersQueryHandler {
	return ListUsersQueryHandler{reader: reader, policy: services.NewUserPolicy()}
}

func (h ListUsersQueryHandler) Handle(ctx context.Context, query ListUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if d := h.policy.CanManage(query.Actor(), "list users"); !d.Allowed() {
		return nil, d.Err()
	}
	return h.reader.Users(ctx, query.Filter(), query.Page())
}

type GetUserQueryHandler struct {
	reader UserReader
	policy services.UserPolicy
}

func NewGetUserQueryHandler(reader UserReader) GetUserQueryHandler {
	return GetUserQueryHandler{reader: reader, policy: services.NewUserPolicy()}
}

// Handle checks access before the lookup, so a forbidden caller cannot tell
// whether the account exists.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}
	if d := h.policy.CanView(query.Actor(), query.UserID()); !d.Allowed() {
		return UserView{}, d.Err()
	}
	return h.reader.UserByID(ctx, query.UserID())
}
