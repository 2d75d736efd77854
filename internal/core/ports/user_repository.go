package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/user"
)

// UserRepository persists marketplace accounts.
type UserRepository interface {
	// Add fails with InvalidState when the email is already registered.
	Add(ctx context.Context, account *user.User) error
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}
