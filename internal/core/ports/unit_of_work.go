package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin run inside the transaction; before Begin they use the plain
// connection.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ServiceRepository() ServiceRepository
	VendorRepository() VendorRepository
	UserRepository() UserRepository
	CommentRepository() CommentRepository
	FileRepository() FileRepository
}
