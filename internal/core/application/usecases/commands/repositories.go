// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CatalogRepoFactory provides access to services and vendors within a transaction.
	CatalogRepoFactory interface {
		ServiceRepository() ports.ServiceRepository
		VendorRepository() ports.VendorRepository
	}

	// AnnotationRepoFactory provides access to comments and files within a transaction.
	AnnotationRepoFactory interface {
		CommentRepository() ports.CommentRepository
		FileRepository() ports.FileRepository
	}

	// UserRepoFactory provides access to user accounts within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// CatalogUoW manages transactions for catalog-only operations.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// UserUoW manages transactions for account provisioning. Vendor staff
	// accounts read the vendor they are linked to.
	UserUoW interface {
		TxManager
		CatalogRepoFactory
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW manages transactions that touch orders and the records around them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   // ... mutate o
	//   err = uow.OrderRepository().Update(ctx, o)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
		AnnotationRepoFactory
		UserRepoFactory
	}

	// UoWFactory creates new unit of work instances for order operations.
	UoWFactory interface {
		Create() UoW
	}
)

// OrderAssembler builds the order view returned by every order command once
// its transaction has committed.
type OrderAssembler interface {
	Assemble(ctx context.Context, id kernel.ID) (queries.OrderDetails, error)
}

// TransitionObserver is notified after a status change has committed.
type TransitionObserver interface {
	ObserveTransition(operation string, to order.Status)
}

type noopObserver struct{}

func (noopObserver) ObserveTransition(string, order.Status) {}

func observerOrNoop(o TransitionObserver) TransitionObserver {
	if o == nil {
		return noopObserver{}
	}
	return o
}
