// Package ports defines the persistence contracts of the marketplace core.
// Adapters implement them; command handlers depend only on these interfaces.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates together with their status
// history.
type OrderRepository interface {
	// Add inserts a new order, assigns its id and writes every pending status
	// change as a history row in the same transaction.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order row and appends its pending status changes.
	// Returns ObjectNotFound if the row is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get reads an order without locking it.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetForUpdate reads an order and holds its row lock until the enclosing
	// transaction ends. Concurrent transitions on one order serialize here.
	GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error)
}
