package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// StatusChange is an audit row waiting to be persisted with its order.
type StatusChange struct {
	Status    Status
	ChangedBy kernel.ID
	Note      *string
}

// HistoryEntry is a persisted, immutable StatusChange.
type HistoryEntry struct {
	ID        kernel.ID
	OrderID   kernel.ID
	Status    Status
	ChangedBy kernel.ID
	Note      *string
	CreatedAt time.Time
}
