package order

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// Offer is a vendor's price proposal for an order. Offers are written by a
// negotiation flow outside this service and are only read here.
type Offer struct {
	ID              kernel.ID
	OrderID         kernel.ID
	VendorID        kernel.ID
	Subtotal        int64
	Commission      int64
	Total           int64
	DueAt           *time.Time
	Note            *string
	Status          string
	CreatedAt       time.Time
	DecidedAt       *time.Time
	DecidedByUserID *kernel.ID
}

// MaxOffersInAggregate caps how many of the newest offers an order view shows.
const MaxOffersInAggregate = 10
