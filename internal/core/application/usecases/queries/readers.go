package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderReader is the read model over orders and their related records.
// Lookups of a single record return ObjectNotFound when it is absent, except
// User, Vendor and Service which return nil for a dangling reference.
type OrderReader interface {
	Header(ctx context.Context, id kernel.ID) (OrderHeader, error)
	User(ctx context.Context, id kernel.ID) (*UserView, error)
	Vendor(ctx context.Context, id kernel.ID) (*VendorView, error)
	Service(ctx context.Context, id kernel.ID) (*ServiceView, error)
	History(ctx context.Context, orderID kernel.ID) ([]HistoryView, error)
	Comments(ctx context.Context, orderID kernel.ID) ([]CommentView, error)
	Files(ctx context.Context, orderID kernel.ID) ([]FileView, error)
	// Offers returns at most limit offers, newest first.
	Offers(ctx context.Context, orderID kernel.ID, limit int) ([]OfferView, error)

	// Find returns one page of orders matching filter, newest first with ties
	// broken by id descending.
	Find(ctx context.Context, filter order.Filter, page kernel.Page) ([]OrderHeader, error)
	// Count counts the orders matching filter, ignoring paging.
	Count(ctx context.Context, filter order.Filter) (int64, error)
	// FindOverdue returns live orders whose deadline is before now.
	FindOverdue(ctx context.Context, now time.Time) ([]OrderHeader, error)
}

// ServiceFilter narrows a service listing.
type ServiceFilter struct {
	OnlyActive bool
	Category   *string
}

// CatalogReader is the read model over services and vendors.
type CatalogReader interface {
	// Services are ordered by category, then name.
	Services(ctx context.Context, filter ServiceFilter) ([]ServiceView, error)
	// Vendors are ordered newest first and carry the full profile.
	Vendors(ctx context.Context, onlyActive bool) ([]VendorView, error)
}

// UserFilter narrows an account listing.
type UserFilter struct {
	Role     *actor.Role
	VendorID *kernel.ID
}

// UserReader is the read model over accounts.
type UserReader interface {
	// Users returns one page of accounts, newest first with ties broken by id
	// descending.
	Users(ctx context.Context, filter UserFilter, page kernel.Page) ([]UserView, error)
	// UserByID returns ObjectNotFound when the account does not exist.
	UserByID(ctx context.Context, id kernel.ID) (UserView, error)
}
