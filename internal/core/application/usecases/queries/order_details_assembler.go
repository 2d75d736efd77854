package queries

import (
	"cmp"
	"context"
	"slices"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"golang.org/x/sync/errgroup"
)

// OrderDetailsAssembler composes an order with its client, vendor, service,
// history, comments, files and newest offers. Related records are read
// concurrently.
//
// Example:
//
//	assembler := NewOrderDetailsAssembler(reader)
//	details, err := assembler.Assemble(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(details.Status, len(details.History))
type OrderDetailsAssembler struct {
	reader OrderReader
}

func NewOrderDetailsAssembler(reader OrderReader) *OrderDetailsAssembler {
	return &OrderDetailsAssembler{reader: reader}
}

// Assemble loads the order header and composes the full view.
func (a *OrderDetailsAssembler) Assemble(ctx context.Context, id kernel.ID) (OrderDetails, error) {
	header, err := a.reader.Header(ctx, id)
	if err != nil {
		return OrderDetails{}, err
	}
	return a.AssembleHeader(ctx, header)
}

// AssembleHeader composes the full view around an already loaded header.
func (a *OrderDetailsAssembler) AssembleHeader(ctx context.Context, header OrderHeader) (OrderDetails, error) {
	orderID, err := kernel.NewID(header.ID)
	if err != nil {
		return OrderDetails{}, err
	}
	details := OrderDetails{OrderHeader: header}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		userID, err := kernel.NewID(header.UserID)
		if err != nil {
			return err
		}
		details.User, err = a.reader.User(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		serviceID, err := kernel.NewID(header.ServiceID)
		if err != nil {
			return err
		}
		details.Service, err = a.reader.Service(gctx, serviceID)
		return err
	})
	if header.VendorID != nil {
		g.Go(func() (err error) {
			vendorID, err := kernel.NewID(*header.VendorID)
			if err != nil {
				return err
			}
			details.Vendor, err = a.reader.Vendor(gctx, vendorID)
			return err
		})
	}
	g.Go(func() (err error) {
		details.History, err = a.reader.History(gctx, orderID)
		return err
	})
	g.Go(func() (err error) {
		details.Comments, err = a.reader.Comments(gctx, orderID)
		return err
	})
	g.Go(func() (err error) {
		details.Files, err = a.reader.Files(gctx, orderID)
		return err
	})
	g.Go(func() (err error) {
		details.Offers, err = a.reader.Offers(gctx, orderID, order.MaxOffersInAggregate)
		return err
	})

	if err := g.Wait(); err != nil {
		return OrderDetails{}, err
	}

	normalize(&details)
	return details, nil
}

// normalize fixes the ordering of child collections regardless of the
// reader: history, comments and files oldest first; offers newest first and
// capped.
func normalize(d *OrderDetails) {
	slices.SortStableFunc(d.History, func(x, y HistoryView) int {
		return cmp.Or(x.CreatedAt.Compare(y.CreatedAt), cmp.Compare(x.ID, y.ID))
	})
	slices.SortStableFunc(d.Comments, func(x, y CommentView) int {
		return cmp.Or(x.CreatedAt.Compare(y.CreatedAt), cmp.Compare(x.ID, y.ID))
	})
	slices.SortStableFunc(d.Files, func(x, y FileView) int {
		return cmp.Or(x.CreatedAt.Compare(y.CreatedAt), cmp.Compare(x.ID, y.ID))
	})
	slices.SortStableFunc(d.Offers, func(x, y OfferView) int {
		return cmp.Or(y.CreatedAt.Compare(x.CreatedAt), cmp.Compare(y.ID, x.ID))
	})
	if len(d.Offers) > order.MaxOffersInAggregate {
		d.Offers = d.Offers[:order.MaxOffersInAggregate]
	}

	if d.History == nil {
		d.History = []HistoryView{}
	}
	if d.Comments == nil {
		d.Comments = []CommentView{}
	}
	if d.Files == nil {
		d.Files = []FileView{}
	}
	if d.Offers == nil {
		d.Offers = []OfferView{}
	}
}
