package queries

import (
	"context"

	"marketplace/internal/core/domain/services"

	"golang.org/x/sync/errgroup"
)

// assembleConcurrency bounds how many orders of one page are assembled at
// once.
const assembleConcurrency = 4

// ListOrdersQueryHandler returns one page of assembled orders together with
// the total count for the same filter.
type ListOrdersQueryHandler struct {
	reader     OrderReader
	assembler  *OrderDetailsAssembler
	visibility services.VisibilityPolicy
}

func NewListOrdersQueryHandler(reader OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		reader:     reader,
		assembler:  NewOrderDetailsAssembler(reader),
		visibility: services.NewVisibilityPolicy(),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	filter, err := h.visibility.Scope(query.Actor(), query.Filter())
	if err != nil {
		return OrderPage{}, err
	}

	page := query.Page()
	result := OrderPage{Take: page.Take(), Skip: page.Skip()}

	var headers []OrderHeader
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		result.Total, err = h.reader.Count(gctx, filter)
		return err
	})
	g.Go(func() (err error) {
		headers, err = h.reader.Find(gctx, filter, page)
		return err
	})
	if err := g.Wait(); err != nil {
		return OrderPage{}, err
	}

	result.Rows = make([]OrderDetails, len(headers))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(assembleConcurrency)
	for i, header := range headers {
		g.Go(func() (err error) {
			result.Rows[i], err = h.assembler.AssembleHeader(gctx, header)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return OrderPage{}, err
	}

	return result, nil
}
