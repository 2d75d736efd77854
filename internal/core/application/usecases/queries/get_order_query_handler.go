package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
)

// GetOrderQueryHandler returns an assembled order. Visibility is checked on
// the header before any related record is read.
type GetOrderQueryHandler struct {
	reader     OrderReader
	assembler  *OrderDetailsAssembler
	visibility services.VisibilityPolicy
}

func NewGetOrderQueryHandler(reader OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		reader:     reader,
		assembler:  NewOrderDetailsAssembler(reader),
		visibility: services.NewVisibilityPolicy(),
	}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	header, err := h.reader.Header(ctx, query.OrderID())
	if err != nil {
		return OrderDetails{}, err
	}

	ownership, err := header.Ownership()
	if err != nil {
		return OrderDetails{}, err
	}
	if err := h.visibility.RequireCanSee(query.Actor(), ownership); err != nil {
		return OrderDetails{}, err
	}

	return h.assembler.AssembleHeader(ctx, header)
}

// Ownership projects the header onto the visibility inputs.
func (h OrderHeader) Ownership() (order.Ownership, error) {
	userID, err := kernel.NewID(h.UserID)
	if err != nil {
		return order.Ownership{}, err
	}
	vendorID, err := kernel.OptionalID(h.VendorID)
	if err != nil {
		return order.Ownership{}, err
	}
	return order.Ownership{UserID: userID, VendorID: vendorID}, nil
}
