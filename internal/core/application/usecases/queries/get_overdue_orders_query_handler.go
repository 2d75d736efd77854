package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
)

type GetOverdueOrdersQueryHandler struct {
	reader OrderReader
}

func NewGetOverdueOrdersQueryHandler(reader OrderReader) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{reader: reader}
}

// Handle returns overdue order headers, oldest deadline first. The reader
// narrows the candidates; the order rule has the final say.
func (h GetOverdueOrdersQueryHandler) Handle(ctx context.Context, query GetOverdueOrdersQuery) ([]OrderHeader, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	candidates, err := h.reader.FindOverdue(ctx, query.Now())
	if err != nil {
		return nil, err
	}

	overdue := make([]OrderHeader, 0, len(candidates))
	for _, header := range candidates {
		status, err := order.ParseStatus(header.Status)
		if err != nil {
			return nil, err
		}
		if order.IsOverdueAt(status, header.DueAt, query.Now()) {
			overdue = append(overdue, header)
		}
	}
	return overdue, nil
}
