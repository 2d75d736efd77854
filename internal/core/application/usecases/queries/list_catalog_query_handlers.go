package queries

import "context"

type ListServicesQueryHandler struct {
	reader CatalogReader
}

func NewListServicesQueryHandler(reader CatalogReader) ListServicesQueryHandler {
	return ListServicesQueryHandler{reader: reader}
}

func (h ListServicesQueryHandler) Handle(ctx context.Context, query ListServicesQuery) ([]ServiceView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.Services(ctx, query.Filter())
}

type ListVendorsQueryHandler struct {
	reader CatalogReader
}

func NewListVendorsQueryHandler(reader CatalogReader) ListVendorsQueryHandler {
	return ListVendorsQueryHandler{reader: reader}
}

func (h ListVendorsQueryHandler) Handle(ctx context.Context, query ListVendorsQuery) ([]VendorView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendors, err := h.reader.Vendors(ctx, query.OnlyActive())
	if err != nil {
		return nil, err
	}
	if query.Actor().IsAdmin() {
		return vendors, nil
	}

	public := make([]VendorView, 0, len(vendors))
	for _, v := range vendors {
		public = append(public, v.Public())
	}
	return public, nil
}
