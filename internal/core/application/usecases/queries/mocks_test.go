package queries_test

import (
	"context"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Header(ctx context.Context, id kernel.ID) (queries.OrderHeader, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.OrderHeader), args.Error(1)
}

func (m *MockOrderReader) User(ctx context.Context, id kernel.ID) (*queries.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.UserView), args.Error(1)
}

func (m *MockOrderReader) Vendor(ctx context.Context, id kernel.ID) (*queries.VendorView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.VendorView), args.Error(1)
}

func (m *MockOrderReader) Service(ctx context.Context, id kernel.ID) (*queries.ServiceView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.ServiceView), args.Error(1)
}

func (m *MockOrderReader) History(ctx context.Context, orderID kernel.ID) ([]queries.HistoryView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.HistoryView), args.Error(1)
}

func (m *MockOrderReader) Comments(ctx context.Context, orderID kernel.ID) ([]queries.CommentView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.CommentView), args.Error(1)
}

func (m *MockOrderReader) Files(ctx context.Context, orderID kernel.ID) ([]queries.FileView, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.FileView), args.Error(1)
}

func (m *MockOrderReader) Offers(ctx context.Context, orderID kernel.ID, limit int) ([]queries.OfferView, error) {
	args := m.Called(ctx, orderID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OfferView), args.Error(1)
}

func (m *MockOrderReader) Find(ctx context.Context, filter order.Filter, page kernel.Page) ([]queries.OrderHeader, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderHeader), args.Error(1)
}

func (m *MockOrderReader) Count(ctx context.Context, filter order.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderReader) FindOverdue(ctx context.Context, now time.Time) ([]queries.OrderHeader, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderHeader), args.Error(1)
}

// expectEmptyRelations stubs every related-record read of an order with
// empty results.
func (m *MockOrderReader) expectEmptyRelations(h queries.OrderHeader) {
	orderID := kernel.MustNewID(h.ID)
	m.On("User", mock.Anything, kernel.MustNewID(h.UserID)).Return(&queries.UserView{ID: h.UserID}, nil)
	m.On("Service", mock.Anything, kernel.MustNewID(h.ServiceID)).Return(&queries.ServiceView{ID: h.ServiceID}, nil)
	if h.VendorID != nil {
		m.On("Vendor", mock.Anything, kernel.MustNewID(*h.VendorID)).Return(&queries.VendorView{ID: *h.VendorID}, nil)
	}
	m.On("History", mock.Anything, orderID).Return([]queries.HistoryView{}, nil)
	m.On("Comments", mock.Anything, orderID).Return([]queries.CommentView{}, nil)
	m.On("Files", mock.Anything, orderID).Return([]queries.FileView{}, nil)
	m.On("Offers", mock.Anything, orderID, order.MaxOffersInAggregate).Return([]queries.OfferView{}, nil)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) Services(ctx context.Context, filter queries.ServiceFilter) ([]queries.ServiceView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.ServiceView), args.Error(1)
}

func (m *MockCatalogReader) Vendors(ctx context.Context, onlyActive bool) ([]queries.VendorView, error) {
	args := m.Called(ctx, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.VendorView), args.Error(1)
}

type MockUserReader struct{ mock.Mock }

func (m *MockUserReader) Users(ctx context.Context, filter queries.UserFilter, page kernel.Page) ([]queries.UserView, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.UserView), args.Error(1)
}

func (m *MockUserReader) UserByID(ctx context.Context, id kernel.ID) (queries.UserView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.UserView), args.Error(1)
}
