package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/catalog"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	clientID      = kernel.MustNewID(1)
	adminID       = kernel.MustNewID(2)
	vendorUserID  = kernel.MustNewID(3)
	serviceID     = kernel.MustNewID(10)
	vendorID      = kernel.MustNewID(20)
	otherVendorID = kernel.MustNewID(21)
	orderID       = kernel.MustNewID(100)
)

func newActor(t *testing.T, id kernel.ID, role actor.Role, linked *kernel.ID) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(id, role, linked)
	require.NoError(t, err)
	return a
}

func clientActor(t *testing.T) actor.Actor { return newActor(t, clientID, actor.Client, nil) }
func adminActor(t *testing.T) actor.Actor  { return newActor(t, adminID, actor.Admin, nil) }
func vendorActor(t *testing.T) actor.Actor { return newActor(t, vendorUserID, actor.Vendor, &vendorID) }

// persistedOrder returns a NEW order with orderID already assigned.
func persistedOrder(t *testing.T) *order.Order {
	t.Helper()
	pricing, err := order.NewPricing(1000, 100, 1100)
	require.NoError(t, err)
	o, err := order.NewOrder(clientID, serviceID, pricing, []byte(`{"size":"L"}`), nil)
	require.NoError(t, err)
	require.NoError(t, o.SetPersistedID(orderID, time.Now()))
	o.ClearPendingChanges()
	return o
}

// MockOrderRepository is a mock implementation of ports.OrderRepository.
type MockOrderRepository struct{ mock.Mock }

var _ ports.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

// MockServiceRepository is a mock implementation of ports.ServiceRepository.
type MockServiceRepository struct{ mock.Mock }

func (m *MockServiceRepository) Add(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*catalog.Service)
	return s, args.Error(1)
}

// MockVendorRepository is a mock implementation of ports.VendorRepository.
type MockVendorRepository struct{ mock.Mock }

func (m *MockVendorRepository) Add(ctx context.Context, vendor *catalog.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Update(ctx context.Context, vendor *catalog.Vendor) error {
	args := m.Called(ctx, vendor)
	return args.Error(0)
}

func (m *MockVendorRepository) Get(ctx context.Context, id kernel.ID) (*catalog.Vendor, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*catalog.Vendor)
	return v, args.Error(1)
}

// MockUserRepository is a mock implementation of ports.UserRepository.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, account *user.User) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockCommentRepository is a mock implementation of ports.CommentRepository.
type MockCommentRepository struct{ mock.Mock }

func (m *MockCommentRepository) Add(ctx context.Context, comment *order.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// MockFileRepository is a mock implementation of ports.FileRepository.
type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Add(ctx context.Context, file *order.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

// MockUoW mocks the transaction calls. Repository getters hand out the
// embedded repositories without recording a call.
type MockUoW struct {
	mock.Mock

	Orders   ports.OrderRepository
	Services ports.ServiceRepository
	Vendors  ports.VendorRepository
	Users    ports.UserRepository
	Comments ports.CommentRepository
	Files    ports.FileRepository
}

var (
	_ commands.UoW        = (*MockUoW)(nil)
	_ commands.CatalogUoW = (*MockUoW)(nil)
	_ commands.UserUoW    = (*MockUoW)(nil)
)

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository     { return m.Orders }
func (m *MockUoW) ServiceRepository() ports.ServiceRepository { return m.Services }
func (m *MockUoW) VendorRepository() ports.VendorRepository   { return m.Vendors }
func (m *MockUoW) UserRepository() ports.UserRepository       { return m.Users }
func (m *MockUoW) CommentRepository() ports.CommentRepository { return m.Comments }
func (m *MockUoW) FileRepository() ports.FileRepository       { return m.Files }

// expectCommit registers a successful Begin, Commit and the deferred Rollback.
func (m *MockUoW) expectCommit(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Commit", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// expectRollback registers a Begin that ends in Rollback only.
func (m *MockUoW) expectRollback(ctx context.Context) {
	m.On("Begin", ctx).Return(nil).Once()
	m.On("Rollback", ctx).Return(nil).Once()
}

// MockUoWFactory is a mock implementation of commands.UoWFactory.
type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// MockCatalogUoWFactory is a mock implementation of commands.CatalogUoWFactory.
type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

// MockUserUoWFactory is a mock implementation of commands.UserUoWFactory.
type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// MockAssembler is a mock implementation of commands.OrderAssembler.
type MockAssembler struct{ mock.Mock }

func (m *MockAssembler) Assemble(ctx context.Context, id kernel.ID) (queries.OrderDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.OrderDetails), args.Error(1)
}

// MockObserver is a mock implementation of commands.TransitionObserver.
type MockObserver struct{ mock.Mock }

func (m *MockObserver) ObserveTransition(operation string, to order.Status) {
	m.Called(operation, to)
}

// memoryOrders is an order store that records history rows the way the
// postgres repository does: pending changes are flushed on Add and Update.
type memoryOrders struct {
	mu      sync.Mutex
	nextID  int64
	orders  map[kernel.ID]*order.Order
	history map[kernel.ID][]order.StatusChange
}

var _ ports.OrderRepository = (*memoryOrders)(nil)

func newMemoryOrders() *memoryOrders {
	return &memoryOrders{
		nextID:  orderID.Int64(),
		orders:  map[kernel.ID]*order.Order{},
		history: map[kernel.ID][]order.StatusChange{},
	}
}

func (r *memoryOrders) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := kernel.MustNewID(r.nextID)
	r.nextID++
	if err := o.SetPersistedID(id, time.Now()); err != nil {
		return err
	}
	r.orders[id] = o
	r.flush(o)
	return nil
}

func (r *memoryOrders) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID()] = o
	r.flush(o)
	return nil
}

func (r *memoryOrders) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

func (r *memoryOrders) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.Get(ctx, id)
}

func (r *memoryOrders) flush(o *order.Order) {
	r.history[o.ID()] = append(r.history[o.ID()], o.PendingChanges()...)
	o.ClearPendingChanges()
}

func (r *memoryOrders) statuses(id kernel.ID) []order.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]order.Status, 0, len(r.history[id]))
	for _, c := range r.history[id] {
		out = append(out, c.Status)
	}
	return out
}

func queriesDetails(status order.Status) queries.OrderDetails {
	return queries.OrderDetails{OrderHeader: queries.OrderHeader{ID: orderID.Int64(), Status: status.String()}}
}
