package cmd

import (
	"log/slog"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/metrics"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/readmodel"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
	uowFactory *postgres.GormUnitOfWorkFactory
	orders     *readmodel.GormOrderReader
	catalog    *readmodel.GormCatalogReader
	users      *readmodel.GormUserReader
	policy     services.TransitionPolicy
}

// NewCompositionRoot fails only on an unknown vendor progression.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	progression, err := services.ParseVendorProgression(config.VendorStatusProgression)
	if err != nil {
		return CompositionRoot{}, err
	}
	return CompositionRoot{
		config:     config,
		logger:     logger,
		metrics:    metrics.New(),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		orders:     readmodel.NewGormOrderReader(gormDB),
		catalog:    readmodel.NewGormCatalogReader(gormDB),
		users:      readmodel.NewGormUserReader(gormDB),
		policy:     services.NewTransitionPolicy(progression),
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) assembler() commands.OrderAssembler {
	return queries.NewOrderDetailsAssembler(c.orders)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateAssignVendorCommandHandler() commands.AssignVendorCommandHandler {
	return commands.NewAssignVendorCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	return commands.NewRejectOrderCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	return commands.NewChangeStatusCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy, c.metrics)
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() commands.AddCommentCommandHandler {
	return commands.NewAddCommentCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy)
}

func (c *CompositionRoot) CreateAddFileCommandHandler() commands.AddFileCommandHandler {
	return commands.NewAddFileCommandHandler(c.orderUoWFactory(), c.assembler(), c.policy)
}

func (c *CompositionRoot) CreateCatalogCommandHandler() commands.CatalogCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCatalogCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateUserCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOverdueOrdersQueryHandler() queries.GetOverdueOrdersQueryHandler {
	return queries.NewGetOverdueOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateListServicesQueryHandler() queries.ListServicesQueryHandler {
	return queries.NewListServicesQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateListVendorsQueryHandler() queries.ListVendorsQueryHandler {
	return queries.NewListVendorsQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.users)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.users)
}

// CreateServer wires every handler into the HTTP transport.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:  c.CreateCreateOrderCommandHandler(),
		AssignVendor: c.CreateAssignVendorCommandHandler(),
		AcceptOrder:  c.CreateAcceptOrderCommandHandler(),
		RejectOrder:  c.CreateRejectOrderCommandHandler(),
		ChangeStatus: c.CreateChangeStatusCommandHandler(),
		CancelOrder:  c.CreateCancelOrderCommandHandler(),
		AddComment:   c.CreateAddCommentCommandHandler(),
		AddFile:      c.CreateAddFileCommandHandler(),
		Catalog:      c.CreateCatalogCommandHandler(),
		CreateUser:   c.CreateCreateUserCommandHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		ListOrders:   c.CreateListOrdersQueryHandler(),
		ListServices: c.CreateListServicesQueryHandler(),
		ListVendors:  c.CreateListVendorsQueryHandler(),
		ListUsers:    c.CreateListUsersQueryHandler(),
		GetUser:      c.CreateGetUserQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueOrdersQueryHandler(), c.metrics, c.config.OverdueCheckSchedule, c.logger)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
