// Package http is the REST transport. Routes map one to one onto commands and
// queries; every failure is rendered through the error classification in
// internal/pkg/errs.
package http

import (
	"context"
	"net/http"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Handler is any command or query handler.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CatalogCommands manages services and vendors.
type CatalogCommands interface {
	CreateService(ctx context.Context, cmd commands.CreateServiceCommand) (queries.ServiceView, error)
	SetServiceActive(ctx context.Context, cmd commands.SetActiveCommand) (queries.ServiceView, error)
	CreateVendor(ctx context.Context, cmd commands.CreateVendorCommand) (queries.VendorView, error)
	SetVendorActive(ctx context.Context, cmd commands.SetActiveCommand) (queries.VendorView, error)
}

// Handlers are the use cases served over HTTP.
type Handlers struct {
	CreateOrder  Handler[commands.CreateOrderCommand, queries.OrderDetails]
	AssignVendor Handler[commands.AssignVendorCommand, queries.OrderDetails]
	AcceptOrder  Handler[commands.AcceptOrderCommand, queries.OrderDetails]
	RejectOrder  Handler[commands.RejectOrderCommand, queries.OrderDetails]
	ChangeStatus Handler[commands.ChangeStatusCommand, queries.OrderDetails]
	CancelOrder  Handler[commands.CancelOrderCommand, queries.OrderDetails]
	AddComment   Handler[commands.AddCommentCommand, queries.OrderDetails]
	AddFile      Handler[commands.AddFileCommand, queries.OrderDetails]
	Catalog      CatalogCommands
	CreateUser   Handler[commands.CreateUserCommand, queries.UserView]

	GetOrder     Handler[queries.GetOrderQuery, queries.OrderDetails]
	ListOrders   Handler[queries.ListOrdersQuery, queries.OrderPage]
	ListServices Handler[queries.ListServicesQuery, []queries.ServiceView]
	ListVendors  Handler[queries.ListVendorsQuery, []queries.VendorView]
	ListUsers    Handler[queries.ListUsersQuery, []queries.UserView]
	GetUser      Handler[queries.GetUserQuery, queries.UserView]
}

// Server implements ServerInterface on top of the application handlers.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

var _ ServerInterface = (*Server)(nil)

// respond runs a built command and renders its result with status.
func respond[In, Out any](c echo.Context, status int, h Handler[In, Out], in In, err error) error {
	if err != nil {
		return err
	}
	out, err := h.Handle(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(status, out)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req createOrderRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	serviceID, err := kernel.NewID(req.ServiceID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateOrderCommand(actorFrom(c), serviceID, req.ParamsJSON,
		*req.Subtotal, *req.Commission, *req.Total, req.DueAt)
	return respond(c, http.StatusCreated, s.h.CreateOrder, cmd, err)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context, params ListOrdersParams) error {
	var filter order.Filter
	if params.Status != nil {
		status, err := order.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}
	var err error
	if filter.UserID, err = kernel.OptionalID(params.UserID); err != nil {
		return err
	}
	if filter.VendorID, err = kernel.OptionalID(params.VendorID); err != nil {
		return err
	}
	if filter.ServiceID, err = kernel.OptionalID(params.ServiceID); err != nil {
		return err
	}

	query, err := queries.NewListOrdersQuery(actorFrom(c), filter, params.Take, params.Skip)
	return respond(c, http.StatusOK, s.h.ListOrders, query, err)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context, id int64) error {
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetOrderQuery(actorFrom(c), orderID)
	return respond(c, http.StatusOK, s.h.GetOrder, query, err)
}

// AssignVendor handles PATCH /api/v1/orders/{id}/assign.
func (s *Server) AssignVendor(c echo.Context, id int64) error {
	var req assignVendorRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	vendorID, err := kernel.NewID(req.VendorID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAssignVendorCommand(actorFrom(c), orderID, vendorID, req.Note)
	return respond(c, http.StatusOK, s.h.AssignVendor, cmd, err)
}

// AcceptOrder handles POST /api/v1/orders/{id}/accept.
func (s *Server) AcceptOrder(c echo.Context, id int64) error {
	var req noteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptOrderCommand(actorFrom(c), orderID, req.Note)
	return respond(c, http.StatusOK, s.h.AcceptOrder, cmd, err)
}

// RejectOrder handles POST /api/v1/orders/{id}/reject.
func (s *Server) RejectOrder(c echo.Context, id int64) error {
	var req noteRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRejectOrderCommand(actorFrom(c), orderID, req.Note)
	return respond(c, http.StatusOK, s.h.RejectOrder, cmd, err)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, id int64) error {
	var req changeStatusRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	cmd, err := commands.NewChangeStatusCommand(actorFrom(c), orderID, target, req.Note)
	return respond(c, http.StatusOK, s.h.ChangeStatus, cmd, err)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(c echo.Context, id int64) error {
	var req cancelRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCancelOrderCommand(actorFrom(c), orderID, req.Reason)
	return respond(c, http.StatusOK, s.h.CancelOrder, cmd, err)
}

// AddComment handles POST /api/v1/orders/{id}/comments.
func (s *Server) AddComment(c echo.Context, id int64) error {
	var req commentRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddCommentCommand(actorFrom(c), orderID, req.Message)
	return respond(c, http.StatusCreated, s.h.AddComment, cmd, err)
}

// AddFile handles POST /api/v1/orders/{id}/files.
func (s *Server) AddFile(c echo.Context, id int64) error {
	var req fileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	orderID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAddFileCommand(actorFrom(c), orderID, req.FileURL, req.FileName, req.FileType)
	return respond(c, http.StatusCreated, s.h.AddFile, cmd, err)
}

// CreateService handles POST /api/v1/services.
func (s *Server) CreateService(c echo.Context) error {
	var req createServiceRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateServiceCommand(actorFrom(c), req.Category, req.Name, req.Description, req.IsActive)
	if err != nil {
		return err
	}
	service, err := s.h.Catalog.CreateService(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, service)
}

// ListServices handles GET /api/v1/services.
func (s *Server) ListServices(c echo.Context, params ListCatalogParams) error {
	category := ""
	if params.Category != nil {
		category = *params.Category
	}
	query := queries.NewListServicesQuery(params.OnlyActive != nil && *params.OnlyActive, category)
	return respond(c, http.StatusOK, s.h.ListServices, query, nil)
}

// SetServiceActive handles PATCH /api/v1/services/{id}/active.
func (s *Server) SetServiceActive(c echo.Context, id int64) error {
	cmd, err := s.setActiveCommand(c, id)
	if err != nil {
		return err
	}
	service, err := s.h.Catalog.SetServiceActive(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, service)
}

// CreateVendor handles POST /api/v1/vendors.
func (s *Server) CreateVendor(c echo.Context) error {
	var req createVendorRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	cmd, err := commands.NewCreateVendorCommand(actorFrom(c), req.Name, req.LegalName, req.TaxID, req.Contacts, req.IsActive)
	if err != nil {
		return err
	}
	vendor, err := s.h.Catalog.CreateVendor(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, vendor)
}

// ListVendors handles GET /api/v1/vendors.
func (s *Server) ListVendors(c echo.Context, params ListCatalogParams) error {
	query, err := queries.NewListVendorsQuery(actorFrom(c), params.OnlyActive != nil && *params.OnlyActive)
	return respond(c, http.StatusOK, s.h.ListVendors, query, err)
}

// SetVendorActive handles PATCH /api/v1/vendors/{id}/active.
func (s *Server) SetVendorActive(c echo.Context, id int64) error {
	cmd, err := s.setActiveCommand(c, id)
	if err != nil {
		return err
	}
	vendor, err := s.h.Catalog.SetVendorActive(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vendor)
}

// CreateUser handles POST /api/v1/users.
func (s *Server) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	role, err := actor.ParseRole(req.Role)
	if err != nil {
		return err
	}
	vendorID, err := kernel.OptionalID(req.VendorID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewCreateUserCommand(actorFrom(c), req.Name, req.Email, req.Phone, role, vendorID)
	return respond(c, http.StatusCreated, s.h.CreateUser, cmd, err)
}

// ListUsers handles GET /api/v1/users.
func (s *Server) ListUsers(c echo.Context, params ListUsersParams) error {
	var filter queries.UserFilter
	if params.Role != nil {
		role, err := actor.ParseRole(*params.Role)
		if err != nil {
			return err
		}
		filter.Role = &role
	}
	var err error
	if filter.VendorID, err = kernel.OptionalID(params.VendorID); err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(actorFrom(c), filter, params.Take, params.Skip)
	return respond(c, http.StatusOK, s.h.ListUsers, query, err)
}

// GetUser handles GET /api/v1/users/{id}.
func (s *Server) GetUser(c echo.Context, id int64) error {
	userID, err := kernel.NewID(id)
	if err != nil {
		return err
	}
	query, err := queries.NewGetUserQuery(actorFrom(c), userID)
	return respond(c, http.StatusOK, s.h.GetUser, query, err)
}

func (s *Server) setActiveCommand(c echo.Context, id int64) (commands.SetActiveCommand, error) {
	var req activeRequest
	if err := bindBody(c, &req); err != nil {
		return commands.SetActiveCommand{}, err
	}
	target, err := kernel.NewID(id)
	if err != nil {
		return commands.SetActiveCommand{}, err
	}
	return commands.NewSetActiveCommand(actorFrom(c), target, *req.IsActive)
}
