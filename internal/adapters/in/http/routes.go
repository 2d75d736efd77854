package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ListOrdersParams are the query parameters of GET /orders.
type ListOrdersParams struct {
	Take      *int    `form:"take"      json:"take,omitempty"`
	Skip      *int    `form:"skip"      json:"skip,omitempty"`
	Status    *string `form:"status"    json:"status,omitempty"`
	UserID    *int64  `form:"userId"    json:"userId,omitempty"`
	VendorID  *int64  `form:"vendorId"  json:"vendorId,omitempty"`
	ServiceID *int64  `form:"serviceId" json:"serviceId,omitempty"`
}

// ListCatalogParams are the query parameters of GET /services and GET /vendors.
type ListCatalogParams struct {
	OnlyActive *bool   `form:"onlyActive" json:"onlyActive,omitempty"`
	Category   *string `form:"category"   json:"category,omitempty"`
}

// ListUsersParams are the query parameters of GET /users.
type ListUsersParams struct {
	Take     *int    `form:"take"     json:"take,omitempty"`
	Skip     *int    `form:"skip"     json:"skip,omitempty"`
	Role     *string `form:"role"     json:"role,omitempty"`
	VendorID *int64  `form:"vendorId" json:"vendorId,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (POST /orders)
	CreateOrder(ctx echo.Context) error
	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /orders/{id})
	GetOrder(ctx echo.Context, id int64) error
	// (PATCH /orders/{id}/assign)
	AssignVendor(ctx echo.Context, id int64) error
	// (POST /orders/{id}/accept)
	AcceptOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/reject)
	RejectOrder(ctx echo.Context, id int64) error
	// (PATCH /orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id int64) error
	// (POST /orders/{id}/cancel)
	CancelOrder(ctx echo.Context, id int64) error
	// (POST /orders/{id}/comments)
	AddComment(ctx echo.Context, id int64) error
	// (POST /orders/{id}/files)
	AddFile(ctx echo.Context, id int64) error

	// (POST /services)
	CreateService(ctx echo.Context) error
	// (GET /services)
	ListServices(ctx echo.Context, params ListCatalogParams) error
	// (PATCH /services/{id}/active)
	SetServiceActive(ctx echo.Context, id int64) error
	// (POST /vendors)
	CreateVendor(ctx echo.Context) error
	// (GET /vendors)
	ListVendors(ctx echo.Context, params ListCatalogParams) error
	// (PATCH /vendors/{id}/active)
	SetVendorActive(ctx echo.Context, id int64) error

	// (POST /users)
	CreateUser(ctx echo.Context) error
	// (GET /users)
	ListUsers(ctx echo.Context, params ListUsersParams) error
	// (GET /users/{id})
	GetUser(ctx echo.Context, id int64) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindID(ctx echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func (w *ServerInterfaceWrapper) withID(handle func(echo.Context, int64) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := bindID(ctx)
		if err != nil {
			return err
		}
		return handle(ctx, id)
	}
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	for name, dest := range map[string]any{
		"take":      &params.Take,
		"skip":      &params.Skip,
		"status":    &params.Status,
		"userId":    &params.UserID,
		"vendorId":  &params.VendorID,
		"serviceId": &params.ServiceID,
	} {
		if err := bindQuery(ctx, name, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) ListUsers(ctx echo.Context) error {
	var params ListUsersParams
	for name, dest := range map[string]any{
		"take":     &params.Take,
		"skip":     &params.Skip,
		"role":     &params.Role,
		"vendorId": &params.VendorID,
	} {
		if err := bindQuery(ctx, name, dest); err != nil {
			return err
		}
	}
	return w.Handler.ListUsers(ctx, params)
}

func (w *ServerInterfaceWrapper) listCatalog(handle func(echo.Context, ListCatalogParams) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var params ListCatalogParams
		if err := bindQuery(ctx, "onlyActive", &params.OnlyActive); err != nil {
			return err
		}
		if err := bindQuery(ctx, "category", &params.Category); err != nil {
			return err
		}
		return handle(ctx, params)
	}
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds each server route to the router.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders", si.CreateOrder)
	router.GET(baseURL+"/orders", w.ListOrders)
	router.GET(baseURL+"/orders/:id", w.withID(si.GetOrder))
	router.PATCH(baseURL+"/orders/:id/assign", w.withID(si.AssignVendor))
	router.POST(baseURL+"/orders/:id/accept", w.withID(si.AcceptOrder))
	router.POST(baseURL+"/orders/:id/reject", w.withID(si.RejectOrder))
	router.PATCH(baseURL+"/orders/:id/status", w.withID(si.ChangeOrderStatus))
	router.POST(baseURL+"/orders/:id/cancel", w.withID(si.CancelOrder))
	router.POST(baseURL+"/orders/:id/comments", w.withID(si.AddComment))
	router.POST(baseURL+"/orders/:id/files", w.withID(si.AddFile))

	router.POST(baseURL+"/services", si.CreateService)
	router.GET(baseURL+"/services", w.listCatalog(si.ListServices))
	router.PATCH(baseURL+"/services/:id/active", w.withID(si.SetServiceActive))
	router.POST(baseURL+"/vendors", si.CreateVendor)
	router.GET(baseURL+"/vendors", w.listCatalog(si.ListVendors))
	router.PATCH(baseURL+"/vendors/:id/active", w.withID(si.SetVendorActive))

	router.POST(baseURL+"/users", si.CreateUser)
	router.GET(baseURL+"/users", w.ListUsers)
	router.GET(baseURL+"/users/:id", w.withID(si.GetUser))
}
