package http

import (
	"net/http"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway after authentication.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
	HeaderVendorID = "X-Vendor-Id"
)

const actorContextKey = "marketplace.actor"

// Identity resolves the caller from the gateway headers. Requests without a
// valid identity never reach a handler.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, err := resolveActor(c.Request().Header)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid identity").SetInternal(err)
			}
			c.Set(actorContextKey, a)
			return next(c)
		}
	}
}

func resolveActor(h http.Header) (actor.Actor, error) {
	id, err := kernel.ParseID(h.Get(HeaderUserID))
	if err != nil {
		return actor.Actor{}, err
	}
	role, err := actor.ParseRole(h.Get(HeaderUserRole))
	if err != nil {
		return actor.Actor{}, err
	}

	var vendorID *kernel.ID
	if raw := h.Get(HeaderVendorID); raw != "" {
		v, err := kernel.ParseID(raw)
		if err != nil {
			return actor.Actor{}, err
		}
		vendorID = &v
	}
	return actor.NewActor(id, role, vendorID)
}

// actorFrom returns the caller resolved by Identity. Handlers outside the
// Identity group get an unconstructed actor, which every command rejects.
func actorFrom(c echo.Context) actor.Actor {
	a, _ := c.Get(actorContextKey).(actor.Actor)
	return a
}
