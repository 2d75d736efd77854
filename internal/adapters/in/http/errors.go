package http

import (
	"errors"
	"log/slog"
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code      int    `json:"code"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

const kindUnauthenticated = "Unauthenticated"

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindForbidden:
		return http.StatusForbidden
	case errs.KindInvalidState:
		return http.StatusConflict
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindInfrastructure:
		return http.StatusServiceUnavailable
	case errs.KindUnknown:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// toError classifies err. Errors raised by echo itself keep their status.
func toError(err error) Error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		kind := errs.KindUnknown.String()
		switch he.Code {
		case http.StatusUnauthorized:
			kind = kindUnauthenticated
		case http.StatusNotFound, http.StatusMethodNotAllowed:
			kind = errs.KindNotFound.String()
		case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
			kind = errs.KindValidation.String()
		}
		msg, ok := he.Message.(string)
		if !ok {
			msg = http.StatusText(he.Code)
		}
		return Error{Code: he.Code, Kind: kind, Message: msg}
	}

	kind := errs.KindOf(err)
	body := Error{
		Code:      statusOf(kind),
		Kind:      kind.String(),
		Message:   err.Error(),
		Retryable: errs.IsRetryable(err),
	}
	if kind == errs.KindUnknown {
		body.Message = http.StatusText(http.StatusInternalServerError)
	}
	return body
}

// errorHandler writes classified JSON errors. Server side failures are logged
// with the request id.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		body := toError(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"error", err,
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
