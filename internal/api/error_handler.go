package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/alesthetic/booking-api/internal/api/handler"
	"github.com/alesthetic/booking-api/internal/api/metrics"
	"github.com/alesthetic/booking-api/internal/core/domain"
)

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every error through the uniform APIResponse envelope. Duplicate
//     rejections carry their text in Message; not-found and validation
//     failures list theirs in ErrorMessages.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		body := resolveError(err, log, c)
		_ = c.JSON(body.StatusCode, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) handler.APIResponse {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return handler.Failure(he.Code, "", fmt.Sprintf("%v", he.Message))
	}

	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return handler.Failure(http.StatusBadRequest, "", ve.Messages...)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrSlotTaken):
		metrics.BookingConflictsTotal.WithLabelValues("appointment").Inc()
		return handler.Failure(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrCustomerExists):
		metrics.BookingConflictsTotal.WithLabelValues("customer").Inc()
		return handler.Failure(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmployeeExists):
		metrics.BookingConflictsTotal.WithLabelValues("employee").Inc()
		return handler.Failure(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrServiceExists):
		metrics.BookingConflictsTotal.WithLabelValues("service").Inc()
		return handler.Failure(http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrAppointmentNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrServiceNotFound):
		return handler.Failure(http.StatusNotFound, "", err.Error())
	case errors.Is(err, domain.ErrInvalidPage):
		return handler.Failure(http.StatusNotFound, "", err.Error())
	case errors.Is(err, domain.ErrInvalidPageSize):
		return handler.Failure(http.StatusBadRequest, "", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		return handler.Failure(http.StatusUnauthorized, "", "invalid credentials")
	case errors.Is(err, domain.ErrUserNotFound):
		return handler.Failure(http.StatusNotFound, "", "user not found")
	case errors.Is(err, domain.ErrUserExists):
		return handler.Failure(http.StatusConflict, "", "user already exists")
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return handler.Failure(http.StatusInternalServerError, "", "internal server error")
}
