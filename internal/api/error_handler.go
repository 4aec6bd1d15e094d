package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crewbase/opsdash/internal/core/domain"
	"github.com/crewbase/opsdash/internal/infrastructure/remote"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain and remote-store errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Payload validation failures name the offending fields.
	var ve *remote.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, ve.Error()
	}

	// Known domain errors map to deterministic HTTP codes. The wrapped
	// message is kept so "change status: invalid status (Pending)" reaches
	// the caller intact.
	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrClientNotFound),
		errors.Is(err, domain.ErrSubClientNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrTaskTypeNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrInvalidStatus):
		return http.StatusBadRequest, err.Error()
	}

	// Remote store failures. The store's own status codes are not ours to
	// forward, so anything it rejected becomes a gateway error and anything
	// we never reached becomes service-unavailable.
	var apiErr *remote.APIError
	if errors.As(err, &apiErr) {
		log.Warn().
			Int("upstream_status", apiErr.StatusCode).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("remote store rejected request")
		return http.StatusBadGateway, "remote store rejected the request"
	}

	var netErr *remote.NetworkError
	if errors.As(err, &netErr) {
		log.Warn().
			Err(netErr.Cause).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("remote store unreachable")
		return http.StatusServiceUnavailable, "remote store unreachable"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
