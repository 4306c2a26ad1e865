package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/api/handler"
	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps request, domain and carrier errors to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "messages": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	var re *handler.RequestError
	if errors.As(err, &re) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Messages: re.Messages}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Messages: []string{err.Error()}}
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return resolveCarrierError(apiErr, log, c)
	}

	var te *domain.TransportError
	if errors.As(err, &te) {
		log.Error().Err(err).Str("path", c.Path()).Msg("carrier unreachable")
		return http.StatusBadGateway, errorResponse{Error: "carrier unavailable"}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrAddressNotFound):
		return http.StatusNotFound, errorResponse{Error: "address not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrInvalidResetToken):
		return http.StatusBadRequest, errorResponse{Error: "invalid or expired reset token"}
	case errors.Is(err, domain.ErrMissingID):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}

// resolveCarrierError keeps 422 for requests the carrier rejected on their
// content. Authentication failures and carrier outages are not the caller's
// fault and surface as gateway errors.
func resolveCarrierError(apiErr *domain.APIError, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	switch {
	case apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden:
		log.Error().
			Int("carrier_status", apiErr.StatusCode).
			Strs("messages", apiErr.Messages).
			Str("path", c.Path()).
			Msg("carrier refused credentials")
		return http.StatusBadGateway, errorResponse{Error: "carrier unavailable"}
	case apiErr.StatusCode == http.StatusTooManyRequests:
		log.Warn().Str("path", c.Path()).Msg("carrier rate limited")
		return http.StatusServiceUnavailable, errorResponse{Error: "carrier busy, retry later"}
	case apiErr.StatusCode >= http.StatusInternalServerError:
		log.Error().
			Int("carrier_status", apiErr.StatusCode).
			Strs("messages", apiErr.Messages).
			Str("path", c.Path()).
			Msg("carrier failed")
		return http.StatusBadGateway, errorResponse{Error: "carrier unavailable"}
	}

	log.Warn().
		Int("carrier_status", apiErr.StatusCode).
		Strs("messages", apiErr.Messages).
		Str("path", c.Path()).
		Msg("carrier rejected request")
	return http.StatusUnprocessableEntity, errorResponse{Error: "carrier rejected request", Messages: apiErr.Messages}
}
