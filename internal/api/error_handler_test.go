package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/api/handler"
	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/shipments", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("invalid json: %v", jerr)
	}
	return rec.Code, body
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"http error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
		{"request validation", &handler.RequestError{Messages: []string{"ship_to.name is required"}}, http.StatusUnprocessableEntity},
		{"enum validation", fmt.Errorf("packages[0]: %w", &domain.ValidationError{Field: "weight.unit", Value: "stone"}), http.StatusUnprocessableEntity},
		{"carrier api", &domain.APIError{StatusCode: 400, Messages: []string{"bad"}}, http.StatusUnprocessableEntity},
		{"carrier not found", &domain.APIError{StatusCode: 404, Messages: []string{"rate not found"}}, http.StatusUnprocessableEntity},
		{"carrier bad api key", &domain.APIError{StatusCode: 401, Messages: []string{"invalid API key"}}, http.StatusBadGateway},
		{"carrier forbidden", &domain.APIError{StatusCode: 403}, http.StatusBadGateway},
		{"carrier rate limited", &domain.APIError{StatusCode: 429}, http.StatusServiceUnavailable},
		{"carrier outage", &domain.APIError{StatusCode: 503, Messages: []string{"maintenance"}}, http.StatusBadGateway},
		{"carrier transport", &domain.TransportError{Op: "create_shipment", Err: errors.New("refused")}, http.StatusBadGateway},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound},
		{"address missing", fmt.Errorf("ship_from: %w", domain.ErrAddressNotFound), http.StatusNotFound},
		{"user exists", domain.ErrUserExists, http.StatusConflict},
		{"reset token", domain.ErrInvalidResetToken, http.StatusBadRequest},
		{"missing id", domain.ErrMissingID, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _ := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
		})
	}
}

func TestErrorHandler_CarrierMessagesAreListed(t *testing.T) {
	_, body := render(t, &domain.APIError{StatusCode: 400, Messages: []string{"first", "second"}})
	if len(body.Messages) != 2 || body.Messages[0] != "first" || body.Messages[1] != "second" {
		t.Fatalf("unexpected messages: %+v", body.Messages)
	}
}

func TestErrorHandler_DoesNotLeakInternalErrors(t *testing.T) {
	_, body := render(t, errors.New("mongo: connection string leaked"))
	if body.Error != "internal server error" {
		t.Fatalf("unexpected error text: %q", body.Error)
	}
}

func TestErrorHandler_CarrierAuthFailureHidesMessages(t *testing.T) {
	_, body := render(t, &domain.APIError{StatusCode: 401, Messages: []string{"API key TEST_abc is invalid"}})
	if body.Error != "carrier unavailable" || len(body.Messages) != 0 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
