package shipengine

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/service"
)

type captured struct {
	method string
	path   string
	apiKey string
	body   map[string]any
}

// newTestServer answers every request with status/respBody and records what it received.
func newTestServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.apiKey = r.Header.Get("API-Key")
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{APIKey: "TEST_key", BaseURL: baseURL + "/v1"}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func address(t *testing.T, name string) domain.Address {
	t.Helper()
	a, err := domain.NewAddress(domain.AddressFields{
		Name:                 name,
		Phone:                "1-789-456-1234",
		AddressLine1:         "4009 Marathon Blvd",
		CityLocality:         "Austin",
		StateProvince:        "TX",
		PostalCode:           "78756",
		CountryCode:          "US",
		ResidentialIndicator: domain.ResidentialNo,
	})
	require.NoError(t, err)
	return a
}

func assembled(t *testing.T) domain.ShipmentRequest {
	t.Helper()
	w, err := domain.NewPackageWeight(2.5, domain.WeightPound)
	require.NoError(t, err)
	d, err := domain.NewPackageDimensions(domain.DimensionInch, 12.5, 12.5, 12.5)
	require.NoError(t, err)
	pkg, err := domain.NewPackage(domain.PackageFields{Weight: w, Dimensions: &d})
	require.NoError(t, err)

	req, err := service.NewAssembler(nil).Assemble(service.AssembleInput{
		ShipTo:      address(t, "Kasey Cantu"),
		ShipFrom:    address(t, "Monkey D. Luffy"),
		Packages:    []domain.Package{pkg},
		CarrierID:   "se-123456",
		ServiceCode: "ups_next_day_air",
	})
	require.NoError(t, err)
	return req
}

func TestClient_CreateShipment_RequestBody(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"shipments":[{"shipment_id":"se-1"}]}`)
	c := newTestClient(t, srv.URL)

	res, err := c.CreateShipment(context.Background(), assembled(t))
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/v1/shipments", got.path)
	assert.Equal(t, "TEST_key", got.apiKey)

	shipments := got.body["shipments"].([]any)
	require.Len(t, shipments, 1)
	first := shipments[0].(map[string]any)
	assert.Equal(t, "Kasey Cantu", first["ship_to"].(map[string]any)["name"])
	pkg := first["packages"].([]any)[0].(map[string]any)
	assert.Equal(t, 2.5, pkg["weight"].(map[string]any)["value"])
	assert.Equal(t, "delivery", first["confirmation"])
	assert.NotContains(t, first, "customs")
	assert.NotContains(t, first, "advanced_options")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "se-1", res.Body["shipments"].([]any)[0].(map[string]any)["shipment_id"])
}

func TestClient_CreateShipment_APIError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadRequest, `{"request_id":"x","errors":[{"message":"Invalid postal code","error_code":"invalid_address"}]}`)
	c := newTestClient(t, srv.URL)

	res, err := c.CreateShipment(context.Background(), assembled(t))
	require.Error(t, err)
	assert.Nil(t, res)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, []string{"Invalid postal code"}, apiErr.Messages)

	var transportErr *domain.TransportError
	assert.False(t, errors.As(err, &transportErr))
}

func TestClient_APIError_UnparseableBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
	c := newTestClient(t, srv.URL)

	_, err := c.CreateLabelFromRate(context.Background(), "se-rate-1")
	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Messages)
}

func TestClient_CreateLabel_Envelope(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"label_id":"se-label-1"}`)
	c := newTestClient(t, srv.URL)

	res, err := c.CreateLabel(context.Background(), assembled(t))
	require.NoError(t, err)

	assert.Equal(t, "/v1/labels", got.path)
	shipment, ok := got.body["shipment"].(map[string]any)
	require.True(t, ok, "expected a single shipment object, got %v", got.body)
	assert.Equal(t, "se-123456", shipment["carrier_id"])
	assert.Equal(t, "se-label-1", res.Body["label_id"])
}

func TestClient_GetRates_Body(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"rate_response":{"rates":[]}}`)
	c := newTestClient(t, srv.URL)

	opts, err := domain.NewRateOptions(domain.RateFields{
		CarrierIDs:        []string{"se-123456"},
		PreferredCurrency: domain.CurrencyUSD,
	})
	require.NoError(t, err)

	_, err = c.GetRates(context.Background(), "se-28529731", opts)
	require.NoError(t, err)

	assert.Equal(t, "/v1/rates", got.path)
	assert.Equal(t, "se-28529731", got.body["shipment_id"])
	rateOpts := got.body["rate_options"].(map[string]any)
	assert.Equal(t, []any{"se-123456"}, rateOpts["carrier_ids"])
	assert.Equal(t, "usd", rateOpts["preferred_currency"])
}

func TestClient_CreateLabelFromRate_Path(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK, `{"label_id":"se-label-2"}`)
	c := newTestClient(t, srv.URL)

	_, err := c.CreateLabelFromRate(context.Background(), "se-rate-42")
	require.NoError(t, err)
	assert.Equal(t, "/v1/labels/rates/se-rate-42", got.path)
	assert.Nil(t, got.body)
}

func TestClient_TransportError_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := newTestClient(t, url)
	_, err := c.CreateShipment(context.Background(), assembled(t))

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "create_shipment", transportErr.Op)

	var apiErr *domain.APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_TransportError_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c, err := New(Config{APIKey: "k", BaseURL: srv.URL, Timeout: 50 * time.Millisecond}, zerolog.Nop())
	require.NoError(t, err)

	_, err = c.CreateLabelFromRate(context.Background(), "se-rate-1")
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestClient_TransportError_MalformedSuccessBody(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"shipments": [`)
	c := newTestClient(t, srv.URL)

	_, err := c.CreateShipment(context.Background(), assembled(t))
	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{}, zerolog.Nop())
	require.Error(t, err)
}

func TestNew_DefaultBaseURL(t *testing.T) {
	c, err := New(Config{APIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL.String())
}
