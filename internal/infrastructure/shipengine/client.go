// Package shipengine is the HTTP client for the ShipEngine v1 REST API.
//
// Each call is one synchronous POST with no retries. Non-2xx answers become
// *domain.APIError carrying the errors[].message list; anything that keeps a
// usable answer from arriving becomes *domain.TransportError.
package shipengine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/pkg/metrics"
)

const (
	DefaultBaseURL = "https://api.shipengine.com/v1/"
	defaultTimeout = 30 * time.Second

	apiKeyHeader = "API-Key"
	maxBodyBytes = 10 << 20
)

// Operation names, used for logs, metrics and TransportError.Op.
const (
	opCreateShipment = "create_shipment"
	opCreateLabel    = "create_label"
	opGetRates       = "get_rates"
	opLabelFromRate  = "label_from_rate"
)

// Config captures the account settings read once at construction.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// Client is safe for concurrent use; it holds only read-only settings and the
// underlying connection pool.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

var _ ports.CarrierClient = (*Client)(nil)

// New validates cfg and returns a Client. An empty BaseURL selects the
// production endpoint.
func New(cfg Config, log zerolog.Logger, opts ...Option) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("shipengine: api key is required")
	}
	raw := cfg.BaseURL
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("shipengine: invalid base url %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: base,
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		log: log.With().Str("component", "shipengine").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateShipment posts {"shipments":[req]} to /shipments.
func (c *Client) CreateShipment(ctx context.Context, req domain.ShipmentRequest) (*ports.CarrierResult, error) {
	body := struct {
		Shipments []domain.ShipmentRequest `json:"shipments"`
	}{Shipments: []domain.ShipmentRequest{req}}
	return c.post(ctx, opCreateShipment, "shipments", body)
}

// CreateLabel posts {"shipment":req} to /labels.
func (c *Client) CreateLabel(ctx context.Context, req domain.ShipmentRequest) (*ports.CarrierResult, error) {
	body := struct {
		Shipment domain.ShipmentRequest `json:"shipment"`
	}{Shipment: req}
	return c.post(ctx, opCreateLabel, "labels", body)
}

// GetRates posts {"shipment_id":..., "rate_options":...} to /rates.
func (c *Client) GetRates(ctx context.Context, shipmentID string, opts domain.RateOptions) (*ports.CarrierResult, error) {
	body := struct {
		ShipmentID  string             `json:"shipment_id"`
		RateOptions domain.RateOptions `json:"rate_options"`
	}{ShipmentID: shipmentID, RateOptions: opts}
	return c.post(ctx, opGetRates, "rates", body)
}

// CreateLabelFromRate purchases the label behind a quoted rate.
func (c *Client) CreateLabelFromRate(ctx context.Context, rateID string) (*ports.CarrierResult, error) {
	return c.post(ctx, opLabelFromRate, "labels/rates/"+url.PathEscape(rateID), nil)
}

func (c *Client) post(ctx context.Context, op, endpoint string, payload any) (res *ports.CarrierResult, err error) {
	start := time.Now()
	defer func() {
		metrics.CarrierRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
		metrics.CarrierRequestsTotal.WithLabelValues(op, outcome(err)).Inc()
	}()

	var body io.Reader = http.NoBody
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(buf)
	}

	u := c.baseURL.ResolveReference(&url.URL{Path: strings.TrimLeft(endpoint, "/")})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), body)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &domain.APIError{StatusCode: resp.StatusCode, Messages: errorMessages(raw)}
		c.log.Debug().
			Str("op", op).
			Int("status", resp.StatusCode).
			Strs("messages", apiErr.Messages).
			Msg("request failed")
		return nil, apiErr
	}

	out := &ports.CarrierResult{StatusCode: resp.StatusCode}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &out.Body); err != nil {
			return nil, &domain.TransportError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Dur("took", time.Since(start)).Msg("request ok")
	return out, nil
}

// errorMessages extracts errors[].message. Bodies that do not follow that
// shape yield no messages; the status code still reaches the caller.
func errorMessages(raw []byte) []string {
	var envelope struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil
	}
	var msgs []string
	for _, e := range envelope.Errors {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

func outcome(err error) string {
	var apiErr *domain.APIError
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.As(err, &apiErr):
		return metrics.OutcomeAPIError
	default:
		return metrics.OutcomeTransportError
	}
}
