package ports

import (
	"context"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// CarrierResult is the carrier's 2xx answer, passed through untyped.
type CarrierResult struct {
	StatusCode int
	Body       map[string]any
}

// CarrierClient talks to the carrier-aggregation API. Every call is a single
// request/response exchange. Failures are *domain.APIError for non-2xx answers
// and *domain.TransportError for everything else.
type CarrierClient interface {
	CreateShipment(ctx context.Context, req domain.ShipmentRequest) (*CarrierResult, error)
	CreateLabel(ctx context.Context, req domain.ShipmentRequest) (*CarrierResult, error)
	GetRates(ctx context.Context, shipmentID string, opts domain.RateOptions) (*CarrierResult, error)
	CreateLabelFromRate(ctx context.Context, rateID string) (*CarrierResult, error)
}
