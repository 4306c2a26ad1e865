package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/core/service"
	"github.com/csvshipper/csv-shipper/internal/infrastructure/shipengine"
	"github.com/csvshipper/csv-shipper/internal/pkg/config"
	"github.com/csvshipper/csv-shipper/pkg/logger"
)

// newCarrierService builds a ShipmentService for one-shot commands. There is
// no address store, so files must carry ship_from inline.
func newCarrierService(ctx context.Context) (*service.ShipmentService, error) {
	cfg, err := config.LoadWith(ctx, envconfig.OsLookuper())
	if err != nil {
		return nil, err
	}
	if err := cfg.ValidateCarrier(); err != nil {
		return nil, err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  true,
		Output:  os.Stderr,
		Service: "csvshipper",
	})

	return carrierServiceWith(cfg, nil, log)
}

// carrierServiceWith builds the shipment service on a ShipEngine client.
// addresses may be nil.
func carrierServiceWith(cfg *config.Config, addresses ports.AddressRepository, log zerolog.Logger) (*service.ShipmentService, error) {
	client, err := shipengine.New(shipengine.Config{
		APIKey:  cfg.ShipEngine.APIKey,
		BaseURL: cfg.ShipEngine.BaseURL,
		Timeout: cfg.ShipEngine.Timeout,
	}, log)
	if err != nil {
		return nil, err
	}

	return service.NewShipmentService(client, addresses, service.NewAssembler(nil), service.ShipmentConfig{
		CarrierID:   cfg.ShipEngine.CarrierID,
		ServiceCode: cfg.ShipEngine.ServiceCode,
	}, log), nil
}
