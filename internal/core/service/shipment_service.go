package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
	"github.com/csvshipper/csv-shipper/internal/pkg/metrics"
)

// ShipmentConfig holds the carrier account settings read once at startup.
type ShipmentConfig struct {
	CarrierID   string
	ServiceCode string
}

type ShipmentService struct {
	carrier   ports.CarrierClient
	addresses ports.AddressRepository
	assembler *Assembler
	cfg       ShipmentConfig
	logger    zerolog.Logger
}

// NewShipmentService wires the shipment use cases. addresses may be nil, in
// which case requests that reference a saved ship-from address fail with
// domain.ErrAddressNotFound.
func NewShipmentService(
	carrier ports.CarrierClient,
	addresses ports.AddressRepository,
	assembler *Assembler,
	cfg ShipmentConfig,
	logger zerolog.Logger,
) *ShipmentService {
	if assembler == nil {
		assembler = NewAssembler(nil)
	}
	return &ShipmentService{
		carrier:   carrier,
		addresses: addresses,
		assembler: assembler,
		cfg:       cfg,
		logger:    logger,
	}
}

// CreateShipment registers a shipment with the carrier without buying a label.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.CarrierResult, error) {
	req, err := s.buildRequest(ctx, input)
	if err != nil {
		return nil, err
	}
	res, err := s.carrier.CreateShipment(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("service_code", req.ServiceCode()).Msg("create shipment failed")
		return nil, err
	}
	metrics.ShipmentsCreatedTotal.WithLabelValues("shipment", req.ServiceCode()).Inc()
	s.logger.Info().Str("service_code", req.ServiceCode()).Str("ship_to", req.ShipTo().Name()).Msg("shipment created")
	return res, nil
}

// CreateLabel creates the shipment and purchases its label in one call.
func (s *ShipmentService) CreateLabel(ctx context.Context, input ports.CreateShipmentInput) (*ports.CarrierResult, error) {
	req, err := s.buildRequest(ctx, input)
	if err != nil {
		return nil, err
	}
	res, err := s.carrier.CreateLabel(ctx, req)
	if err != nil {
		s.logger.Error().Err(err).Str("service_code", req.ServiceCode()).Msg("create label failed")
		return nil, err
	}
	metrics.ShipmentsCreatedTotal.WithLabelValues("label", req.ServiceCode()).Inc()
	s.logger.Info().Str("service_code", req.ServiceCode()).Str("ship_to", req.ShipTo().Name()).Msg("label created")
	return res, nil
}

// GetRates quotes an existing carrier shipment. Without explicit carrier IDs
// the configured carrier is asked.
func (s *ShipmentService) GetRates(ctx context.Context, input ports.GetRatesInput) (*ports.CarrierResult, error) {
	if input.ShipmentID == "" {
		return nil, fmt.Errorf("get rates: shipment id: %w", domain.ErrMissingID)
	}
	in := input.Options
	if len(in.CarrierIDs) == 0 && s.cfg.CarrierID != "" {
		in.CarrierIDs = []string{s.cfg.CarrierID}
	}
	opts, err := buildRateOptions(in)
	if err != nil {
		s.countValidation(err)
		return nil, err
	}
	res, err := s.carrier.GetRates(ctx, input.ShipmentID, opts)
	if err != nil {
		s.logger.Error().Err(err).Str("shipment_id", input.ShipmentID).Msg("get rates failed")
		return nil, err
	}
	return res, nil
}

// CreateLabelFromRate purchases the label for a previously quoted rate.
func (s *ShipmentService) CreateLabelFromRate(ctx context.Context, rateID string) (*ports.CarrierResult, error) {
	if rateID == "" {
		return nil, fmt.Errorf("label from rate: rate id: %w", domain.ErrMissingID)
	}
	res, err := s.carrier.CreateLabelFromRate(ctx, rateID)
	if err != nil {
		s.logger.Error().Err(err).Str("rate_id", rateID).Msg("label from rate failed")
		return nil, err
	}
	metrics.ShipmentsCreatedTotal.WithLabelValues("label", "from_rate").Inc()
	s.logger.Info().Str("rate_id", rateID).Msg("label created from rate")
	return res, nil
}

// buildRequest validates every value object before any network call is made.
func (s *ShipmentService) buildRequest(ctx context.Context, input ports.CreateShipmentInput) (domain.ShipmentRequest, error) {
	req, err := s.assemble(ctx, input)
	if err != nil {
		s.countValidation(err)
		return domain.ShipmentRequest{}, err
	}
	return req, nil
}

func (s *ShipmentService) assemble(ctx context.Context, input ports.CreateShipmentInput) (domain.ShipmentRequest, error) {
	shipTo, err := buildAddress(input.ShipTo)
	if err != nil {
		return domain.ShipmentRequest{}, fmt.Errorf("ship_to: %w", err)
	}
	shipFrom, err := s.resolveShipFrom(ctx, input)
	if err != nil {
		return domain.ShipmentRequest{}, err
	}
	returnTo, err := buildOptionalAddress(input.ReturnTo)
	if err != nil {
		return domain.ShipmentRequest{}, fmt.Errorf("return_to: %w", err)
	}
	packages, err := buildPackages(input.Packages)
	if err != nil {
		return domain.ShipmentRequest{}, err
	}
	customs, err := buildCustoms(input.Customs)
	if err != nil {
		return domain.ShipmentRequest{}, err
	}
	advanced, err := buildAdvancedOptions(input.AdvancedOptions)
	if err != nil {
		return domain.ShipmentRequest{}, err
	}

	serviceCode := input.ServiceCode
	if serviceCode == "" {
		serviceCode = s.cfg.ServiceCode
	}
	return s.assembler.Assemble(AssembleInput{
		ShipTo:             shipTo,
		ShipFrom:           shipFrom,
		ReturnTo:           returnTo,
		Packages:           packages,
		Customs:            customs,
		AdvancedOptions:    advanced,
		CarrierID:          s.cfg.CarrierID,
		ServiceCode:        serviceCode,
		Confirmation:       domain.Confirmation(input.Confirmation),
		ExternalShipmentID: input.ExternalShipmentID,
		ExternalOrderID:    input.ExternalOrderID,
	})
}

func (s *ShipmentService) resolveShipFrom(ctx context.Context, input ports.CreateShipmentInput) (domain.Address, error) {
	if input.ShipFromAddressID != "" {
		if s.addresses == nil {
			return domain.Address{}, domain.ErrAddressNotFound
		}
		saved, err := s.addresses.FindByID(ctx, input.UserID, input.ShipFromAddressID)
		if err != nil {
			return domain.Address{}, err
		}
		return saved.Address, nil
	}
	if input.ShipFrom == nil {
		return domain.Address{}, fmt.Errorf("ship_from: %w", domain.ErrAddressNotFound)
	}
	a, err := buildAddress(*input.ShipFrom)
	if err != nil {
		return domain.Address{}, fmt.Errorf("ship_from: %w", err)
	}
	return a, nil
}

func (s *ShipmentService) countValidation(err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationErrorsTotal.WithLabelValues(ve.Field).Inc()
		s.logger.Warn().Str("field", ve.Field).Str("value", ve.Value).Msg("rejected enumerated value")
	}
}
