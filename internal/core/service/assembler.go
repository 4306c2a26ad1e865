package service

import (
	"time"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
)

// Defaults applied by Assemble when the caller leaves a field empty.
const (
	DefaultAddressValidation = domain.ValidateAndClean
	DefaultConfirmation      = domain.ConfirmationDelivery
	DefaultInsuranceProvider = domain.InsuranceNone
)

// AssembleInput gathers already-built value objects. Zero values for the
// override fields take the documented defaults.
type AssembleInput struct {
	ShipTo          domain.Address
	ShipFrom        domain.Address
	ReturnTo        *domain.Address
	Packages        []domain.Package
	Customs         *domain.CustomsOptions
	AdvancedOptions *domain.AdvancedOptions
	CarrierID       string
	ServiceCode     string

	ShipDate           time.Time
	ValidateAddress    domain.AddressValidation
	Confirmation       domain.Confirmation
	InsuranceProvider  domain.InsuranceProvider
	ExternalShipmentID string
	ExternalOrderID    string
}

// Assembler merges value objects into a ShipmentRequest. It performs no I/O.
type Assembler struct {
	now func() time.Time
}

// NewAssembler returns an Assembler reading the ship date from now.
// A nil clock falls back to time.Now.
func NewAssembler(now func() time.Time) *Assembler {
	if now == nil {
		now = time.Now
	}
	return &Assembler{now: now}
}

// Assemble builds the request. An empty package list is passed through;
// callers that need at least one package check it themselves.
func (a *Assembler) Assemble(in AssembleInput) (domain.ShipmentRequest, error) {
	shipDate := in.ShipDate
	if shipDate.IsZero() {
		shipDate = a.now()
	}

	f := domain.ShipmentFields{
		CarrierID:          in.CarrierID,
		ServiceCode:        in.ServiceCode,
		ValidateAddress:    orDefault(in.ValidateAddress, DefaultAddressValidation),
		ExternalShipmentID: in.ExternalShipmentID,
		ExternalOrderID:    in.ExternalOrderID,
		ShipDate:           shipDate.Format(domain.ShipDateLayout),
		ShipTo:             in.ShipTo,
		ShipFrom:           in.ShipFrom,
		ReturnTo:           in.ReturnTo,
		Confirmation:       orDefault(in.Confirmation, DefaultConfirmation),
		Customs:            in.Customs,
		AdvancedOptions:    in.AdvancedOptions,
		InsuranceProvider:  orDefault(in.InsuranceProvider, DefaultInsuranceProvider),
		Packages:           in.Packages,
	}
	return domain.NewShipmentRequest(f)
}

func orDefault[T ~string](v, def T) T {
	if v == "" {
		return def
	}
	return v
}
