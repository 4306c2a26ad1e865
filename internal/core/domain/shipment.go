package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ShipDateLayout is the ship_date format sent to the carrier (MM/DD/YYYY).
const ShipDateLayout = "01/02/2006"

type ShipmentFields struct {
	CarrierID          string            `json:"carrier_id"`
	ServiceCode        string            `json:"service_code"`
	ValidateAddress    AddressValidation `json:"validate_address"`
	ExternalShipmentID string            `json:"external_shipment_id,omitempty"`
	ExternalOrderID    string            `json:"external_order_id,omitempty"`
	ShipDate           string            `json:"ship_date"`
	ShipTo             Address           `json:"ship_to"`
	ShipFrom           Address           `json:"ship_from"`
	ReturnTo           *Address          `json:"return_to,omitempty"`
	Confirmation       Confirmation      `json:"confirmation"`
	Customs            *CustomsOptions   `json:"customs,omitempty"`
	AdvancedOptions    *AdvancedOptions  `json:"advanced_options,omitempty"`
	InsuranceProvider  InsuranceProvider `json:"insurance_provider"`
	Packages           []Package         `json:"packages"`
}

// ShipmentRequest is the aggregate posted to the carrier for shipments and
// labels. It owns one ship-to, one ship-from, an optional return-to and the
// packages.
type ShipmentRequest struct {
	f ShipmentFields
}

func NewShipmentRequest(f ShipmentFields) (ShipmentRequest, error) {
	if err := checkEnum("confirmation", f.Confirmation, confirmations); err != nil {
		return ShipmentRequest{}, err
	}
	if err := checkEnum("validate_address", f.ValidateAddress, addressValidations); err != nil {
		return ShipmentRequest{}, err
	}
	if err := checkEnum("insurance_provider", f.InsuranceProvider, insuranceProviders); err != nil {
		return ShipmentRequest{}, err
	}
	// Zero-value addresses were never passed through NewAddress.
	if err := checkEnum("ship_to.address_residential_indicator", f.ShipTo.f.ResidentialIndicator, residentialIndicators); err != nil {
		return ShipmentRequest{}, err
	}
	if err := checkEnum("ship_from.address_residential_indicator", f.ShipFrom.f.ResidentialIndicator, residentialIndicators); err != nil {
		return ShipmentRequest{}, err
	}
	if f.ReturnTo != nil {
		if err := checkEnum("return_to.address_residential_indicator", f.ReturnTo.f.ResidentialIndicator, residentialIndicators); err != nil {
			return ShipmentRequest{}, err
		}
	}
	if f.Customs != nil {
		if err := checkEnum("customs.contents", f.Customs.f.Contents, customsContents); err != nil {
			return ShipmentRequest{}, err
		}
	}
	for i, p := range f.Packages {
		if err := checkEnum(fmt.Sprintf("packages[%d].weight.unit", i), p.f.Weight.unit, weightUnits); err != nil {
			return ShipmentRequest{}, err
		}
	}
	return ShipmentRequest{f: cloneShipmentFields(f)}, nil
}

func (s ShipmentRequest) Fields() ShipmentFields { return cloneShipmentFields(s.f) }

func (s ShipmentRequest) CarrierID() string          { return s.f.CarrierID }
func (s ShipmentRequest) ServiceCode() string        { return s.f.ServiceCode }
func (s ShipmentRequest) ShipDate() string           { return s.f.ShipDate }
func (s ShipmentRequest) Confirmation() Confirmation { return s.f.Confirmation }
func (s ShipmentRequest) ShipTo() Address            { return s.f.ShipTo }
func (s ShipmentRequest) ShipFrom() Address          { return s.f.ShipFrom }
func (s ShipmentRequest) Packages() []Package        { return slices.Clone(s.f.Packages) }

// Customs returns nil when no declaration was supplied.
func (s ShipmentRequest) Customs() *CustomsOptions {
	if s.f.Customs == nil {
		return nil
	}
	c := *s.f.Customs
	return &c
}

// AdvancedOptions returns nil when none were supplied.
func (s ShipmentRequest) AdvancedOptions() *AdvancedOptions {
	if s.f.AdvancedOptions == nil {
		return nil
	}
	a := *s.f.AdvancedOptions
	return &a
}

func (s ShipmentRequest) MarshalJSON() ([]byte, error) {
	f := s.f
	if f.Packages == nil {
		f.Packages = []Package{}
	}
	return json.Marshal(f)
}

func (s *ShipmentRequest) UnmarshalJSON(data []byte) error {
	var f ShipmentFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewShipmentRequest(f)
	if err != nil {
		return err
	}
	*s = built
	return nil
}

func cloneShipmentFields(f ShipmentFields) ShipmentFields {
	if f.ReturnTo != nil {
		r := *f.ReturnTo
		f.ReturnTo = &r
	}
	if f.Customs != nil {
		c := *f.Customs
		f.Customs = &c
	}
	if f.AdvancedOptions != nil {
		a := *f.AdvancedOptions
		f.AdvancedOptions = &a
	}
	if len(f.Packages) == 0 {
		f.Packages = nil
	} else {
		f.Packages = slices.Clone(f.Packages)
	}
	return f
}
