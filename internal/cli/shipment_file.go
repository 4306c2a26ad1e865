package cli

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// shipmentFile is the YAML document accepted by `csvshipper ship`. Keys
// follow the carrier's snake_case field names.
type shipmentFile struct {
	ServiceCode        string        `yaml:"service_code"`
	Confirmation       string        `yaml:"confirmation"`
	ExternalShipmentID string        `yaml:"external_shipment_id"`
	ExternalOrderID    string        `yaml:"external_order_id"`
	ShipTo             *addressYAML  `yaml:"ship_to"`
	ShipFrom           *addressYAML  `yaml:"ship_from"`
	ReturnTo           *addressYAML  `yaml:"return_to"`
	Packages           []packageYAML `yaml:"packages"`
	Customs            *customsYAML  `yaml:"customs"`
	AdvancedOptions    *advancedYAML `yaml:"advanced_options"`
}

type addressYAML struct {
	Name                 string `yaml:"name"`
	Phone                string `yaml:"phone"`
	CompanyName          string `yaml:"company_name"`
	AddressLine1         string `yaml:"address_line1"`
	AddressLine2         string `yaml:"address_line2"`
	AddressLine3         string `yaml:"address_line3"`
	CityLocality         string `yaml:"city_locality"`
	StateProvince        string `yaml:"state_province"`
	PostalCode           string `yaml:"postal_code"`
	CountryCode          string `yaml:"country_code"`
	ResidentialIndicator string `yaml:"address_residential_indicator"`
}

type weightYAML struct {
	Value float64 `yaml:"value"`
	Unit  string  `yaml:"unit"`
}

type moneyYAML struct {
	Currency string  `yaml:"currency"`
	Amount   float64 `yaml:"amount"`
}

type packageYAML struct {
	PackageCode string     `yaml:"package_code"`
	Weight      weightYAML `yaml:"weight"`
	Dimensions  *struct {
		Unit   string  `yaml:"unit"`
		Length float64 `yaml:"length"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"dimensions"`
	InsuredValue  *moneyYAML `yaml:"insured_value"`
	LabelMessages *struct {
		Reference1 string `yaml:"reference1"`
		Reference2 string `yaml:"reference2"`
		Reference3 string `yaml:"reference3"`
	} `yaml:"label_messages"`
	ExternalPackageID string `yaml:"external_package_id"`
}

type customsYAML struct {
	Contents    string `yaml:"contents"`
	NonDelivery string `yaml:"non_delivery"`
	Items       []struct {
		Description          string    `yaml:"description"`
		Quantity             int       `yaml:"quantity"`
		Value                moneyYAML `yaml:"value"`
		HarmonizedTariffCode string    `yaml:"harmonized_tariff_code"`
		CountryOfOrigin      string    `yaml:"country_of_origin"`
	} `yaml:"customs_items"`
}

type advancedYAML struct {
	ContainsAlcohol   bool        `yaml:"contains_alcohol"`
	DeliveredDutyPaid bool        `yaml:"delivered_duty_paid"`
	DryIce            bool        `yaml:"dry_ice"`
	DryIceWeight      *weightYAML `yaml:"dry_ice_weight"`
	NonMachinable     bool        `yaml:"non_machinable"`
	SaturdayDelivery  bool        `yaml:"saturday_delivery"`
	CollectOnDelivery *struct {
		PaymentType   string    `yaml:"payment_type"`
		PaymentAmount moneyYAML `yaml:"payment_amount"`
	} `yaml:"collect_on_delivery"`
}

// rateOptionsFile is the YAML document accepted by `csvshipper rates -f`.
type rateOptionsFile struct {
	CarrierIDs         []string `yaml:"carrier_ids"`
	PackageTypes       []string `yaml:"package_types"`
	ServiceCodes       []string `yaml:"service_codes"`
	CalculateTaxAmount bool     `yaml:"calculate_tax_amount"`
	PreferredCurrency  string   `yaml:"preferred_currency"`
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// toInput checks the structural requirements the domain leaves to callers
// and maps the file to a service input.
func (f shipmentFile) toInput() (ports.CreateShipmentInput, error) {
	var errs []error
	if f.ShipTo == nil {
		errs = append(errs, errors.New("ship_to is required"))
	}
	if f.ShipFrom == nil {
		errs = append(errs, errors.New("ship_from is required"))
	}
	if len(f.Packages) == 0 {
		errs = append(errs, errors.New("at least one package is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return ports.CreateShipmentInput{}, err
	}

	in := ports.CreateShipmentInput{
		ShipTo:             f.ShipTo.toInput(),
		ShipFrom:           f.ShipFrom.toInputPtr(),
		ReturnTo:           f.ReturnTo.toInputPtr(),
		ServiceCode:        f.ServiceCode,
		Confirmation:       f.Confirmation,
		ExternalShipmentID: f.ExternalShipmentID,
		ExternalOrderID:    f.ExternalOrderID,
	}

	for _, p := range f.Packages {
		pi := ports.PackageInput{
			PackageCode:       p.PackageCode,
			Weight:            ports.WeightInput(p.Weight),
			ExternalPackageID: p.ExternalPackageID,
		}
		if d := p.Dimensions; d != nil {
			pi.Dimensions = &ports.DimensionsInput{Unit: d.Unit, Length: d.Length, Width: d.Width, Height: d.Height}
		}
		if v := p.InsuredValue; v != nil {
			m := ports.MoneyInput(*v)
			pi.InsuredValue = &m
		}
		if m := p.LabelMessages; m != nil {
			pi.LabelMessages = &ports.LabelMessagesInput{Reference1: m.Reference1, Reference2: m.Reference2, Reference3: m.Reference3}
		}
		in.Packages = append(in.Packages, pi)
	}

	if c := f.Customs; c != nil {
		ci := &ports.CustomsInput{Contents: c.Contents, NonDelivery: c.NonDelivery}
		for _, it := range c.Items {
			ci.Items = append(ci.Items, ports.CustomsItemInput{
				Description:          it.Description,
				Quantity:             it.Quantity,
				Value:                ports.MoneyInput(it.Value),
				HarmonizedTariffCode: it.HarmonizedTariffCode,
				CountryOfOrigin:      it.CountryOfOrigin,
			})
		}
		in.Customs = ci
	}

	if a := f.AdvancedOptions; a != nil {
		ai := &ports.AdvancedOptionsInput{
			ContainsAlcohol:   a.ContainsAlcohol,
			DeliveredDutyPaid: a.DeliveredDutyPaid,
			DryIce:            a.DryIce,
			NonMachinable:     a.NonMachinable,
			SaturdayDelivery:  a.SaturdayDelivery,
		}
		if w := a.DryIceWeight; w != nil {
			wi := ports.WeightInput(*w)
			ai.DryIceWeight = &wi
		}
		if cod := a.CollectOnDelivery; cod != nil {
			ai.CollectOnDelivery = &ports.CollectOnDeliveryInput{
				PaymentType: cod.PaymentType,
				Amount:      ports.MoneyInput(cod.PaymentAmount),
			}
		}
		in.AdvancedOptions = ai
	}
	return in, nil
}

func (a *addressYAML) toInput() ports.AddressInput {
	return ports.AddressInput(*a)
}

func (a *addressYAML) toInputPtr() *ports.AddressInput {
	if a == nil {
		return nil
	}
	in := a.toInput()
	return &in
}

func (r rateOptionsFile) toInput() ports.RateOptionsInput {
	return ports.RateOptionsInput(r)
}
