package ports

import (
	"context"
)

// AddressInput holds a postal address as raw form values.
type AddressInput struct {
	Name                 string
	Phone                string
	CompanyName          string
	AddressLine1         string
	AddressLine2         string
	AddressLine3         string
	CityLocality         string
	StateProvince        string
	PostalCode           string
	CountryCode          string
	ResidentialIndicator string
}

type WeightInput struct {
	Value float64
	Unit  string
}

type DimensionsInput struct {
	Unit   string
	Length float64
	Width  float64
	Height float64
}

type MoneyInput struct {
	Currency string
	Amount   float64
}

type LabelMessagesInput struct {
	Reference1 string
	Reference2 string
	Reference3 string
}

// PackageInput holds one parcel's details.
type PackageInput struct {
	PackageCode       string
	Weight            WeightInput
	Dimensions        *DimensionsInput
	InsuredValue      *MoneyInput
	LabelMessages     *LabelMessagesInput
	ExternalPackageID string
}

type CustomsItemInput struct {
	Description          string
	Quantity             int
	Value                MoneyInput
	HarmonizedTariffCode string
	CountryOfOrigin      string
}

type CustomsInput struct {
	Contents    string
	NonDelivery string
	Items       []CustomsItemInput
}

type CollectOnDeliveryInput struct {
	PaymentType string
	Amount      MoneyInput
}

type AdvancedOptionsInput struct {
	ContainsAlcohol   bool
	DeliveredDutyPaid bool
	DryIce            bool
	DryIceWeight      *WeightInput
	NonMachinable     bool
	SaturdayDelivery  bool
	CollectOnDelivery *CollectOnDeliveryInput
}

// CreateShipmentInput carries all data needed to create a shipment or label.
// The ship-from side is either given inline or by the ID of an address the
// user saved earlier; ShipFromAddressID wins when both are set.
type CreateShipmentInput struct {
	UserID            string
	ShipTo            AddressInput
	ShipFrom          *AddressInput
	ShipFromAddressID string
	ReturnTo          *AddressInput
	Packages          []PackageInput
	Customs           *CustomsInput
	AdvancedOptions   *AdvancedOptionsInput

	// Empty values fall back to the configured or documented defaults.
	ServiceCode        string
	Confirmation       string
	ExternalShipmentID string
	ExternalOrderID    string
}

type RateOptionsInput struct {
	CarrierIDs         []string
	PackageTypes       []string
	ServiceCodes       []string
	CalculateTaxAmount bool
	PreferredCurrency  string
}

// GetRatesInput asks for quotes on a shipment the carrier already knows.
type GetRatesInput struct {
	ShipmentID string
	Options    RateOptionsInput
}

// ShipmentService defines use-case operations for shipments.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*CarrierResult, error)
	CreateLabel(ctx context.Context, input CreateShipmentInput) (*CarrierResult, error)
	GetRates(ctx context.Context, input GetRatesInput) (*CarrierResult, error)
	CreateLabelFromRate(ctx context.Context, rateID string) (*CarrierResult, error)
}
