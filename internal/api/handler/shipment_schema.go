package handler

// Field lengths match the limits of the signup and address forms.
// Enumerated values are left to the domain constructors, which answer 422.

type addressRequest struct {
	Name                 string `json:"name"                          validate:"required,min=2,max=25"`
	Phone                string `json:"phone"                         validate:"required,min=9,max=20"`
	CompanyName          string `json:"company_name"                  validate:"max=25"`
	AddressLine1         string `json:"address_line1"                 validate:"required,min=2,max=60"`
	AddressLine2         string `json:"address_line2"                 validate:"max=60"`
	AddressLine3         string `json:"address_line3"                 validate:"max=60"`
	CityLocality         string `json:"city_locality"                 validate:"required,min=2,max=50"`
	StateProvince        string `json:"state_province"                validate:"required,max=2"`
	PostalCode           string `json:"postal_code"                   validate:"required,max=15"`
	CountryCode          string `json:"country_code"                  validate:"required,len=2"`
	ResidentialIndicator string `json:"address_residential_indicator" validate:"required"`
}

type weightRequest struct {
	Value float64 `json:"value" validate:"gt=0"`
	Unit  string  `json:"unit"  validate:"required"`
}

type dimensionsRequest struct {
	Unit   string  `json:"unit"   validate:"required"`
	Length float64 `json:"length" validate:"gt=0"`
	Width  float64 `json:"width"  validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

type moneyRequest struct {
	Currency string  `json:"currency" validate:"required"`
	Amount   float64 `json:"amount"   validate:"min=0"`
}

type labelMessagesRequest struct {
	Reference1 string `json:"reference1" validate:"max=60"`
	Reference2 string `json:"reference2" validate:"max=60"`
	Reference3 string `json:"reference3" validate:"max=60"`
}

type packageRequest struct {
	PackageCode       string                `json:"package_code"`
	Weight            weightRequest         `json:"weight"`
	Dimensions        *dimensionsRequest    `json:"dimensions"`
	InsuredValue      *moneyRequest         `json:"insured_value"`
	LabelMessages     *labelMessagesRequest `json:"label_messages"`
	ExternalPackageID string                `json:"external_package_id"`
}

type customsItemRequest struct {
	Description          string       `json:"description" validate:"required"`
	Quantity             int          `json:"quantity"    validate:"gt=0"`
	Value                moneyRequest `json:"value"`
	HarmonizedTariffCode string       `json:"harmonized_tariff_code"`
	CountryOfOrigin      string       `json:"country_of_origin" validate:"omitempty,len=2"`
}

type customsRequest struct {
	Contents    string               `json:"contents"      validate:"required"`
	NonDelivery string               `json:"non_delivery"  validate:"required"`
	Items       []customsItemRequest `json:"customs_items" validate:"dive"`
}

type collectOnDeliveryRequest struct {
	PaymentType   string       `json:"payment_type" validate:"required"`
	PaymentAmount moneyRequest `json:"payment_amount"`
}

type advancedOptionsRequest struct {
	ContainsAlcohol   bool                      `json:"contains_alcohol"`
	DeliveredDutyPaid bool                      `json:"delivered_duty_paid"`
	DryIce            bool                      `json:"dry_ice"`
	DryIceWeight      *weightRequest            `json:"dry_ice_weight"`
	NonMachinable     bool                      `json:"non_machinable"`
	SaturdayDelivery  bool                      `json:"saturday_delivery"`
	CollectOnDelivery *collectOnDeliveryRequest `json:"collect_on_delivery"`
}

// createShipmentRequest is shared by POST /v1/shipments and POST /v1/labels.
// Either ship_from or ship_from_address_id must be given.
type createShipmentRequest struct {
	ShipTo             addressRequest          `json:"ship_to"`
	ShipFrom           *addressRequest         `json:"ship_from"            validate:"required_without=ShipFromAddressID"`
	ShipFromAddressID  string                  `json:"ship_from_address_id"`
	ReturnTo           *addressRequest         `json:"return_to"`
	Packages           []packageRequest        `json:"packages"             validate:"required,min=1,dive"`
	Customs            *customsRequest         `json:"customs"`
	AdvancedOptions    *advancedOptionsRequest `json:"advanced_options"`
	ServiceCode        string                  `json:"service_code"`
	Confirmation       string                  `json:"confirmation"`
	ExternalShipmentID string                  `json:"external_shipment_id"`
	ExternalOrderID    string                  `json:"external_order_id"`
}

type rateOptionsRequest struct {
	CarrierIDs         []string `json:"carrier_ids"`
	PackageTypes       []string `json:"package_types"`
	ServiceCodes       []string `json:"service_codes"`
	CalculateTaxAmount bool     `json:"calculate_tax_amount"`
	PreferredCurrency  string   `json:"preferred_currency" validate:"required"`
}

type getRatesRequest struct {
	ShipmentID  string             `json:"shipment_id" validate:"required"`
	RateOptions rateOptionsRequest `json:"rate_options"`
}

// carrierResponse wraps the carrier's answer unchanged.
type carrierResponse map[string]any
