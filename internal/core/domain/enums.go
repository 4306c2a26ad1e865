package domain

import "slices"

// ResidentialIndicator classifies a delivery address for carrier pricing.
type ResidentialIndicator string

const (
	ResidentialYes     ResidentialIndicator = "yes"
	ResidentialNo      ResidentialIndicator = "no"
	ResidentialUnknown ResidentialIndicator = "unknown"
)

var residentialIndicators = []ResidentialIndicator{ResidentialYes, ResidentialNo, ResidentialUnknown}

type WeightUnit string

const (
	WeightPound    WeightUnit = "pound"
	WeightOunce    WeightUnit = "ounce"
	WeightGram     WeightUnit = "gram"
	WeightKilogram WeightUnit = "kilogram"
)

var weightUnits = []WeightUnit{WeightPound, WeightOunce, WeightGram, WeightKilogram}

type DimensionUnit string

const (
	DimensionInch       DimensionUnit = "inch"
	DimensionCentimeter DimensionUnit = "centimeter"
)

var dimensionUnits = []DimensionUnit{DimensionInch, DimensionCentimeter}

// Currency is a lower-case ISO code accepted by the carrier API.
type Currency string

const (
	CurrencyUSD Currency = "usd"
	CurrencyCAD Currency = "cad"
	CurrencyAUD Currency = "aud"
	CurrencyGBP Currency = "gbp"
	CurrencyEUR Currency = "eur"
	CurrencyNZD Currency = "nzd"
)

var currencies = []Currency{CurrencyUSD, CurrencyCAD, CurrencyAUD, CurrencyGBP, CurrencyEUR, CurrencyNZD}

type CustomsContents string

const (
	ContentsMerchandise   CustomsContents = "merchandise"
	ContentsDocuments     CustomsContents = "documents"
	ContentsGift          CustomsContents = "gift"
	ContentsReturnedGoods CustomsContents = "returned_goods"
	ContentsSample        CustomsContents = "sample"
)

var customsContents = []CustomsContents{
	ContentsMerchandise, ContentsDocuments, ContentsGift, ContentsReturnedGoods, ContentsSample,
}

type NonDelivery string

const (
	NonDeliveryReturnToSender   NonDelivery = "return_to_sender"
	NonDeliveryTreatAsAbandoned NonDelivery = "treat_as_abandoned"
)

var nonDeliveries = []NonDelivery{NonDeliveryReturnToSender, NonDeliveryTreatAsAbandoned}

// Confirmation is the delivery confirmation level requested from the carrier.
type Confirmation string

const (
	ConfirmationNone            Confirmation = "none"
	ConfirmationDelivery        Confirmation = "delivery"
	ConfirmationSignature       Confirmation = "signature"
	ConfirmationAdultSignature  Confirmation = "adult_signature"
	ConfirmationDirectSignature Confirmation = "direct_signature"
	ConfirmationDeliveryMailed  Confirmation = "delivery_mailed"
)

var confirmations = []Confirmation{
	ConfirmationNone, ConfirmationDelivery, ConfirmationSignature,
	ConfirmationAdultSignature, ConfirmationDirectSignature, ConfirmationDeliveryMailed,
}

type AddressValidation string

const (
	NoValidation     AddressValidation = "no_validation"
	ValidateOnly     AddressValidation = "validate_only"
	ValidateAndClean AddressValidation = "validate_and_clean"
)

var addressValidations = []AddressValidation{NoValidation, ValidateOnly, ValidateAndClean}

type InsuranceProvider string

const (
	InsuranceNone        InsuranceProvider = "none"
	InsuranceShipsurance InsuranceProvider = "shipsurance"
	InsuranceCarrier     InsuranceProvider = "carrier"
	InsuranceThirdParty  InsuranceProvider = "third_party"
)

var insuranceProviders = []InsuranceProvider{InsuranceNone, InsuranceShipsurance, InsuranceCarrier, InsuranceThirdParty}

// CODPaymentType is the accepted payment form for collect-on-delivery.
type CODPaymentType string

const (
	CODAny            CODPaymentType = "any"
	CODCash           CODPaymentType = "cash"
	CODCashEquivalent CODPaymentType = "cash_equivalent"
	CODNone           CODPaymentType = "none"
)

var codPaymentTypes = []CODPaymentType{CODAny, CODCash, CODCashEquivalent, CODNone}

func (v ResidentialIndicator) Valid() bool { return slices.Contains(residentialIndicators, v) }
func (v WeightUnit) Valid() bool           { return slices.Contains(weightUnits, v) }
func (v DimensionUnit) Valid() bool        { return slices.Contains(dimensionUnits, v) }
func (v Currency) Valid() bool             { return slices.Contains(currencies, v) }
func (v CustomsContents) Valid() bool      { return slices.Contains(customsContents, v) }
func (v NonDelivery) Valid() bool          { return slices.Contains(nonDeliveries, v) }
func (v Confirmation) Valid() bool         { return slices.Contains(confirmations, v) }
func (v AddressValidation) Valid() bool    { return slices.Contains(addressValidations, v) }
func (v InsuranceProvider) Valid() bool    { return slices.Contains(insuranceProviders, v) }
func (v CODPaymentType) Valid() bool       { return slices.Contains(codPaymentTypes, v) }

// checkEnum returns a *ValidationError naming field when v is not in allowed.
func checkEnum[T ~string](field string, v T, allowed []T) error {
	if slices.Contains(allowed, v) {
		return nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return &ValidationError{Field: field, Value: string(v), Allowed: names}
}
