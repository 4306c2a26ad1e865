package domain

import (
	"encoding/json"
	"slices"
)

// CollectOnDelivery asks the carrier to collect payment from the recipient.
type CollectOnDelivery struct {
	PaymentType   CODPaymentType `json:"payment_type"`
	PaymentAmount MonetaryValue  `json:"payment_amount"`
}

type AdvancedFields struct {
	ContainsAlcohol   bool               `json:"contains_alcohol"`
	DeliveredDutyPaid bool               `json:"delivered_duty_paid"`
	DryIce            bool               `json:"dry_ice"`
	DryIceWeight      *PackageWeight     `json:"dry_ice_weight,omitempty"`
	NonMachinable     bool               `json:"non_machinable"`
	SaturdayDelivery  bool               `json:"saturday_delivery"`
	CollectOnDelivery *CollectOnDelivery `json:"collect_on_delivery,omitempty"`
}

// AdvancedOptions holds carrier-specific flags.
type AdvancedOptions struct {
	f AdvancedFields
}

func NewAdvancedOptions(f AdvancedFields) (AdvancedOptions, error) {
	if f.DryIceWeight != nil {
		if err := checkEnum("dry_ice_weight.unit", f.DryIceWeight.unit, weightUnits); err != nil {
			return AdvancedOptions{}, err
		}
	}
	if cod := f.CollectOnDelivery; cod != nil {
		if err := checkEnum("collect_on_delivery.payment_type", cod.PaymentType, codPaymentTypes); err != nil {
			return AdvancedOptions{}, err
		}
		if err := checkEnum("collect_on_delivery.payment_amount.currency", cod.PaymentAmount.currency, currencies); err != nil {
			return AdvancedOptions{}, err
		}
	}
	return AdvancedOptions{f: cloneAdvancedFields(f)}, nil
}

func (a AdvancedOptions) Fields() AdvancedFields { return cloneAdvancedFields(a.f) }

func (a AdvancedOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.f)
}

func (a *AdvancedOptions) UnmarshalJSON(data []byte) error {
	var f AdvancedFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewAdvancedOptions(f)
	if err != nil {
		return err
	}
	*a = built
	return nil
}

func cloneAdvancedFields(f AdvancedFields) AdvancedFields {
	if f.DryIceWeight != nil {
		w := *f.DryIceWeight
		f.DryIceWeight = &w
	}
	if f.CollectOnDelivery != nil {
		c := *f.CollectOnDelivery
		f.CollectOnDelivery = &c
	}
	return f
}

type RateFields struct {
	CarrierIDs         []string `json:"carrier_ids,omitempty"`
	PackageTypes       []string `json:"package_types,omitempty"`
	ServiceCodes       []string `json:"service_codes,omitempty"`
	CalculateTaxAmount bool     `json:"calculate_tax_amount"`
	PreferredCurrency  Currency `json:"preferred_currency"`
}

// RateOptions narrows a rate quote request.
type RateOptions struct {
	f RateFields
}

func NewRateOptions(f RateFields) (RateOptions, error) {
	if err := checkEnum("preferred_currency", f.PreferredCurrency, currencies); err != nil {
		return RateOptions{}, err
	}
	return RateOptions{f: cloneRateFields(f)}, nil
}

func (r RateOptions) Fields() RateFields { return cloneRateFields(r.f) }

func (r RateOptions) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.f)
}

func (r *RateOptions) UnmarshalJSON(data []byte) error {
	var f RateFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewRateOptions(f)
	if err != nil {
		return err
	}
	*r = built
	return nil
}

func cloneRateFields(f RateFields) RateFields {
	f.CarrierIDs = cloneStrings(f.CarrierIDs)
	f.PackageTypes = cloneStrings(f.PackageTypes)
	f.ServiceCodes = cloneStrings(f.ServiceCodes)
	return f
}

// cloneStrings maps empty lists to nil so they survive an omitempty round trip.
func cloneStrings(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}
