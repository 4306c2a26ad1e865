package domain

import (
	"encoding/json"
	"slices"
)

// CustomsItem is one declared line of an international shipment.
type CustomsItem struct {
	Description          string        `json:"description"`
	Quantity             int           `json:"quantity"`
	Value                MonetaryValue `json:"value"`
	HarmonizedTariffCode string        `json:"harmonized_tariff_code,omitempty"`
	CountryOfOrigin      string        `json:"country_of_origin,omitempty"`
}

type CustomsFields struct {
	Contents    CustomsContents `json:"contents"`
	NonDelivery NonDelivery     `json:"non_delivery"`
	Items       []CustomsItem   `json:"customs_items"`
}

// CustomsOptions is the customs declaration attached to a shipment.
type CustomsOptions struct {
	f CustomsFields
}

func NewCustomsOptions(f CustomsFields) (CustomsOptions, error) {
	if err := checkEnum("contents", f.Contents, customsContents); err != nil {
		return CustomsOptions{}, err
	}
	if err := checkEnum("non_delivery", f.NonDelivery, nonDeliveries); err != nil {
		return CustomsOptions{}, err
	}
	for _, it := range f.Items {
		if err := checkEnum("customs_items.value.currency", it.Value.currency, currencies); err != nil {
			return CustomsOptions{}, err
		}
	}
	if len(f.Items) == 0 {
		f.Items = nil
	} else {
		f.Items = slices.Clone(f.Items)
	}
	return CustomsOptions{f: f}, nil
}

func (c CustomsOptions) Fields() CustomsFields {
	f := c.f
	f.Items = slices.Clone(f.Items)
	return f
}

func (c CustomsOptions) Contents() CustomsContents { return c.f.Contents }
func (c CustomsOptions) NonDelivery() NonDelivery  { return c.f.NonDelivery }

func (c CustomsOptions) MarshalJSON() ([]byte, error) {
	f := c.f
	if f.Items == nil {
		f.Items = []CustomsItem{}
	}
	return json.Marshal(f)
}

func (c *CustomsOptions) UnmarshalJSON(data []byte) error {
	var f CustomsFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewCustomsOptions(f)
	if err != nil {
		return err
	}
	*c = built
	return nil
}
