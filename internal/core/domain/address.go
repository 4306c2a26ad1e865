package domain

import "encoding/json"

// AddressFields are the raw values of an Address. The json tags are the
// carrier wire contract.
type AddressFields struct {
	Name                 string               `json:"name"`
	Phone                string               `json:"phone"`
	CompanyName          string               `json:"company_name,omitempty"`
	AddressLine1         string               `json:"address_line1"`
	AddressLine2         string               `json:"address_line2,omitempty"`
	AddressLine3         string               `json:"address_line3,omitempty"`
	CityLocality         string               `json:"city_locality"`
	StateProvince        string               `json:"state_province"`
	PostalCode           string               `json:"postal_code"`
	CountryCode          string               `json:"country_code"`
	ResidentialIndicator ResidentialIndicator `json:"address_residential_indicator"`
}

// Address is a validated ship-to, ship-from or return-to location.
type Address struct {
	f AddressFields
}

// NewAddress validates the residential indicator. Lengths and formats are
// left to the form layer.
func NewAddress(f AddressFields) (Address, error) {
	if err := checkEnum("address_residential_indicator", f.ResidentialIndicator, residentialIndicators); err != nil {
		return Address{}, err
	}
	return Address{f: f}, nil
}

// Fields returns a copy of the address values.
func (a Address) Fields() AddressFields { return a.f }

func (a Address) Name() string        { return a.f.Name }
func (a Address) CountryCode() string { return a.f.CountryCode }

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.f)
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var f AddressFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewAddress(f)
	if err != nil {
		return err
	}
	*a = built
	return nil
}
