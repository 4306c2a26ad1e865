package domain

import "encoding/json"

type PackageWeight struct {
	value float64
	unit  WeightUnit
}

type weightJSON struct {
	Value float64    `json:"value"`
	Unit  WeightUnit `json:"unit"`
}

func NewPackageWeight(value float64, unit WeightUnit) (PackageWeight, error) {
	if err := checkEnum("weight.unit", unit, weightUnits); err != nil {
		return PackageWeight{}, err
	}
	return PackageWeight{value: value, unit: unit}, nil
}

func (w PackageWeight) Value() float64   { return w.value }
func (w PackageWeight) Unit() WeightUnit { return w.unit }

func (w PackageWeight) MarshalJSON() ([]byte, error) {
	return json.Marshal(weightJSON{Value: w.value, Unit: w.unit})
}

func (w *PackageWeight) UnmarshalJSON(data []byte) error {
	var raw weightJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewPackageWeight(raw.Value, raw.Unit)
	if err != nil {
		return err
	}
	*w = built
	return nil
}

type PackageDimensions struct {
	unit                  DimensionUnit
	length, width, height float64
}

type dimensionsJSON struct {
	Unit   DimensionUnit `json:"unit"`
	Length float64       `json:"length"`
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
}

func NewPackageDimensions(unit DimensionUnit, length, width, height float64) (PackageDimensions, error) {
	if err := checkEnum("dimensions.unit", unit, dimensionUnits); err != nil {
		return PackageDimensions{}, err
	}
	return PackageDimensions{unit: unit, length: length, width: width, height: height}, nil
}

func (d PackageDimensions) Unit() DimensionUnit { return d.unit }
func (d PackageDimensions) Length() float64     { return d.length }
func (d PackageDimensions) Width() float64      { return d.width }
func (d PackageDimensions) Height() float64     { return d.height }

func (d PackageDimensions) MarshalJSON() ([]byte, error) {
	return json.Marshal(dimensionsJSON{Unit: d.unit, Length: d.length, Width: d.width, Height: d.height})
}

func (d *PackageDimensions) UnmarshalJSON(data []byte) error {
	var raw dimensionsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewPackageDimensions(raw.Unit, raw.Length, raw.Width, raw.Height)
	if err != nil {
		return err
	}
	*d = built
	return nil
}

// MonetaryValue is an amount in one of the supported currencies. It is used
// for insured values, customs declarations and collect-on-delivery amounts.
type MonetaryValue struct {
	currency Currency
	amount   float64
}

type monetaryJSON struct {
	Currency Currency `json:"currency"`
	Amount   float64  `json:"amount"`
}

func NewMonetaryValue(currency Currency, amount float64) (MonetaryValue, error) {
	if err := checkEnum("currency", currency, currencies); err != nil {
		return MonetaryValue{}, err
	}
	return MonetaryValue{currency: currency, amount: amount}, nil
}

func (m MonetaryValue) Currency() Currency { return m.currency }
func (m MonetaryValue) Amount() float64    { return m.amount }

func (m MonetaryValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(monetaryJSON{Currency: m.currency, Amount: m.amount})
}

func (m *MonetaryValue) UnmarshalJSON(data []byte) error {
	var raw monetaryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := NewMonetaryValue(raw.Currency, raw.Amount)
	if err != nil {
		return err
	}
	*m = built
	return nil
}

// LabelMessages are free-text references printed on the label.
type LabelMessages struct {
	Reference1 string `json:"reference1"`
	Reference2 string `json:"reference2"`
	Reference3 string `json:"reference3"`
}

type PackageFields struct {
	PackageCode       string             `json:"package_code,omitempty"`
	Weight            PackageWeight      `json:"weight"`
	Dimensions        *PackageDimensions `json:"dimensions,omitempty"`
	InsuredValue      *MonetaryValue     `json:"insured_value,omitempty"`
	LabelMessages     *LabelMessages     `json:"label_messages,omitempty"`
	ExternalPackageID string             `json:"external_package_id,omitempty"`
}

// Package is one parcel of a shipment.
type Package struct {
	f PackageFields
}

// NewPackage requires a weight built by NewPackageWeight. Dimensions and
// insured value, when present, must come from their own constructors too.
func NewPackage(f PackageFields) (Package, error) {
	if err := checkEnum("weight.unit", f.Weight.unit, weightUnits); err != nil {
		return Package{}, err
	}
	if f.Dimensions != nil {
		if err := checkEnum("dimensions.unit", f.Dimensions.unit, dimensionUnits); err != nil {
			return Package{}, err
		}
	}
	if f.InsuredValue != nil {
		if err := checkEnum("insured_value.currency", f.InsuredValue.currency, currencies); err != nil {
			return Package{}, err
		}
	}
	return Package{f: clonePackageFields(f)}, nil
}

func (p Package) Fields() PackageFields { return clonePackageFields(p.f) }

func (p Package) Weight() PackageWeight { return p.f.Weight }

func (p Package) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.f)
}

func (p *Package) UnmarshalJSON(data []byte) error {
	var f PackageFields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := NewPackage(f)
	if err != nil {
		return err
	}
	*p = built
	return nil
}

// clonePackageFields detaches the optional parts so callers cannot mutate a
// Package through a shared pointer.
func clonePackageFields(f PackageFields) PackageFields {
	if f.Dimensions != nil {
		d := *f.Dimensions
		f.Dimensions = &d
	}
	if f.InsuredValue != nil {
		v := *f.InsuredValue
		f.InsuredValue = &v
	}
	if f.LabelMessages != nil {
		m := *f.LabelMessages
		f.LabelMessages = &m
	}
	return f
}
