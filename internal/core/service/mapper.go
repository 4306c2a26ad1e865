package service

import (
	"fmt"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// Builders turning raw transport values into validated value objects.
// Each returns the first *domain.ValidationError it meets, wrapped with the
// position of the offending part.

func buildAddress(in ports.AddressInput) (domain.Address, error) {
	return domain.NewAddress(domain.AddressFields{
		Name:                 in.Name,
		Phone:                in.Phone,
		CompanyName:          in.CompanyName,
		AddressLine1:         in.AddressLine1,
		AddressLine2:         in.AddressLine2,
		AddressLine3:         in.AddressLine3,
		CityLocality:         in.CityLocality,
		StateProvince:        in.StateProvince,
		PostalCode:           in.PostalCode,
		CountryCode:          in.CountryCode,
		ResidentialIndicator: domain.ResidentialIndicator(in.ResidentialIndicator),
	})
}

func buildOptionalAddress(in *ports.AddressInput) (*domain.Address, error) {
	if in == nil {
		return nil, nil
	}
	a, err := buildAddress(*in)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func buildMoney(in ports.MoneyInput) (domain.MonetaryValue, error) {
	return domain.NewMonetaryValue(domain.Currency(in.Currency), in.Amount)
}

func buildPackages(in []ports.PackageInput) ([]domain.Package, error) {
	pkgs := make([]domain.Package, 0, len(in))
	for i, p := range in {
		pkg, err := buildPackage(p)
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}
		pkgs = append(pkgs, pkg)
	}
	return pkgs, nil
}

func buildPackage(in ports.PackageInput) (domain.Package, error) {
	weight, err := domain.NewPackageWeight(in.Weight.Value, domain.WeightUnit(in.Weight.Unit))
	if err != nil {
		return domain.Package{}, err
	}
	f := domain.PackageFields{
		PackageCode:       in.PackageCode,
		Weight:            weight,
		ExternalPackageID: in.ExternalPackageID,
	}
	if d := in.Dimensions; d != nil {
		dims, err := domain.NewPackageDimensions(domain.DimensionUnit(d.Unit), d.Length, d.Width, d.Height)
		if err != nil {
			return domain.Package{}, err
		}
		f.Dimensions = &dims
	}
	if in.InsuredValue != nil {
		v, err := buildMoney(*in.InsuredValue)
		if err != nil {
			return domain.Package{}, fmt.Errorf("insured_value: %w", err)
		}
		f.InsuredValue = &v
	}
	if m := in.LabelMessages; m != nil {
		f.LabelMessages = &domain.LabelMessages{
			Reference1: m.Reference1,
			Reference2: m.Reference2,
			Reference3: m.Reference3,
		}
	}
	return domain.NewPackage(f)
}

func buildCustoms(in *ports.CustomsInput) (*domain.CustomsOptions, error) {
	if in == nil {
		return nil, nil
	}
	items := make([]domain.CustomsItem, 0, len(in.Items))
	for i, it := range in.Items {
		v, err := buildMoney(it.Value)
		if err != nil {
			return nil, fmt.Errorf("customs_items[%d]: %w", i, err)
		}
		items = append(items, domain.CustomsItem{
			Description:          it.Description,
			Quantity:             it.Quantity,
			Value:                v,
			HarmonizedTariffCode: it.HarmonizedTariffCode,
			CountryOfOrigin:      it.CountryOfOrigin,
		})
	}
	c, err := domain.NewCustomsOptions(domain.CustomsFields{
		Contents:    domain.CustomsContents(in.Contents),
		NonDelivery: domain.NonDelivery(in.NonDelivery),
		Items:       items,
	})
	if err != nil {
		return nil, fmt.Errorf("customs: %w", err)
	}
	return &c, nil
}

func buildAdvancedOptions(in *ports.AdvancedOptionsInput) (*domain.AdvancedOptions, error) {
	if in == nil {
		return nil, nil
	}
	f := domain.AdvancedFields{
		ContainsAlcohol:   in.ContainsAlcohol,
		DeliveredDutyPaid: in.DeliveredDutyPaid,
		DryIce:            in.DryIce,
		NonMachinable:     in.NonMachinable,
		SaturdayDelivery:  in.SaturdayDelivery,
	}
	if w := in.DryIceWeight; w != nil {
		weight, err := domain.NewPackageWeight(w.Value, domain.WeightUnit(w.Unit))
		if err != nil {
			return nil, fmt.Errorf("advanced_options.dry_ice_weight: %w", err)
		}
		f.DryIceWeight = &weight
	}
	if cod := in.CollectOnDelivery; cod != nil {
		amount, err := buildMoney(cod.Amount)
		if err != nil {
			return nil, fmt.Errorf("advanced_options.collect_on_delivery: %w", err)
		}
		f.CollectOnDelivery = &domain.CollectOnDelivery{
			PaymentType:   domain.CODPaymentType(cod.PaymentType),
			PaymentAmount: amount,
		}
	}
	a, err := domain.NewAdvancedOptions(f)
	if err != nil {
		return nil, fmt.Errorf("advanced_options: %w", err)
	}
	return &a, nil
}

func buildRateOptions(in ports.RateOptionsInput) (domain.RateOptions, error) {
	return domain.NewRateOptions(domain.RateFields{
		CarrierIDs:         in.CarrierIDs,
		PackageTypes:       in.PackageTypes,
		ServiceCodes:       in.ServiceCodes,
		CalculateTaxAmount: in.CalculateTaxAmount,
		PreferredCurrency:  domain.Currency(in.PreferredCurrency),
	})
}
