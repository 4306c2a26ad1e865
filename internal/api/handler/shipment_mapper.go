package handler

import (
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// Mapping from HTTP request types to service DTOs.

func toAddressInput(r addressRequest) ports.AddressInput {
	return ports.AddressInput{
		Name:                 r.Name,
		Phone:                r.Phone,
		CompanyName:          r.CompanyName,
		AddressLine1:         r.AddressLine1,
		AddressLine2:         r.AddressLine2,
		AddressLine3:         r.AddressLine3,
		CityLocality:         r.CityLocality,
		StateProvince:        r.StateProvince,
		PostalCode:           r.PostalCode,
		CountryCode:          r.CountryCode,
		ResidentialIndicator: r.ResidentialIndicator,
	}
}

func toOptionalAddressInput(r *addressRequest) *ports.AddressInput {
	if r == nil {
		return nil
	}
	in := toAddressInput(*r)
	return &in
}

func toMoneyInput(r moneyRequest) ports.MoneyInput {
	return ports.MoneyInput{Currency: r.Currency, Amount: r.Amount}
}

func toWeightInput(r weightRequest) ports.WeightInput {
	return ports.WeightInput{Value: r.Value, Unit: r.Unit}
}

func toPackageInputs(rs []packageRequest) []ports.PackageInput {
	out := make([]ports.PackageInput, 0, len(rs))
	for _, r := range rs {
		in := ports.PackageInput{
			PackageCode:       r.PackageCode,
			Weight:            toWeightInput(r.Weight),
			ExternalPackageID: r.ExternalPackageID,
		}
		if d := r.Dimensions; d != nil {
			in.Dimensions = &ports.DimensionsInput{Unit: d.Unit, Length: d.Length, Width: d.Width, Height: d.Height}
		}
		if v := r.InsuredValue; v != nil {
			m := toMoneyInput(*v)
			in.InsuredValue = &m
		}
		if m := r.LabelMessages; m != nil {
			in.LabelMessages = &ports.LabelMessagesInput{Reference1: m.Reference1, Reference2: m.Reference2, Reference3: m.Reference3}
		}
		out = append(out, in)
	}
	return out
}

func toCustomsInput(r *customsRequest) *ports.CustomsInput {
	if r == nil {
		return nil
	}
	in := &ports.CustomsInput{Contents: r.Contents, NonDelivery: r.NonDelivery}
	for _, it := range r.Items {
		in.Items = append(in.Items, ports.CustomsItemInput{
			Description:          it.Description,
			Quantity:             it.Quantity,
			Value:                toMoneyInput(it.Value),
			HarmonizedTariffCode: it.HarmonizedTariffCode,
			CountryOfOrigin:      it.CountryOfOrigin,
		})
	}
	return in
}

func toAdvancedOptionsInput(r *advancedOptionsRequest) *ports.AdvancedOptionsInput {
	if r == nil {
		return nil
	}
	in := &ports.AdvancedOptionsInput{
		ContainsAlcohol:   r.ContainsAlcohol,
		DeliveredDutyPaid: r.DeliveredDutyPaid,
		DryIce:            r.DryIce,
		NonMachinable:     r.NonMachinable,
		SaturdayDelivery:  r.SaturdayDelivery,
	}
	if w := r.DryIceWeight; w != nil {
		wi := toWeightInput(*w)
		in.DryIceWeight = &wi
	}
	if cod := r.CollectOnDelivery; cod != nil {
		in.CollectOnDelivery = &ports.CollectOnDeliveryInput{
			PaymentType: cod.PaymentType,
			Amount:      toMoneyInput(cod.PaymentAmount),
		}
	}
	return in
}

func toCreateShipmentInput(userID string, r createShipmentRequest) ports.CreateShipmentInput {
	return ports.CreateShipmentInput{
		UserID:             userID,
		ShipTo:             toAddressInput(r.ShipTo),
		ShipFrom:           toOptionalAddressInput(r.ShipFrom),
		ShipFromAddressID:  r.ShipFromAddressID,
		ReturnTo:           toOptionalAddressInput(r.ReturnTo),
		Packages:           toPackageInputs(r.Packages),
		Customs:            toCustomsInput(r.Customs),
		AdvancedOptions:    toAdvancedOptionsInput(r.AdvancedOptions),
		ServiceCode:        r.ServiceCode,
		Confirmation:       r.Confirmation,
		ExternalShipmentID: r.ExternalShipmentID,
		ExternalOrderID:    r.ExternalOrderID,
	}
}

func toGetRatesInput(r getRatesRequest) ports.GetRatesInput {
	return ports.GetRatesInput{
		ShipmentID: r.ShipmentID,
		Options: ports.RateOptionsInput{
			CarrierIDs:         r.RateOptions.CarrierIDs,
			PackageTypes:       r.RateOptions.PackageTypes,
			ServiceCodes:       r.RateOptions.ServiceCodes,
			CalculateTaxAmount: r.RateOptions.CalculateTaxAmount,
			PreferredCurrency:  r.RateOptions.PreferredCurrency,
		},
	}
}
