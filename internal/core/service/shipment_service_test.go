package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubCarrier struct {
	err       error
	shipments []domain.ShipmentRequest
	labels    []domain.ShipmentRequest
	rateCalls []string
	rateOpts  []domain.RateOptions
	fromRate  []string
}

func (c *stubCarrier) result() (*ports.CarrierResult, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &ports.CarrierResult{StatusCode: 200, Body: map[string]any{"ok": true}}, nil
}

func (c *stubCarrier) CreateShipment(_ context.Context, req domain.ShipmentRequest) (*ports.CarrierResult, error) {
	c.shipments = append(c.shipments, req)
	return c.result()
}

func (c *stubCarrier) CreateLabel(_ context.Context, req domain.ShipmentRequest) (*ports.CarrierResult, error) {
	c.labels = append(c.labels, req)
	return c.result()
}

func (c *stubCarrier) GetRates(_ context.Context, shipmentID string, opts domain.RateOptions) (*ports.CarrierResult, error) {
	c.rateCalls = append(c.rateCalls, shipmentID)
	c.rateOpts = append(c.rateOpts, opts)
	return c.result()
}

func (c *stubCarrier) CreateLabelFromRate(_ context.Context, rateID string) (*ports.CarrierResult, error) {
	c.fromRate = append(c.fromRate, rateID)
	return c.result()
}

type stubAddressRepo struct {
	byID map[string]*domain.SavedAddress
}

func newStubAddressRepo() *stubAddressRepo {
	return &stubAddressRepo{byID: make(map[string]*domain.SavedAddress)}
}

func (r *stubAddressRepo) Create(_ context.Context, a *domain.SavedAddress) (*domain.SavedAddress, error) {
	c := *a
	if c.ID == "" {
		c.ID = "addr-" + c.Address.Name()
	}
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *stubAddressRepo) ListByUser(_ context.Context, userID string) ([]domain.SavedAddress, error) {
	var out []domain.SavedAddress
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAddressRepo) FindByID(_ context.Context, userID, id string) (*domain.SavedAddress, error) {
	a, ok := r.byID[id]
	if !ok || a.UserID != userID {
		return nil, domain.ErrAddressNotFound
	}
	c := *a
	return &c, nil
}

func (r *stubAddressRepo) Delete(_ context.Context, userID, id string) error {
	a, ok := r.byID[id]
	if !ok || a.UserID != userID {
		return domain.ErrAddressNotFound
	}
	delete(r.byID, id)
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func addressInput(name string) ports.AddressInput {
	return ports.AddressInput{
		Name:                 name,
		Phone:                "1-654-987-3124",
		AddressLine1:         "3800 N Lamar Blvd",
		CityLocality:         "Austin",
		StateProvince:        "TX",
		PostalCode:           "78756",
		CountryCode:          "US",
		ResidentialIndicator: "no",
	}
}

func minimalInput() ports.CreateShipmentInput {
	from := addressInput("Monkey D. Luffy")
	return ports.CreateShipmentInput{
		UserID:   "user-1",
		ShipTo:   addressInput("Kasey Cantu"),
		ShipFrom: &from,
		Packages: []ports.PackageInput{{
			Weight:     ports.WeightInput{Value: 2.5, Unit: "pound"},
			Dimensions: &ports.DimensionsInput{Unit: "inch", Length: 12.5, Width: 12.5, Height: 12.5},
		}},
	}
}

func newShipmentSvc(carrier *stubCarrier, addrs ports.AddressRepository) *ShipmentService {
	return NewShipmentService(carrier, addrs, NewAssembler(fixedClock),
		ShipmentConfig{CarrierID: "se-123456", ServiceCode: "ups_next_day_air"}, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestShipmentService_CreateShipment_Success(t *testing.T) {
	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, nil)

	res, err := svc.CreateShipment(context.Background(), minimalInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.StatusCode != 200 {
		t.Errorf("unexpected status: %d", res.StatusCode)
	}
	if len(carrier.shipments) != 1 {
		t.Fatalf("expected one carrier call, got %d", len(carrier.shipments))
	}

	req := carrier.shipments[0]
	if req.CarrierID() != "se-123456" || req.ServiceCode() != "ups_next_day_air" {
		t.Errorf("carrier settings not applied: %s / %s", req.CarrierID(), req.ServiceCode())
	}
	if req.ShipDate() != "03/07/2026" {
		t.Errorf("unexpected ship date: %s", req.ShipDate())
	}
	if req.Confirmation() != domain.ConfirmationDelivery {
		t.Errorf("unexpected confirmation: %s", req.Confirmation())
	}
	if req.ShipTo().Name() != "Kasey Cantu" {
		t.Errorf("unexpected ship_to: %s", req.ShipTo().Name())
	}
}

func TestShipmentService_CreateLabel_ServiceCodeOverride(t *testing.T) {
	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, nil)

	in := minimalInput()
	in.ServiceCode = "ups_ground"
	if _, err := svc.CreateLabel(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carrier.labels) != 1 || carrier.labels[0].ServiceCode() != "ups_ground" {
		t.Fatalf("expected label with overridden service code, got %+v", carrier.labels)
	}
}

func TestShipmentService_InvalidEnum_NoCarrierCall(t *testing.T) {
	cases := map[string]func(*ports.CreateShipmentInput){
		"residential": func(in *ports.CreateShipmentInput) { in.ShipTo.ResidentialIndicator = "maybe" },
		"weight unit": func(in *ports.CreateShipmentInput) { in.Packages[0].Weight.Unit = "stone" },
		"confirmation": func(in *ports.CreateShipmentInput) {
			in.Confirmation = "carrier_pigeon"
		},
		"customs contents": func(in *ports.CreateShipmentInput) {
			in.Customs = &ports.CustomsInput{Contents: "contraband", NonDelivery: "return_to_sender"}
		},
		"cod payment": func(in *ports.CreateShipmentInput) {
			in.AdvancedOptions = &ports.AdvancedOptionsInput{CollectOnDelivery: &ports.CollectOnDeliveryInput{
				PaymentType: "iou", Amount: ports.MoneyInput{Currency: "usd", Amount: 5},
			}}
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			carrier := &stubCarrier{}
			svc := newShipmentSvc(carrier, nil)

			in := minimalInput()
			mutate(&in)
			_, err := svc.CreateShipment(context.Background(), in)
			if !errors.Is(err, domain.ErrInvalidEnum) {
				t.Fatalf("expected ErrInvalidEnum, got %v", err)
			}
			if len(carrier.shipments) != 0 {
				t.Fatalf("carrier must not be called on validation failure")
			}
		})
	}
}

func TestShipmentService_SavedShipFrom(t *testing.T) {
	addrs := newStubAddressRepo()
	from, err := buildAddress(addressInput("Saved Warehouse"))
	if err != nil {
		t.Fatalf("build address: %v", err)
	}
	saved, _ := addrs.Create(context.Background(), &domain.SavedAddress{UserID: "user-1", Address: from})

	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, addrs)

	in := minimalInput()
	in.ShipFrom = nil
	in.ShipFromAddressID = saved.ID
	if _, err := svc.CreateShipment(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := carrier.shipments[0].ShipFrom().Name(); got != "Saved Warehouse" {
		t.Errorf("expected saved ship_from, got %s", got)
	}
}

func TestShipmentService_SavedShipFrom_OtherUser(t *testing.T) {
	addrs := newStubAddressRepo()
	from, _ := buildAddress(addressInput("Saved Warehouse"))
	saved, _ := addrs.Create(context.Background(), &domain.SavedAddress{UserID: "user-2", Address: from})

	svc := newShipmentSvc(&stubCarrier{}, addrs)
	in := minimalInput()
	in.ShipFromAddressID = saved.ID

	if _, err := svc.CreateShipment(context.Background(), in); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestShipmentService_MissingShipFrom(t *testing.T) {
	svc := newShipmentSvc(&stubCarrier{}, nil)
	in := minimalInput()
	in.ShipFrom = nil

	if _, err := svc.CreateShipment(context.Background(), in); !errors.Is(err, domain.ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestShipmentService_CarrierErrorPropagates(t *testing.T) {
	apiErr := &domain.APIError{StatusCode: 400, Messages: []string{"Invalid postal code"}}
	svc := newShipmentSvc(&stubCarrier{err: apiErr}, nil)

	_, err := svc.CreateShipment(context.Background(), minimalInput())
	var got *domain.APIError
	if !errors.As(err, &got) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if len(got.Messages) != 1 || got.Messages[0] != "Invalid postal code" {
		t.Errorf("unexpected messages: %v", got.Messages)
	}
}

func TestShipmentService_GetRates_DefaultsCarrier(t *testing.T) {
	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, nil)

	_, err := svc.GetRates(context.Background(), ports.GetRatesInput{
		ShipmentID: "se-28529731",
		Options:    ports.RateOptionsInput{PreferredCurrency: "usd"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ids := carrier.rateOpts[0].Fields().CarrierIDs
	if len(ids) != 1 || ids[0] != "se-123456" {
		t.Errorf("expected configured carrier id, got %v", ids)
	}
}

func TestShipmentService_GetRates_Validation(t *testing.T) {
	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, nil)

	_, err := svc.GetRates(context.Background(), ports.GetRatesInput{
		ShipmentID: "se-1",
		Options:    ports.RateOptionsInput{PreferredCurrency: "btc"},
	})
	if !errors.Is(err, domain.ErrInvalidEnum) {
		t.Fatalf("expected ErrInvalidEnum, got %v", err)
	}

	_, err = svc.GetRates(context.Background(), ports.GetRatesInput{})
	if !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if len(carrier.rateCalls) != 0 {
		t.Fatalf("carrier must not be called")
	}
}

func TestShipmentService_CreateLabelFromRate(t *testing.T) {
	carrier := &stubCarrier{}
	svc := newShipmentSvc(carrier, nil)

	if _, err := svc.CreateLabelFromRate(context.Background(), "se-rate-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(carrier.fromRate) != 1 || carrier.fromRate[0] != "se-rate-1" {
		t.Errorf("unexpected calls: %v", carrier.fromRate)
	}
	if _, err := svc.CreateLabelFromRate(context.Background(), ""); !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}
