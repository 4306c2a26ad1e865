package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// ShipmentHandler exposes the carrier operations. Successful carrier answers
// are relayed unchanged with the carrier's status code.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// CreateShipment handles POST /v1/shipments.
//
// @Summary      Create a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      200   {object}  carrierResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) CreateShipment(c echo.Context) error {
	return h.createWith(c, h.service.CreateShipment)
}

// CreateLabel handles POST /v1/labels.
//
// @Summary      Purchase a label
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      200   {object}  carrierResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/labels [post]
func (h *ShipmentHandler) CreateLabel(c echo.Context) error {
	return h.createWith(c, h.service.CreateLabel)
}

func (h *ShipmentHandler) createWith(
	c echo.Context,
	op func(ctx context.Context, in ports.CreateShipmentInput) (*ports.CarrierResult, error),
) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := op(c.Request().Context(), toCreateShipmentInput(userID, req))
	if err != nil {
		return err
	}
	return relay(c, res)
}

// GetRates handles POST /v1/rates.
//
// @Summary      Quote rates for a shipment
// @Tags         rates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      getRatesRequest  true  "Shipment ID and rate options"
// @Success      200   {object}  carrierResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /v1/rates [post]
func (h *ShipmentHandler) GetRates(c echo.Context) error {
	var req getRatesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.service.GetRates(c.Request().Context(), toGetRatesInput(req))
	if err != nil {
		return err
	}
	return relay(c, res)
}

// LabelFromRate handles POST /v1/labels/rates/:rate_id.
//
// @Summary      Purchase a label from a quoted rate
// @Tags         rates
// @Produce      json
// @Security     BearerAuth
// @Param        rate_id  path      string  true  "Rate ID"
// @Success      200      {object}  carrierResponse
// @Failure      400      {object}  errorResponse
// @Failure      401      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /v1/labels/rates/{rate_id} [post]
func (h *ShipmentHandler) LabelFromRate(c echo.Context) error {
	res, err := h.service.CreateLabelFromRate(c.Request().Context(), c.Param("rate_id"))
	if err != nil {
		return err
	}
	return relay(c, res)
}

// relay writes the carrier's answer. An empty body is sent as {}.
func relay(c echo.Context, res *ports.CarrierResult) error {
	body := carrierResponse(res.Body)
	if body == nil {
		body = carrierResponse{}
	}
	return c.JSON(res.StatusCode, body)
}
