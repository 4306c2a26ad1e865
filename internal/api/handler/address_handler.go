package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/csvshipper/csv-shipper/internal/core/domain"
	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

// AddressHandler manages the caller's saved ship-from addresses.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

// List handles GET /v1/addresses.
//
// @Summary      List saved ship-from addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.SavedAddress
// @Failure      401  {object}  errorResponse
// @Router       /v1/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	addrs, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if addrs == nil {
		addrs = []domain.SavedAddress{}
	}
	return c.JSON(http.StatusOK, addrs)
}

// Create handles POST /v1/addresses.
//
// @Summary      Save a ship-from address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addressRequest  true  "Address"
// @Success      201   {object}  domain.SavedAddress
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req addressRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	saved, err := h.service.Save(c.Request().Context(), userID, toAddressInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, saved)
}

// Delete handles DELETE /v1/addresses/:id.
//
// @Summary      Delete a saved address
// @Tags         addresses
// @Security     BearerAuth
// @Param        id  path  string  true  "Address ID"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/addresses/{id} [delete]
func (h *AddressHandler) Delete(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
