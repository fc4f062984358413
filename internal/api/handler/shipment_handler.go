package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
)

// ShipmentHandler serves the JSON shipment API. Errors are returned to the
// central error handler, which maps them to status codes.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// List handles GET /api/shipments.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listShipmentsResponse
// @Failure      401  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	items, err := h.service.ListShipments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListResponse(items))
}

// Get handles GET /api/shipments/:tracking_number.
//
// @Summary      Get a shipment by tracking number
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string  true  "Tracking number (e.g. TN1234567890)"
// @Success      200              {object}  shipmentResponse
// @Failure      404              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /api/shipments/{tracking_number} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	trackingNumber := trackingNumberParam(c)

	items, err := h.service.ListShipments(c.Request().Context())
	if err != nil {
		return err
	}
	s, ok := lo.Find(items, func(s domain.Shipment) bool { return s.TrackingNumber == trackingNumber })
	if !ok {
		return domain.ErrShipmentNotFound
	}
	return c.JSON(http.StatusOK, toShipmentResponse(s))
}

// Create handles POST /api/shipments.
//
// @Summary      Create a shipment
// @Description  Blank status, quantity, and weight default to pending, 1, and 0.
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      shipmentRequest  true  "Shipment fields"
// @Success      201   {object}  shipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /api/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req shipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s, err := h.service.CreateShipment(c.Request().Context(), session, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toShipmentResponse(*s))
}

// Update handles PUT /api/shipments/:tracking_number. The record is fully
// replaced; fields missing from the body are cleared.
//
// @Summary      Replace a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        tracking_number  path      string           true  "Tracking number"
// @Param        body             body      shipmentRequest  true  "Shipment fields"
// @Success      200              {object}  shipmentResponse
// @Failure      400              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Failure      502              {object}  errorResponse
// @Router       /api/shipments/{tracking_number} [put]
func (h *ShipmentHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req shipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	s, err := h.service.UpdateShipment(c.Request().Context(), session, trackingNumberParam(c), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(*s))
}

// Delete handles DELETE /api/shipments/:tracking_number.
//
// @Summary      Delete a shipment
// @Tags         shipments
// @Security     BearerAuth
// @Param        tracking_number  path  string  true  "Tracking number"
// @Success      204
// @Failure      422  {object}  errorResponse
// @Failure      502  {object}  errorResponse
// @Router       /api/shipments/{tracking_number} [delete]
func (h *ShipmentHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteShipment(c.Request().Context(), session, trackingNumberParam(c)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
