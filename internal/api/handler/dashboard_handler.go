package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
)

// DashboardHandler serves the operator's HTML dashboard. The selected
// shipment lives in the ?selected= query parameter and is never kept between
// requests.
type DashboardHandler struct {
	service ports.ShipmentService
	logger  zerolog.Logger
}

func NewDashboardHandler(service ports.ShipmentService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, logger: logger}
}

type flash struct {
	Kind    string
	Message string
}

type dashboardView struct {
	Username string
	Rows     []shipmentRow
	Selected *domain.ShipmentForm
	NewForm  domain.ShipmentForm
	Statuses []domain.ShipmentStatus
	Flash    *flash
}

var notices = map[string]string{
	"created": "Shipment successfully submitted!",
	"updated": "Shipment successfully updated!",
	"deleted": "Shipment deleted.",
}

// Show handles GET /dashboard.
func (h *DashboardHandler) Show(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	view := h.load(c.Request().Context(), session, c.QueryParam("selected"))
	if msg, ok := notices[c.QueryParam("notice")]; ok {
		view.Flash = &flash{Kind: "success", Message: msg}
	}
	return c.Render(http.StatusOK, "dashboard", view)
}

// Create handles POST /dashboard/shipments.
func (h *DashboardHandler) Create(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form domain.ShipmentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	s, err := h.service.CreateShipment(ctx, session, form)
	if err != nil {
		view := h.load(ctx, session, "")
		view.NewForm = form
		view.Flash = failure("Error submitting shipment", err)
		return c.Render(statusFor(err), "dashboard", view)
	}

	return c.Redirect(http.StatusSeeOther, dashboardURL(s.TrackingNumber, "created"))
}

// Update handles POST /dashboard/shipments/:tracking_number.
func (h *DashboardHandler) Update(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var form domain.ShipmentForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	ctx := c.Request().Context()
	trackingNumber := trackingNumberParam(c)
	if _, err := h.service.UpdateShipment(ctx, session, trackingNumber, form); err != nil {
		view := h.load(ctx, session, trackingNumber)
		view.Selected = &form
		view.Flash = failure("Error submitting shipment", err)
		return c.Render(statusFor(err), "dashboard", view)
	}

	return c.Redirect(http.StatusSeeOther, dashboardURL(trackingNumber, "updated"))
}

// Delete handles POST /dashboard/shipments/:tracking_number/delete.
func (h *DashboardHandler) Delete(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	trackingNumber := trackingNumberParam(c)
	if err := h.service.DeleteShipment(ctx, session, trackingNumber); err != nil {
		view := h.load(ctx, session, trackingNumber)
		view.Flash = failure("Delete failed", err)
		return c.Render(statusFor(err), "dashboard", view)
	}

	return c.Redirect(http.StatusSeeOther, dashboardURL("", "deleted"))
}

// load fetches the shipment list and builds the page around selected. With
// no selection the first shipment is shown for editing.
func (h *DashboardHandler) load(ctx context.Context, session *domain.Session, selected string) dashboardView {
	view := dashboardView{
		Username: session.Username,
		Statuses: domain.Statuses,
		NewForm:  domain.ShipmentForm{Status: string(domain.StatusPending)},
	}

	items, err := h.service.ListShipments(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to fetch shipments")
		view.Flash = &flash{Kind: "error", Message: fmt.Sprintf("Error fetching shipments: %v", err)}
		return view
	}
	if len(items) == 0 {
		view.Flash = &flash{Kind: "warning", Message: "No shipments found."}
		return view
	}

	if selected == "" {
		selected = items[0].TrackingNumber
	}
	if s, ok := lo.Find(items, func(s domain.Shipment) bool { return s.TrackingNumber == selected }); ok {
		form := domain.FormFromShipment(s)
		view.Selected = &form
	}
	view.Rows = toRows(items, selected)
	return view
}

func failure(prefix string, err error) *flash {
	var ve *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrTrackingNumberRequired):
		return &flash{Kind: "error", Message: "Tracking number is required."}
	case errors.As(err, &ve):
		return &flash{Kind: "error", Message: ve.Error()}
	default:
		return &flash{Kind: "error", Message: fmt.Sprintf("%s: %v", prefix, err)}
	}
}

func statusFor(err error) int {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity
	case domain.IsRemoteError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func dashboardURL(selected, notice string) string {
	q := url.Values{}
	if selected != "" {
		q.Set("selected", selected)
	}
	if notice != "" {
		q.Set("notice", notice)
	}
	if len(q) == 0 {
		return dashboardPath
	}
	return dashboardPath + "?" + q.Encode()
}
