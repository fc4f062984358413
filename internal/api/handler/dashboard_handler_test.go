package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kum096/Dashboard/internal/core/domain"
)

func listOf(items ...domain.Shipment) func(context.Context) ([]domain.Shipment, error) {
	return func(context.Context) ([]domain.Shipment, error) { return items, nil }
}

func formContext(e *echo.Echo, rec *httptest.ResponseRecorder, target string, values url.Values) echo.Context {
	return authedContext(e, rec, http.MethodPost, target, echo.MIMEApplicationForm, values.Encode())
}

func TestDashboardHandler_Show(t *testing.T) {
	e := newTestEcho()
	first := shipment("TN1", domain.StatusInTransit)
	first.PortOfLoading = "Lagos"
	first.ExpectedArrivalDate = domain.ParseDate("2024-06-01")
	h := NewDashboardHandler(&stubShipmentService{listFn: listOf(first, shipment("TN2", domain.StatusDelivered))}, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := h.Show(authedContext(e, rec, http.MethodGet, "/dashboard", "", "")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, want := range []string{"TN1", "TN2", "Lagos", "2024-06-01", "In transit", "Edit Shipment TN1", "trackit"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestDashboardHandler_Show_SelectedAndNotice(t *testing.T) {
	e := newTestEcho()
	second := shipment("TN2", domain.StatusDelivered)
	second.DestinationCoords = domain.NewCoordinates(51.5, -0.12)
	h := NewDashboardHandler(&stubShipmentService{listFn: listOf(shipment("TN1", domain.StatusPending), second)}, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, http.MethodGet, "/dashboard?selected=TN2&notice=updated", "", "")
	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Edit Shipment TN2") {
		t.Error("selected shipment not shown for editing")
	}
	if !strings.Contains(body, `name="destination_lat" value="51.5"`) {
		t.Error("destination latitude not pre-filled")
	}
	if !strings.Contains(body, "Shipment successfully updated!") {
		t.Error("notice not shown")
	}
}

func TestDashboardHandler_Show_Empty(t *testing.T) {
	e := newTestEcho()
	h := NewDashboardHandler(&stubShipmentService{listFn: listOf()}, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := h.Show(authedContext(e, rec, http.MethodGet, "/dashboard", "", "")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "No shipments found.") {
		t.Error("empty warning not shown")
	}
	if strings.Contains(body, "Edit Shipment") {
		t.Error("no edit form expected without shipments")
	}
}

func TestDashboardHandler_Show_RemoteError(t *testing.T) {
	e := newTestEcho()
	stub := &stubShipmentService{listFn: func(context.Context) ([]domain.Shipment, error) {
		return []domain.Shipment{}, &domain.TransportError{Op: "list shipments", Err: errors.New("connection refused")}
	}}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	if err := h.Show(authedContext(e, rec, http.MethodGet, "/dashboard", "", "")); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("page must still render, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error fetching shipments") {
		t.Error("fetch error not surfaced")
	}
}

func TestDashboardHandler_Create_RedirectsOnSuccess(t *testing.T) {
	e := newTestEcho()
	var got domain.ShipmentForm
	stub := &stubShipmentService{createFn: func(_ context.Context, _ *domain.Session, f domain.ShipmentForm) (*domain.Shipment, error) {
		got = f
		return domain.ValidateForCreate(f)
	}}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments", url.Values{
		"tracking_number":       {"TN1234567890"},
		"status":                {"pending"},
		"port_of_loading":       {"Lagos"},
		"expected_arrival_date": {"2024-06-01"},
	})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard?notice=created&selected=TN1234567890" {
		t.Errorf("unexpected redirect %q", loc)
	}
	if got.PortOfLoading != "Lagos" || got.ExpectedArrivalDate != "2024-06-01" {
		t.Errorf("form not bound: %+v", got)
	}
}

func TestDashboardHandler_Create_ValidationKeepsInput(t *testing.T) {
	e := newTestEcho()
	stub := &stubShipmentService{
		listFn: listOf(),
		createFn: func(_ context.Context, _ *domain.Session, f domain.ShipmentForm) (*domain.Shipment, error) {
			return domain.ValidateForCreate(f)
		},
	}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments", url.Values{"tracking_number": {""}, "carrier": {"Maersk"}})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Tracking number is required.") {
		t.Error("validation message not shown")
	}
	if !strings.Contains(body, `value="Maersk"`) {
		t.Error("submitted values must be kept")
	}
}

func TestDashboardHandler_Update_CoordinateError(t *testing.T) {
	e := newTestEcho()
	stub := &stubShipmentService{
		listFn: listOf(shipment("TN1", domain.StatusPending)),
		updateFn: func(_ context.Context, _ *domain.Session, _ string, f domain.ShipmentForm) (*domain.Shipment, error) {
			return domain.ValidateForUpdate(f)
		},
	}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments/TN1", url.Values{
		"tracking_number":      {"TN1"},
		"current_location_lat": {"12.5"},
		"current_location_lng": {""},
	})
	c.SetParamNames("tracking_number")
	c.SetParamValues("TN1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "invalid coordinate format") {
		t.Errorf("coordinate error not shown: %s", body)
	}
	if !strings.Contains(body, `name="current_location_lat" value="12.5"`) {
		t.Error("typed latitude must be kept")
	}
}

func TestDashboardHandler_Update_RemoteError(t *testing.T) {
	e := newTestEcho()
	stub := &stubShipmentService{
		listFn: listOf(shipment("TN1", domain.StatusPending)),
		updateFn: func(context.Context, *domain.Session, string, domain.ShipmentForm) (*domain.Shipment, error) {
			return nil, &domain.ResponseError{Op: "update shipment", StatusCode: http.StatusInternalServerError}
		},
	}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments/TN1", url.Values{"tracking_number": {"TN1"}})
	c.SetParamNames("tracking_number")
	c.SetParamValues("TN1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Error submitting shipment") {
		t.Error("remote error not surfaced")
	}
}

func TestDashboardHandler_Delete(t *testing.T) {
	e := newTestEcho()
	var gotTN string
	stub := &stubShipmentService{deleteFn: func(_ context.Context, _ *domain.Session, tn string) error {
		gotTN = tn
		return nil
	}}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments/TN1/delete", url.Values{})
	c.SetParamNames("tracking_number")
	c.SetParamValues("TN1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotTN != "TN1" {
		t.Errorf("deleted %q, want TN1", gotTN)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard?notice=deleted" {
		t.Errorf("unexpected redirect %q", loc)
	}
}

func TestDashboardHandler_Delete_Failure(t *testing.T) {
	e := newTestEcho()
	stub := &stubShipmentService{
		listFn: listOf(shipment("TN1", domain.StatusPending)),
		deleteFn: func(context.Context, *domain.Session, string) error {
			return &domain.ResponseError{Op: "delete shipment", StatusCode: http.StatusNotFound}
		},
	}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments/TN1/delete", url.Values{})
	c.SetParamNames("tracking_number")
	c.SetParamValues("TN1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadGateway || !strings.Contains(rec.Body.String(), "Delete failed") {
		t.Fatalf("expected 502 with message, got %d", rec.Code)
	}
}

func TestDashboardHandler_Show_EscapesTrackingNumberInFormActions(t *testing.T) {
	e := newTestEcho()
	const tn = "TN/1?x#y"
	h := NewDashboardHandler(&stubShipmentService{listFn: listOf(shipment(tn, domain.StatusPending))}, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := authedContext(e, rec, http.MethodGet, "/dashboard?selected="+url.QueryEscape(tn), "", "")
	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`action="/dashboard/shipments/TN%2F1%3Fx%23y"`,
		`action="/dashboard/shipments/TN%2F1%3Fx%23y/delete"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %s", want)
		}
	}
}

func TestDashboardHandler_Delete_DecodesEscapedTrackingNumber(t *testing.T) {
	e := newTestEcho()
	var gotTN string
	stub := &stubShipmentService{deleteFn: func(_ context.Context, _ *domain.Session, tn string) error {
		gotTN = tn
		return nil
	}}
	h := NewDashboardHandler(stub, zerolog.Nop())

	rec := httptest.NewRecorder()
	c := formContext(e, rec, "/dashboard/shipments/TN%2F1%3Fx%23y/delete", url.Values{})
	c.SetParamNames("tracking_number")
	c.SetParamValues("TN%2F1%3Fx%23y")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotTN != "TN/1?x#y" {
		t.Errorf("deleted %q, want TN/1?x#y", gotTN)
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[string]string{"in_transit": "In transit", "pending": "Pending", "": ""}
	for in, want := range cases {
		if got := statusLabel(in); got != want {
			t.Errorf("statusLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
