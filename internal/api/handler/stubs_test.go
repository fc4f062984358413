package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kum096/Dashboard/internal/api/middleware"
	"github.com/kum096/Dashboard/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Service stubs
// ---------------------------------------------------------------------------

type stubAuthService struct {
	loginFn   func(ctx context.Context, username, password string) (string, *domain.Session, error)
	resolveFn func(ctx context.Context, token string) (*domain.Session, error)
	logoutFn  func(ctx context.Context, session *domain.Session) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if s.resolveFn == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.resolveFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, session *domain.Session) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, session)
}

type stubShipmentService struct {
	listFn   func(ctx context.Context) ([]domain.Shipment, error)
	createFn func(ctx context.Context, session *domain.Session, form domain.ShipmentForm) (*domain.Shipment, error)
	updateFn func(ctx context.Context, session *domain.Session, tn string, form domain.ShipmentForm) (*domain.Shipment, error)
	deleteFn func(ctx context.Context, session *domain.Session, tn string) error
}

func (s *stubShipmentService) ListShipments(ctx context.Context) ([]domain.Shipment, error) {
	if s.listFn == nil {
		return []domain.Shipment{}, nil
	}
	return s.listFn(ctx)
}

func (s *stubShipmentService) CreateShipment(ctx context.Context, session *domain.Session, form domain.ShipmentForm) (*domain.Shipment, error) {
	return s.createFn(ctx, session, form)
}

func (s *stubShipmentService) UpdateShipment(ctx context.Context, session *domain.Session, tn string, form domain.ShipmentForm) (*domain.Shipment, error) {
	return s.updateFn(ctx, session, tn, form)
}

func (s *stubShipmentService) DeleteShipment(ctx context.Context, session *domain.Session, tn string) error {
	return s.deleteFn(ctx, session, tn)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testSession = &domain.Session{
	ID:        "sid-1",
	Username:  "trackit",
	ExpiresAt: time.Now().Add(time.Hour),
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.Renderer = NewRenderer()
	return e
}

// authedContext builds a context that has already passed the session middleware.
func authedContext(e *echo.Echo, rec *httptest.ResponseRecorder, method, target, contentType, body string) echo.Context {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	c := e.NewContext(req, rec)
	middleware.SetSession(c, testSession)
	return c
}

func shipment(tn string, status domain.ShipmentStatus) domain.Shipment {
	return domain.Shipment{TrackingNumber: tn, Status: status}
}
