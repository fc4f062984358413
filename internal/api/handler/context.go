package handler

import (
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/kum096/Dashboard/internal/api/middleware"
	"github.com/kum096/Dashboard/internal/core/domain"
)

// ctxSession returns the session injected by the session middleware. Its
// absence means the route was registered without the middleware.
func ctxSession(c echo.Context) (*domain.Session, error) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return session, nil
}

// trackingNumberParam returns the :tracking_number path segment decoded. The
// router hands back the escaped form when the request path carried %2F and
// similar escapes.
func trackingNumberParam(c echo.Context) string {
	raw := c.Param("tracking_number")
	if tn, err := url.PathUnescape(raw); err == nil {
		return tn
	}
	return raw
}
