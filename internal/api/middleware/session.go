package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
)

// CookieName carries the session token for browser requests.
const CookieName = "tracknest_session"

const sessionKey = "session"

// Session resolves the caller's session from a Bearer header or the session
// cookie and stores it in the context. Unauthenticated requests fail with
// domain.ErrUnauthenticated so the error handler answers 401.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := resolve(c, auth)
			if err != nil {
				return err
			}
			SetSession(c, session)
			return next(c)
		}
	}
}

// SessionOrRedirect is Session for browser pages: unauthenticated requests
// are sent to loginPath and any stale cookie is cleared.
func SessionOrRedirect(auth ports.AuthService, loginPath string, secureCookie bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := resolve(c, auth)
			if errors.Is(err, domain.ErrUnauthenticated) {
				if _, cerr := c.Cookie(CookieName); cerr == nil {
					ClearSessionCookie(c, secureCookie)
				}
				return c.Redirect(http.StatusSeeOther, loginPath)
			}
			if err != nil {
				return err
			}
			SetSession(c, session)
			return next(c)
		}
	}
}

// SetSession stores session in the request context.
func SetSession(c echo.Context, session *domain.Session) {
	c.Set(sessionKey, session)
}

// SessionFrom returns the session stored by Session or SessionOrRedirect.
func SessionFrom(c echo.Context) (*domain.Session, bool) {
	session, ok := c.Get(sessionKey).(*domain.Session)
	return session, ok && session != nil
}

// TokenFrom extracts the session token, preferring the Authorization header.
// It returns "" when the request carries none.
func TokenFrom(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return ""
		}
		return strings.TrimSpace(parts[1])
	}

	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// SetSessionCookie stores token in an HttpOnly, SameSite=Strict cookie.
func SetSessionCookie(c echo.Context, token string, expires time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func resolve(c echo.Context, auth ports.AuthService) (*domain.Session, error) {
	return auth.Resolve(c.Request().Context(), TokenFrom(c))
}
