package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kum096/Dashboard/internal/api/middleware"
	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
)

const (
	loginPath     = "/login"
	dashboardPath = "/dashboard"
)

type AuthHandler struct {
	authService  ports.AuthService
	secureCookie bool
	logger       zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, secureCookie bool, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookie: secureCookie, logger: logger}
}

type loginView struct {
	Username string
	Error    string
	Notice   string
}

// LoginPage handles GET /login. An operator who is already signed in goes
// straight to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if token := middleware.TokenFrom(c); token != "" {
		if _, err := h.authService.Resolve(c.Request().Context(), token); err == nil {
			return c.Redirect(http.StatusSeeOther, dashboardPath)
		}
	}

	view := loginView{}
	if c.QueryParam("notice") == "logged_out" {
		view.Notice = "You have been signed out."
	}
	return c.Render(http.StatusOK, "login", view)
}

// LoginForm handles POST /login from the browser form.
func (h *AuthHandler) LoginForm(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login", loginView{Error: "Invalid login request."})
	}

	token, session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrInvalidCredentials) {
		return c.Render(http.StatusUnauthorized, "login", loginView{
			Username: req.Username,
			Error:    "Invalid username or password",
		})
	}
	if err != nil {
		h.logger.Error().Err(err).Msg("login failed")
		return c.Render(http.StatusInternalServerError, "login", loginView{
			Username: req.Username,
			Error:    "Sign-in is temporarily unavailable. Please try again.",
		})
	}

	middleware.SetSessionCookie(c, token, session.ExpiresAt, h.secureCookie)
	h.logger.Info().Str("username", session.Username).Msg("operator signed in")
	return c.Redirect(http.StatusSeeOther, dashboardPath)
}

// LogoutForm handles POST /logout from the browser. It always ends on the
// login page, even when the session had already expired.
func (h *AuthHandler) LogoutForm(c echo.Context) error {
	ctx := c.Request().Context()
	if session, err := h.authService.Resolve(ctx, middleware.TokenFrom(c)); err == nil {
		if err := h.authService.Logout(ctx, session); err != nil {
			h.logger.Error().Err(err).Str("session_id", session.ID).Msg("logout failed")
		}
	}

	middleware.ClearSessionCookie(c, h.secureCookie)
	return c.Redirect(http.StatusSeeOther, loginPath+"?notice=logged_out")
}

// Login authenticates the operator and returns a session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, session, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		Username:  session.Username,
		ExpiresAt: session.ExpiresAt,
	})
}

// Logout revokes the caller's session.
//
// @Summary      Logout
// @Tags         auth
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /api/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	session, err := ctxSession(c)
	if err != nil {
		return err
	}
	if err := h.authService.Logout(c.Request().Context(), session); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
