package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/kum096/Dashboard/docs"
	"github.com/kum096/Dashboard/internal/api/handler"
	"github.com/kum096/Dashboard/internal/api/middleware"
	"github.com/kum096/Dashboard/internal/core/ports"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	AuthService     ports.AuthService
	ShipmentService ports.ShipmentService
	// Mongo is nil when the audit trail is disabled.
	Mongo        *mongo.Database
	Redis        *redis.Client
	SecureCookie bool
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = handler.NewRenderer()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echomiddleware.Secure())
	e.Use(echomiddleware.BodyLimit("1M"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService, deps.SecureCookie, deps.Logger)
	dashboardHandler := handler.NewDashboardHandler(deps.ShipmentService, deps.Logger)
	shipmentHandler := handler.NewShipmentHandler(deps.ShipmentService)

	// --- Browser routes ---
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	})
	e.GET("/login", authHandler.LoginPage)
	e.POST("/login", authHandler.LoginForm)
	e.POST("/logout", authHandler.LogoutForm)

	dashboard := e.Group("/dashboard", middleware.SessionOrRedirect(deps.AuthService, "/login", deps.SecureCookie))
	dashboard.GET("", dashboardHandler.Show)
	dashboard.POST("/shipments", dashboardHandler.Create)
	dashboard.POST("/shipments/:tracking_number", dashboardHandler.Update)
	dashboard.POST("/shipments/:tracking_number/delete", dashboardHandler.Delete)

	// --- JSON API ---
	api := e.Group("/api")
	api.POST("/login", authHandler.Login)

	secured := api.Group("", middleware.Session(deps.AuthService))
	secured.POST("/logout", authHandler.Logout)
	secured.GET("/shipments", shipmentHandler.List)
	secured.POST("/shipments", shipmentHandler.Create)
	secured.GET("/shipments/:tracking_number", shipmentHandler.Get)
	secured.PUT("/shipments/:tracking_number", shipmentHandler.Update)
	secured.DELETE("/shipments/:tracking_number", shipmentHandler.Delete)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog entry per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURIPath:   true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= http.StatusInternalServerError {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("path", v.URIPath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
