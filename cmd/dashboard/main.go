// Command dashboard serves the TrackNest shipment admin dashboard and its
// JSON API.
//
// @title                       TrackNest Admin API
// @version                     1.0
// @description                 Operator API for listing, creating, updating and deleting TrackNest shipments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kum096/Dashboard/internal/api"
	"github.com/kum096/Dashboard/internal/core/ports"
	"github.com/kum096/Dashboard/internal/core/service"
	"github.com/kum096/Dashboard/internal/infrastructure/db/mongo"
	"github.com/kum096/Dashboard/internal/infrastructure/db/redis"
	"github.com/kum096/Dashboard/internal/infrastructure/trackingapi"
	"github.com/kum096/Dashboard/internal/pkg/config"
	"github.com/kum096/Dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		l := logger.Get()
		l.Fatal().Err(err).Msg("dashboard exited")
	}
}

func run(ctx context.Context) error {
	envErr := godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "dashboard"})
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "dashboard",
	})
	if envErr != nil {
		log.Debug().Msg("no .env file found, using environment variables")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	var audit ports.AuditRepository
	deps := api.Dependencies{Redis: rdb, SecureCookie: cfg.Session.CookieSecure, Logger: log}

	if cfg.AuditEnabled() {
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()

		if err := mongo.EnsureIndexes(ctx, db); err != nil {
			return err
		}
		audit = mongo.NewAuditRepository(db)
		deps.Mongo = db
	} else {
		log.Info().Msg("MONGO_URI not set, audit trail disabled")
	}

	authService, err := service.NewAuthService(redis.NewSessionStore(rdb), service.AuthConfig{
		Username:     cfg.Admin.Username,
		Password:     cfg.Admin.Password,
		PasswordHash: cfg.Admin.PasswordHash,
		Secret:       cfg.Session.Secret,
		TTL:          cfg.Session.TTL,
	})
	if err != nil {
		return err
	}

	client := trackingapi.New(cfg.TrackingAPIURL, logger.Component("trackingapi"))
	deps.AuthService = authService
	deps.ShipmentService = service.NewShipmentService(client, audit, logger.Component("shipments"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return serve(ctx, srv, log)
}

// serve blocks until ctx is cancelled or the listener fails, then drains
// in-flight requests.
func serve(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
