// Package cli implements trackctl, a command-line client for the shipment API.
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"

	"github.com/kum096/Dashboard/internal/core/ports"
	"github.com/kum096/Dashboard/internal/core/service"
	"github.com/kum096/Dashboard/internal/infrastructure/trackingapi"
)

// CommandFactory builds the command tree. Tests replace CreateShipmentClient
// to run commands against a stub.
type CommandFactory struct {
	CreateShipmentClient func(flgs *Flags) (ports.ShipmentClient, error)
	Logger               zerolog.Logger
}

// NewCommandFactory returns a factory that talks to the real shipment API.
func NewCommandFactory(logger zerolog.Logger) CommandFactory {
	return CommandFactory{
		CreateShipmentClient: func(flgs *Flags) (ports.ShipmentClient, error) {
			if flgs.APIURL == "" {
				return nil, fmt.Errorf("--%s is required", flagMap.APIURL.Name)
			}
			return trackingapi.New(flgs.APIURL, logger,
				trackingapi.WithHTTPClient(&http.Client{Timeout: flgs.Timeout})), nil
		},
		Logger: logger,
	}
}

type env struct {
	TrackingAPIURL string `env:"TRACKING_API_URL, default=https://backend-umdv.onrender.com/api/v1"`
}

func defaultAPIURL() string {
	var e env
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &e,
		Lookuper: envconfig.OsLookuper(),
	}); err != nil {
		return ""
	}
	return e.TrackingAPIURL
}

func (f CommandFactory) CreateRootCommand(flgs *Flags) *cobra.Command {
	root := &cobra.Command{
		Use:           "trackctl",
		Short:         "trackctl manages TrackNest shipments from the command line",
		Long:          `trackctl lists, adds, updates and removes TrackNest shipments through the shipment API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flgs.APIURL, flagMap.APIURL.Name, defaultAPIURL(), flagMap.APIURL.Usage)
	root.PersistentFlags().DurationVar(&flgs.Timeout, flagMap.Timeout.Name, flagMap.Timeout.Value, flagMap.Timeout.Usage)

	root.AddCommand(
		f.CreateLsCommand(flgs),
		f.CreateAddCommand(flgs),
		f.CreateUpdateCommand(flgs),
		f.CreateRmCommand(flgs),
	)
	return root
}

func (f CommandFactory) shipmentService(flgs *Flags) (*service.ShipmentService, error) {
	client, err := f.CreateShipmentClient(flgs)
	if err != nil {
		return nil, err
	}
	return service.NewShipmentService(client, nil, f.Logger), nil
}

// Execute runs trackctl and exits non-zero on failure.
func Execute(ctx context.Context, logger zerolog.Logger) {
	root := NewCommandFactory(logger).CreateRootCommand(&Flags{})
	if err := root.ExecuteContext(ctx); err != nil {
		printError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
