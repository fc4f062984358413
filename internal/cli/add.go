package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kum096/Dashboard/internal/core/domain"
)

func (f CommandFactory) CreateAddCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "add",
		Short: "Create a shipment",
		Long:  `Create a shipment from field flags. Blank quantity, weight and status take their defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := flgs.Form
			if err := applyCoordinates(cmd, flgs, &form); err != nil {
				return err
			}

			svc, err := f.shipmentService(flgs)
			if err != nil {
				return err
			}
			s, err := svc.CreateShipment(cmd.Context(), nil, form)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), s.Wire())
		},
	}
	bindFormFlags(c, &flgs.Form)
	bindCoordinateFlags(c, flgs)
	return c
}

func bindFormFlags(c *cobra.Command, form *domain.ShipmentForm) {
	for _, ff := range formFlags(form) {
		c.Flags().StringVar(ff.Target, ff.Name, "", ff.Usage)
	}
}

func bindCoordinateFlags(c *cobra.Command, flgs *Flags) {
	c.Flags().StringVar(&flgs.CurrentCoords, flagMap.CurrentCoords.Name, flagMap.CurrentCoords.Value, flagMap.CurrentCoords.Usage)
	c.Flags().StringVar(&flgs.DestinationCoords, flagMap.DestinationCoords.Name, flagMap.DestinationCoords.Value, flagMap.DestinationCoords.Usage)
}

// applyCoordinates copies the "lat,lng" flags that were set into form.
func applyCoordinates(cmd *cobra.Command, flgs *Flags, form *domain.ShipmentForm) error {
	pairs := []struct {
		flag     string
		field    string
		value    string
		lat, lng *string
	}{
		{flagMap.CurrentCoords.Name, "current_location_coords", flgs.CurrentCoords, &form.CurrentLocationLat, &form.CurrentLocationLng},
		{flagMap.DestinationCoords.Name, "destination_coords", flgs.DestinationCoords, &form.DestinationLat, &form.DestinationLng},
	}

	for _, p := range pairs {
		if !cmd.Flags().Changed(p.flag) {
			continue
		}
		if strings.TrimSpace(p.value) == "" {
			*p.lat, *p.lng = "", ""
			continue
		}
		c := domain.ParseCoordinatePair(p.value)
		if c == nil {
			return &domain.ValidationError{
				Field: p.field,
				Err:   fmt.Errorf("%w: --%s wants \"lat,lng\", got %q", domain.ErrInvalidCoordinates, p.flag, p.value),
			}
		}
		*p.lat, *p.lng, _ = strings.Cut(domain.FormatCoordinatePair(*c), ",")
	}
	return nil
}
