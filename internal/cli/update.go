package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kum096/Dashboard/internal/core/domain"
)

func (f CommandFactory) CreateUpdateCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "update TRACKING_NUMBER",
		Short: "Update a shipment",
		Long: `Update a shipment. The current record is fetched first and only the
flags given on the command line change it; the result replaces the record.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trackingNumber := args[0]

			svc, err := f.shipmentService(flgs)
			if err != nil {
				return err
			}
			items, err := svc.ListShipments(cmd.Context())
			if err != nil {
				return err
			}
			current, ok := lo.Find(items, func(s domain.Shipment) bool { return s.TrackingNumber == trackingNumber })
			if !ok {
				return fmt.Errorf("%w: %s", domain.ErrShipmentNotFound, trackingNumber)
			}

			form := domain.FormFromShipment(current)
			overlay(cmd, &form, &flgs.Form)
			if err := applyCoordinates(cmd, flgs, &form); err != nil {
				return err
			}

			s, err := svc.UpdateShipment(cmd.Context(), nil, trackingNumber, form)
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

// overlay copies every field flag that was set on the command line from src
// into dst.
func overlay(cmd *cobra.Command, dst, src *domain.ShipmentForm) {
	from := formFlags(src)
	for i, to := range formFlags(dst) {
		if cmd.Flags().Changed(to.Name) {
			*to.Target = *from[i].Target
		}
	}
}
