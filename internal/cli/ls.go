package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kum096/Dashboard/internal/core/domain"
)

func (f CommandFactory) CreateLsCommand(flgs *Flags) *cobra.Command {
	c := &cobra.Command{
		Use:   "ls",
		Short: "List shipments",
		Long:  `List every shipment known to the API as JSON.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status domain.ShipmentStatus
			if flgs.Status != "" {
				status = domain.ShipmentStatus(flgs.Status)
				if !lo.Contains(domain.Statuses, status) {
					return fmt.Errorf("unknown status %q", flgs.Status)
				}
			}

			svc, err := f.shipmentService(flgs)
			if err != nil {
				return err
			}
			items, err := svc.ListShipments(cmd.Context())
			if err != nil {
				return err
			}
			if status != "" {
				items = lo.Filter(items, func(s domain.Shipment, _ int) bool { return s.Status == status })
			}

			return printJSON(cmd.OutOrStdout(), lo.Map(items, func(s domain.Shipment, _ int) domain.WireRecord {
				return s.Wire()
			}))
		},
	}
	c.Flags().StringVar(&flgs.Status, flagMap.Status.Name, flagMap.Status.Value, flagMap.Status.Usage)
	return c
}
