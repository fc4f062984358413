package cli

import (
	"github.com/spf13/cobra"
)

type rmResult struct {
	Deleted string `json:"deleted"`
}

func (f CommandFactory) CreateRmCommand(flgs *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "rm TRACKING_NUMBER",
		Short: "Delete a shipment",
		Long:  `Delete a shipment by tracking number.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := f.shipmentService(flgs)
			if err != nil {
				return err
			}
			if err := svc.DeleteShipment(cmd.Context(), nil, args[0]); err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), rmResult{Deleted: args[0]})
		},
	}
}
