package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/csvshipper/csv-shipper/internal/core/ports"
)

func newRatesCmd() *cobra.Command {
	var (
		shipmentID string
		file       string
		currency   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Quote rates for a shipment the carrier already knows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts rateOptionsFile
			if file != "" {
				if err := readYAML(file, &opts); err != nil {
					return err
				}
			}
			if opts.PreferredCurrency == "" {
				opts.PreferredCurrency = currency
			}

			svc, err := newCarrierService(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.GetRates(cmd.Context(), ports.GetRatesInput{
				ShipmentID: shipmentID,
				Options:    opts.toInput(),
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, res.Body)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderRates(res.Body))
			return nil
		},
	}

	cmd.Flags().StringVar(&shipmentID, "shipment-id", "", "Carrier shipment ID (se-...)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "Rate options YAML file")
	cmd.Flags().StringVar(&currency, "currency", "usd", "Preferred currency when the file does not set one")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the carrier response as JSON")
	_ = cmd.MarkFlagRequired("shipment-id")

	return cmd
}
