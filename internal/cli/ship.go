package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newShipCmd() *cobra.Command {
	var (
		file       string
		label      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "ship",
		Short: "Create a shipment (or buy a label) from a YAML file",
		Long: "Validate the shipment described in a YAML file, assemble the carrier request " +
			"and post it to ShipEngine. With --label a label is purchased instead.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc shipmentFile
			if err := readYAML(file, &doc); err != nil {
				return err
			}
			input, err := doc.toInput()
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			svc, err := newCarrierService(cmd.Context())
			if err != nil {
				return err
			}

			op, kind := svc.CreateShipment, "shipment"
			if label {
				op, kind = svc.CreateLabel, "label"
			}
			res, err := op(cmd.Context(), input)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, res.Body)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderResult(kind, res.Body))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Shipment YAML file")
	cmd.Flags().BoolVar(&label, "label", false, "Purchase a label instead of only creating the shipment")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the carrier response as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newLabelFromRateCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "label-from-rate <rate_id>",
		Short: "Purchase a label for a previously quoted rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCarrierService(cmd.Context())
			if err != nil {
				return err
			}
			res, err := svc.CreateLabelFromRate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, res.Body)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderResult("label", res.Body))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the carrier response as JSON")
	return cmd
}
