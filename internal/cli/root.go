// Package cli implements the csvshipper command line: the HTTP server and
// one-shot carrier commands driven by YAML files.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "csvshipper",
		Short:         "Create ShipEngine shipments, labels and rate quotes",
		Long:          "csvshipper validates shipment details, assembles ShipEngine requests and serves the user-facing HTTP API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newShipCmd())
	cmd.AddCommand(newRatesCmd())
	cmd.AddCommand(newLabelFromRateCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
	}
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csvshipper %s (%s)\n", version, commit)
		},
	}
}
