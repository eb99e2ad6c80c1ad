package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venuechain/rollup-core/venuescript"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <venue-script-file>",
		Short: "parse and validate a venue script, reporting the first error encountered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			script, err := venuescript.Parse(string(raw))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d collateral asset(s), %d slab(s), %d oracle(s)\n",
				len(script.Router.CollateralAssets), len(script.Slabs), len(script.Oracles))
			return nil
		},
	}
	return cmd
}
