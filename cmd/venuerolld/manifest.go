package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/venuechain/rollup-core/venuescript"
)

func newManifestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <venue-script-file>",
		Short: "parse a venue script and print its deterministic CPI manifest as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			out, err := emitManifestJSON(string(raw))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	return cmd
}

func emitManifestJSON(script string) ([]byte, error) {
	parsed, err := venuescript.Parse(script)
	if err != nil {
		return nil, err
	}
	return venuescript.EmitManifest(parsed).ToJSON()
}
