package main

import (
	"io"

	"github.com/spf13/cobra"
)

// run builds the venuerolld root command, wires args/stdout/stderr for
// testability, and returns a process exit code. Business logic never
// calls os.Exit directly; RunE returns an error and this function alone
// decides the code.
func run(args []string, stdout, stderr io.Writer) int {
	root := &cobra.Command{
		Use:           "venuerolld",
		Short:         "venue-script compiler and rollup sequencer demo",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	root.AddCommand(newParseCmd())
	root.AddCommand(newManifestCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newDemoCmd())

	if err := root.Execute(); err != nil {
		_, _ = io.WriteString(stderr, "venuerolld: "+err.Error()+"\n")
		return 1
	}
	return 0
}
