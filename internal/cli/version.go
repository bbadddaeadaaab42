// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tkpair version %s\n", Version)
			fmt.Fprintln(cmd.OutOrStdout(), "Tcl/Tk runtime locator")
			fmt.Fprintln(cmd.OutOrStdout(), "https://github.com/arc-language/tkpair")
		},
	}
}
