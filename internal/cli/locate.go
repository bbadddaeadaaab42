// internal/cli/locate.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/tkpair"
	"github.com/arc-language/tkpair/internal/printer"
)

func newLocateCommand(opts *globalOptions) *cobra.Command {
	var records string

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the Tcl and Tk install roots",
		Long: `Locate the Tcl/Tk install roots from a records manifest, or from a scan
of the configured search paths.

Examples:
  tkpair locate
  tkpair locate --records records.yaml --platform windows`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.bundler()
			if err != nil {
				return err
			}

			recs, err := b.Records(records)
			if err != nil {
				return err
			}

			pair, err := b.Locate(recs)
			if errors.Is(err, tkpair.ErrUnsupported) {
				fmt.Fprintln(cmd.OutOrStdout(), printer.Warning(fmt.Sprintf("Tcl/Tk detection is not supported on %s", b.Platform())))
				return nil
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n", printer.Bold("Tcl/Tk"))
			printer.Field(w, "platform", b.Platform().String())
			if pair.Version != "" {
				printer.Field(w, "version", pair.Version)
			}
			printer.Field(w, "tcl", pair.InterpreterRoot)
			printer.Field(w, "tk", pair.ToolkitRoot)
			return nil
		},
	}

	cmd.Flags().StringVarP(&records, "records", "r", "", "records manifest (.yaml, .toml, .json); scans when empty")

	return cmd
}
