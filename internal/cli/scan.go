// internal/cli/scan.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/tkpair/internal/printer"
	"github.com/arc-language/tkpair/pkg/env"
	"github.com/arc-language/tkpair/pkg/manifest"
)

func newScanCommand(opts *globalOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "scan [dir...]",
		Short: "List shared libraries and extension modules",
		Long: `List the library records found in the given directories, or in the
configured search paths when none are given.

Examples:
  tkpair scan /usr/lib /usr/lib/python3.12/lib-dynload
  tkpair scan --platform windows 'C:\Python312\DLLs' --out records.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := opts.config.PlatformKind()
			if err != nil {
				return err
			}

			dirs := args
			if len(dirs) == 0 {
				dirs = opts.config.SearchPaths
			}
			scanner := env.NewScanner(kind, dirs)
			records := scanner.Scan()
			opts.logger.Debug("scanned", "dirs", scanner.Dirs, "records", len(records))

			if out != "" {
				if err := manifest.Save(out, manifest.FromRecords(records)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %d records to %s\n", printer.Success("✓"), len(records), out)
				return nil
			}

			w := cmd.OutOrStdout()
			for _, rec := range records {
				fmt.Fprintf(w, "%-10s %-24s %s\n", rec.Kind, rec.Name, printer.Faint(rec.Path))
			}
			if len(records) == 0 {
				fmt.Fprintln(w, printer.Warning("no libraries found"))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write records to a manifest file (.yaml, .toml, .json)")

	return cmd
}
