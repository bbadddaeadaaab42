// internal/cli/collect.go
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/tkpair"
	"github.com/arc-language/tkpair/internal/printer"
)

func newCollectCommand(opts *globalOptions) *cobra.Command {
	var (
		records     string
		out         string
		archivePath string
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "List or archive the Tcl/Tk files for a bundle",
		Long: `Locate the Tcl/Tk install roots and collect their files, minus demos,
encodings, static libraries and build-config scripts.

When Tcl/Tk cannot be found a warning is printed and the report is still
written; the bundled application will run without Tk.

Examples:
  tkpair collect --records records.yaml
  tkpair collect --out report.json --archive tk.tar.xz
  tkpair collect --archive tk.nar --quiet`,
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

			w := cmd.OutOrStdout()
			result, err := b.Run(recs)
			switch {
			case errors.Is(err, tkpair.ErrNotFound):
				fmt.Fprintln(w, printer.Warning("⚠ Tcl/Tk not found; the bundle will not include Tk"))
			case err != nil:
				return err
			case result.Skipped:
				fmt.Fprintln(w, printer.Warning(fmt.Sprintf("Tcl/Tk detection is not supported on %s", result.Platform)))
			}

			if !quiet {
				for _, e := range result.Entries {
					printer.Mapping(w, e.Source, e.Dest)
				}
			}

			if out != "" {
				if err := b.WriteReport(out, result); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s Wrote report to %s\n", printer.Success("✓"), out)
			}

			if archivePath != "" && len(result.Entries) > 0 {
				if err := b.WriteArchive(archivePath, result); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s Wrote %d files to %s\n", printer.Success("✓"), len(result.Entries), archivePath)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&records, "records", "r", "", "records manifest (.yaml, .toml, .json); scans when empty")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the report to a file (.yaml, .toml, .json)")
	cmd.Flags().StringVarP(&archivePath, "archive", "a", "", "write the collected files to an archive (.tar.xz, .txz, .nar)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not list collected files")

	return cmd
}
