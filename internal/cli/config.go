// internal/cli/config.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/tkpair/internal/printer"
	"github.com/arc-language/tkpair/pkg/core"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tkpair configuration file",
	}

	cmd.AddCommand(newConfigInitCommand(opts))
	cmd.AddCommand(newConfigShowCommand(opts))

	return cmd
}

func newConfigInitCommand(opts *globalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfgFile
			if path == "" {
				p, err := core.DefaultPath()
				if err != nil {
					return fmt.Errorf("resolving config path: %w", err)
				}
				path = p
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			if err := core.SaveConfig(core.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", printer.Success("✓"), path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}

func newConfigShowCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config
			w := cmd.OutOrStdout()

			kind, err := cfg.PlatformKind()
			if err != nil {
				return err
			}
			printer.Field(w, "platform", kind.String())
			printer.Field(w, "prefix", cfg.DestPrefix)
			printer.Field(w, "archive", cfg.ArchiveFormat)
			printer.Field(w, "debug", fmt.Sprintf("%t", cfg.Debug))
			for _, dir := range cfg.SearchPaths {
				printer.Field(w, "search", dir)
			}
			for _, pattern := range cfg.Excludes {
				printer.Field(w, "exclude", pattern)
			}
			return nil
		},
	}
}
