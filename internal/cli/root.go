// internal/cli/root.go
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arc-language/tkpair"
	"github.com/arc-language/tkpair/pkg/core"
)

// Version is the tkpair release
const Version = "0.1.0"

// globalOptions are shared by every subcommand
type globalOptions struct {
	cfgFile  string
	platform string
	debug    bool

	config *core.Config
	logger *log.Logger
}

// Execute executes the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "tkpair",
		Short: "Locate and collect the Tcl/Tk runtime for bundling",
		Long: `tkpair - Tcl/Tk runtime locator

Finds the Tcl and Tk script directories that belong to the Tcl library a
Python build loads, and lists (or archives) the files a bundled application
needs at runtime.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd.ErrOrStderr())
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/tkpair/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.platform, "platform", "", "target platform (windows, darwin, unix); detected when empty")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(newScanCommand(opts))
	rootCmd.AddCommand(newLocateCommand(opts))
	rootCmd.AddCommand(newCollectCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (o *globalOptions) init(stderr io.Writer) error {
	cfg, err := core.LoadConfig(o.cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Override config with flags
	if o.platform != "" {
		cfg.Platform = o.platform
	}
	if o.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.config = cfg

	o.logger = log.NewWithOptions(stderr, log.Options{
		Prefix: "tkpair",
	})
	if cfg.Debug {
		o.logger.SetLevel(log.DebugLevel)
	}
	return nil
}

func (o *globalOptions) bundler() (*tkpair.Bundler, error) {
	b, err := tkpair.New(o.config, tkpair.WithLogger(o.logger))
	if err != nil {
		return nil, fmt.Errorf("initializing bundler: %w", err)
	}
	return b, nil
}
