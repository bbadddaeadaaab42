// tkpair.go
package tkpair

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/arc-language/tkpair/pkg/archive"
	"github.com/arc-language/tkpair/pkg/core"
	"github.com/arc-language/tkpair/pkg/env"
	"github.com/arc-language/tkpair/pkg/locate"
	"github.com/arc-language/tkpair/pkg/manifest"
	"github.com/arc-language/tkpair/pkg/platform"
	"github.com/arc-language/tkpair/pkg/tree"
)

// Re-export types for convenience
type (
	LibraryRecord = locate.LibraryRecord
	LocatedPair   = locate.LocatedPair
	Kind          = locate.Kind
	PlatformKind  = platform.Kind
	Entry         = tree.Entry
	Config        = core.Config
)

// Re-export constants
const (
	KindExtension = locate.KindExtension
	KindShared    = locate.KindShared
	KindOther     = locate.KindOther

	Windows = platform.Windows
	MacOS   = platform.MacOS
	Unix    = platform.Unix
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Result is the outcome of a single Run
type Result struct {
	Platform platform.Kind
	Skipped  bool         // Platform unsupported, nothing was located
	Pair     *LocatedPair // nil when skipped
	Entries  []Entry      // Tcl tree first, then Tk
}

// Report converts the result into its manifest form
func (r *Result) Report() manifest.Report {
	return manifest.Report{
		Platform: r.Platform.String(),
		Skipped:  r.Skipped,
		Pair:     manifest.NewPair(r.Pair),
		Entries:  r.Entries,
	}
}

// Bundler locates the Tcl/Tk runtime and collects its files
type Bundler struct {
	config   *Config
	platform platform.Kind
	fs       locate.FS
	locator  *locate.Locator
	logger   *log.Logger
}

// Option configures a Bundler
type Option func(*Bundler)

// WithLogger sets the logger. Without one, output is discarded.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bundler) {
		b.logger = logger
	}
}

// WithFS sets the filesystem the locator probes
func WithFS(fs locate.FS) Option {
	return func(b *Bundler) {
		b.fs = fs
	}
}

// WithPlatform overrides the configured platform
func WithPlatform(kind platform.Kind) Option {
	return func(b *Bundler) {
		b.platform = kind
	}
}

// New creates a Bundler for the configured (or detected) platform
func New(config *Config, opts ...Option) (*Bundler, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	kind, err := config.PlatformKind()
	if err != nil {
		return nil, fmt.Errorf("resolving platform: %w", err)
	}

	b := &Bundler{
		config:   config,
		platform: kind,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	locatorOpts := []locate.Option{locate.WithLogger(b.logger)}
	if b.fs != nil {
		locatorOpts = append(locatorOpts, locate.WithFS(b.fs))
	}
	b.locator = locate.New(locatorOpts...)

	return b, nil
}

// Platform returns the platform the bundler locates for
func (b *Bundler) Platform() platform.Kind {
	return b.platform
}

// Records loads library records from a manifest file, or scans the
// configured search paths when manifestPath is empty.
// An unsupported platform yields no records and no error, leaving the
// outcome to Locate and Run.
func (b *Bundler) Records(manifestPath string) ([]LibraryRecord, error) {
	if !b.platform.Supported() {
		b.logger.Debug("not loading records", "platform", b.platform)
		return nil, nil
	}

	if manifestPath != "" {
		records, err := manifest.Load(manifestPath)
		if err != nil {
			return nil, &Error{Op: "load records", Path: manifestPath, Err: err}
		}
		b.logger.Debug("loaded records", "manifest", manifestPath, "count", len(records))
		return records, nil
	}

	scanner := env.NewScanner(b.platform, b.config.SearchPaths)
	records := scanner.Scan()
	b.logger.Debug("scanned records", "dirs", len(scanner.Dirs), "count", len(records))
	if len(records) == 0 {
		return nil, &Error{Op: "scan records", Err: ErrNoRecords}
	}
	return records, nil
}

// Locate finds the Tcl/Tk pair among records
func (b *Bundler) Locate(records []LibraryRecord) (*LocatedPair, error) {
	return b.locator.Locate(records, b.platform)
}

// Run locates the pair and collects both trees. It runs once per bundle;
// the result is returned rather than stored.
//
// An unsupported platform is not an error: the result is marked Skipped.
// ErrNotFound is returned so the caller can warn and continue without Tk.
func (b *Bundler) Run(records []LibraryRecord) (*Result, error) {
	result := &Result{Platform: b.platform}

	pair, err := b.Locate(records)
	switch {
	case errors.Is(err, ErrUnsupported):
		b.logger.Info("skipping Tcl/Tk detection on this target platform", "platform", b.platform)
		result.Skipped = true
		return result, nil
	case errors.Is(err, ErrNotFound):
		b.logger.Error("could not find Tcl/Tk", "records", len(records))
		return result, err
	case err != nil:
		return nil, err
	}
	result.Pair = pair
	b.logger.Info("found Tcl/Tk", "tcl", pair.InterpreterRoot, "tk", pair.ToolkitRoot, "version", pair.Version)

	entries, err := tree.CollectPair(pair, b.platform, b.config.DestPrefix, b.config.Excludes...)
	if err != nil {
		return result, &Error{Op: "collect", Path: pair.InterpreterRoot, Err: err}
	}
	result.Entries = entries
	b.logger.Debug("collected files", "count", len(entries))

	return result, nil
}

// WriteArchive writes the collected entries of result to path using the
// configured archive format, or the one implied by the file name
func (b *Bundler) WriteArchive(path string, result *Result) error {
	format, err := archive.FormatFor(path)
	if err != nil {
		format, err = archive.ParseFormat(b.config.ArchiveFormat)
		if err != nil {
			return &Error{Op: "write archive", Path: path, Err: err}
		}
	}

	if err := archive.Write(path, format, result.Entries); err != nil {
		return &Error{Op: "write archive", Path: path, Err: err}
	}
	b.logger.Info("wrote archive", "path", path, "format", format, "files", len(result.Entries))
	return nil
}

// WriteReport saves the result as a manifest report
func (b *Bundler) WriteReport(path string, result *Result) error {
	if err := manifest.Save(path, result.Report()); err != nil {
		return &Error{Op: "write report", Path: path, Err: err}
	}
	return nil
}
