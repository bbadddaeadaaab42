// Package locate finds the install roots of a Tcl/Tk runtime pair from a list
// of discovered library records.
//
// Each platform has its own naming convention for the Tcl library:
//
//	Windows  tcl86.dll, with scripts in ../tcl/tcl8.6 or ../lib/tcl8.6
//	macOS    the _tkinter extension module, using the system frameworks
//	Unix     libtcl8.6.so (or libtcl.so.0), with scripts in ./tcl8.6
//
// The first record that resolves to a pair wins; input order is preserved
// and the records are never modified.
package locate

import (
	"io"
	"regexp"

	"github.com/charmbracelet/log"

	"github.com/arc-language/tkpair/pkg/platform"
)

// resolver turns a matching record into a pair. Returning false moves the
// scan on to the next record.
type resolver func(l *Locator, rec LibraryRecord, groups []string) (*LocatedPair, bool)

// strategy is the per-platform matching rule
type strategy struct {
	pattern *regexp.Regexp
	resolve resolver
}

var strategies = map[platform.Kind]strategy{
	platform.Windows: {pattern: windowsPattern, resolve: (*Locator).resolveWindows},
	platform.MacOS:   {pattern: darwinPattern, resolve: (*Locator).resolveDarwin},
	platform.Unix:    {pattern: unixPattern, resolve: (*Locator).resolveUnix},
}

// Locator searches library records for a Tcl/Tk pair
type Locator struct {
	fs     FS
	logger *log.Logger
}

// Option configures a Locator
type Option func(*Locator)

// WithFS sets the filesystem used for probing
func WithFS(fs FS) Option {
	return func(l *Locator) {
		l.fs = fs
	}
}

// WithLogger sets a logger for debug output about skipped candidates
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) {
		l.logger = logger
	}
}

// New creates a Locator probing the host filesystem unless overridden
func New(opts ...Option) *Locator {
	l := &Locator{fs: OSFS{}}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}
	return l
}

// Locate is a convenience wrapper around New().Locate
func Locate(records []LibraryRecord, p platform.Kind) (*LocatedPair, error) {
	return New().Locate(records, p)
}

// Locate returns the install roots for the first record that matches the
// platform's naming convention. It returns ErrUnsupported when p has no
// strategy and ErrNotFound when no record resolves.
func (l *Locator) Locate(records []LibraryRecord, p platform.Kind) (*LocatedPair, error) {
	s, ok := strategies[p]
	if !ok {
		return nil, &Error{Op: "locate", Platform: p, Err: ErrUnsupported}
	}

	if pair := l.scan(records, s); pair != nil {
		return pair, nil
	}
	return nil, &Error{Op: "locate", Platform: p, Err: ErrNotFound}
}

func (l *Locator) scan(records []LibraryRecord, s strategy) *LocatedPair {
	for _, rec := range records {
		m := s.pattern.FindStringSubmatch(rec.Name)
		if m == nil {
			continue
		}
		if pair, ok := s.resolve(l, rec, m[1:]); ok {
			l.logger.Debug("located tcl/tk", "record", rec.Name, "tcl", pair.InterpreterRoot, "tk", pair.ToolkitRoot)
			return pair
		}
		l.logger.Debug("candidate did not resolve", "record", rec.Name, "path", rec.Path)
	}
	return nil
}

// pairNames returns the interpreter and toolkit directory names for a version
func pairNames(version string) (string, string) {
	return "tcl" + version, "tk" + version
}
