// Package tree collects the files below an install root for inclusion in a
// bundle, mapping each one to its destination path.
package tree

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/arc-language/tkpair/pkg/locate"
	"github.com/arc-language/tkpair/pkg/platform"
)

// Entry maps a file on disk to its path inside the bundle
type Entry struct {
	Source string `json:"source" yaml:"source" toml:"source"`
	Dest   string `json:"dest" yaml:"dest" toml:"dest"`
}

// DefaultPrefix is the bundle directory the runtime trees are placed under
const DefaultPrefix = "_MEI"

// Files never needed at runtime
var (
	TclExcludes = []string{"demos", "encoding", "*.lib", "tclConfig.sh"}
	TkExcludes  = []string{"demos", "encoding", "*.lib", "tkConfig.sh"}
)

// Collect walks root and returns an entry for every regular file, with Dest
// set to destPrefix joined with the file's path relative to root.
// A file or directory whose base name matches any exclude glob is skipped;
// excluding a directory skips everything beneath it.
//
// Symbolic links are followed, root included: a framework's
// Versions/Current is usually a link. A link back into a directory that is
// already being walked is skipped.
func Collect(root, destPrefix string, excludes []string) ([]Entry, error) {
	for _, pattern := range excludes {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("collecting %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("collecting %s: not a directory", root)
	}

	w := &walker{excludes: excludes, active: make(map[string]bool)}
	if err := w.walk(root, destPrefix); err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return w.entries, nil
}

type walker struct {
	excludes []string
	entries  []Entry
	// resolved paths of the directories on the current descent
	active   map[string]bool
}

func (w *walker) walk(dir, dest string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if w.active[resolved] {
		return nil
	}
	w.active[resolved] = true
	defer delete(w.active, resolved)

	children, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, child := range children {
		name := child.Name()
		if excluded(name, w.excludes) {
			continue
		}
		source := filepath.Join(dir, name)
		target := path.Join(dest, name)

		mode := child.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(source)
			if err != nil {
				// dangling link
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if err := w.walk(source, target); err != nil {
				return err
			}
		case mode.IsRegular():
			w.entries = append(w.entries, Entry{Source: source, Dest: target})
		}
	}
	return nil
}

func excluded(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

// DestDirs returns the bundle directory names for the Tcl and Tk trees
func DestDirs(kind platform.Kind) (string, string) {
	if kind == platform.MacOS {
		return "Tcl.framework", "Tk.framework"
	}
	return "tcl", "tk"
}

// CollectPair collects both roots of a located pair under prefix.
// Tcl entries come first. extra patterns are added to both exclude lists.
func CollectPair(pair *locate.LocatedPair, kind platform.Kind, prefix string, extra ...string) ([]Entry, error) {
	if pair == nil {
		return nil, fmt.Errorf("collecting pair: no pair located")
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	tclDir, tkDir := DestDirs(kind)

	tclEntries, err := Collect(pair.InterpreterRoot, path.Join(prefix, tclDir), append(clone(TclExcludes), extra...))
	if err != nil {
		return nil, fmt.Errorf("collecting tcl: %w", err)
	}
	tkEntries, err := Collect(pair.ToolkitRoot, path.Join(prefix, tkDir), append(clone(TkExcludes), extra...))
	if err != nil {
		return nil, fmt.Errorf("collecting tk: %w", err)
	}

	return append(tclEntries, tkEntries...), nil
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
