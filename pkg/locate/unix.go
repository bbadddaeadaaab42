package locate

import (
	"path/filepath"
	"regexp"
)

var (
	// unixPattern matches libtcl8.6.so and the version-less libtcl.so.0
	unixPattern = regexp.MustCompile(`^libtcl(\d\.\d)?\.so`)

	// unixVersionPattern recovers the version from a tclX.Y sibling directory
	unixVersionPattern = regexp.MustCompile(`^tcl(\d.\d)`)
)

func (l *Locator) resolveUnix(rec LibraryRecord, groups []string) (*LocatedPair, bool) {
	libDir := filepath.Dir(rec.Path)

	version := groups[0]
	if version == "" {
		v, ok := l.versionFromListing(libDir)
		if !ok {
			return nil, false
		}
		version = v
	}

	// /usr/lib/libtcl8.6.so keeps its scripts in /usr/lib/tcl8.6 and /usr/lib/tk8.6
	tclName, tkName := pairNames(version)
	return &LocatedPair{
		InterpreterRoot: filepath.Join(libDir, tclName),
		ToolkitRoot:     filepath.Join(libDir, tkName),
		Version:         version,
	}, true
}

// versionFromListing takes the version from the first tclX.Y entry in dir.
// When several versions are installed the listing order decides.
func (l *Locator) versionFromListing(dir string) (string, bool) {
	names, err := l.fs.ReadDir(dir)
	if err != nil {
		l.logger.Debug("listing library dir", "dir", dir, "err", err)
		return "", false
	}
	for _, name := range names {
		if m := unixVersionPattern.FindStringSubmatch(name); m != nil {
			return m[1], true
		}
	}
	return "", false
}
