package locate

import (
	"path/filepath"
	"regexp"
	"strings"
)

// windowsPattern matches tclXY.dll, capturing major and minor
var windowsPattern = regexp.MustCompile(`(?i)^tcl(\d)(\d)\.dll`)

// windowsProbeDirs are tried relative to the directory holding the DLL.
// A Python install keeps scripts in Python/tcl/tcl8.6 with the DLL in
// Python/DLLs; a standalone Tcl install uses Tcl/lib/tcl8.6 with Tcl/bin.
var windowsProbeDirs = []string{
	filepath.Join("..", "tcl"),
	filepath.Join("..", "lib"),
}

func (l *Locator) resolveWindows(rec LibraryRecord, groups []string) (*LocatedPair, bool) {
	version := strings.Join(groups, ".")
	tclName, tkName := pairNames(version)
	binDir := filepath.Dir(windowsPath(rec.Path))

	for _, probe := range windowsProbeDirs {
		base := filepath.Join(binDir, probe)
		if !l.fs.Exists(filepath.Join(base, tclName)) {
			continue
		}
		return &LocatedPair{
			InterpreterRoot: filepath.Join(base, tclName),
			ToolkitRoot:     filepath.Join(base, tkName),
			Version:         version,
		}, true
	}
	return nil, false
}

// windowsPath converts backslash separators so a manifest written on
// Windows resolves the same way on any host
func windowsPath(p string) string {
	return filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
}
