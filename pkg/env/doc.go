// pkg/env/doc.go

/*
Package env discovers library records on disk for the Tcl/Tk locator.

It handles:
  - Default library search paths for each platform family
  - Recognizing shared libraries and Python extension modules by file name
  - Producing locate.LibraryRecord values in a stable order

Basic Usage:

	import "github.com/arc-language/tkpair/pkg/env"

	scanner := env.NewScanner(platform.Unix, nil)
	records := scanner.Scan()

	pair, err := locate.Locate(records, platform.Unix)

Extension modules are recorded under their module name, so
"_tkinter.cpython-312-x86_64-linux-gnu.so" becomes "_tkinter" with
locate.KindExtension. Shared libraries keep their file name
("libtcl8.6.so", "tcl86.dll") with locate.KindShared.

Scanning is flat: only the listed directories are read, never their
subdirectories. Resolving what a binary actually loads is left to the caller.
*/
package env
