// pkg/platform/detect.go
package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// Kind identifies the platform family whose install conventions are used
// when locating the Tcl/Tk runtime.
type Kind int

const (
	// Unknown is never supported by the locator
	Unknown Kind = iota
	// Windows uses tclXY.dll next to a tcl/ or lib/ tree
	Windows
	// MacOS uses the system Tcl and Tk frameworks
	MacOS
	// Unix uses libtclX.Y.so with sibling tclX.Y/tkX.Y directories
	Unix
)

// GOOS name constants for runtime.GOOS comparisons.
const (
	goosWindows = "windows"
	goosDarwin  = "darwin"
)

var unixGOOS = map[string]bool{
	"linux":     true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"illumos":   true,
	"aix":       true,
}

// GOOS values with no Tcl/Tk install layout; they parse to Unknown
var otherGOOS = map[string]bool{
	"plan9":   true,
	"js":      true,
	"wasip1":  true,
	"android": true,
	"ios":     true,
}

// String returns the canonical lowercase name of the platform
func (k Kind) String() string {
	switch k {
	case Windows:
		return "windows"
	case MacOS:
		return "darwin"
	case Unix:
		return "unix"
	default:
		return "unknown"
	}
}

// Supported reports whether the locator has a strategy for this platform
func (k Kind) Supported() bool {
	return k == Windows || k == MacOS || k == Unix
}

// Detect maps the running GOOS to a platform Kind.
// Operating systems without a known Tcl/Tk layout return Unknown.
func Detect() Kind {
	return FromGOOS(runtime.GOOS)
}

// FromGOOS maps a GOOS value to a platform Kind
func FromGOOS(goos string) Kind {
	switch {
	case goos == goosWindows:
		return Windows
	case goos == goosDarwin:
		return MacOS
	case unixGOOS[goos]:
		return Unix
	default:
		return Unknown
	}
}

// Parse converts a user supplied platform name into a Kind.
// It accepts GOOS names as well as a few common aliases. A real GOOS
// without a Tcl/Tk layout, such as plan9, yields Unknown and no error.
func Parse(name string) (Kind, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "windows", "win32", "win":
		return Windows, nil
	case "darwin", "macos", "mac", "osx":
		return MacOS, nil
	case "unix":
		return Unix, nil
	default:
		if unixGOOS[n] {
			return Unix, nil
		}
		if otherGOOS[n] {
			return Unknown, nil
		}
		return Unknown, fmt.Errorf("unknown platform: %q", name)
	}
}
