package locate

import "strings"

// Kind is the coarse classification of a discovered library
type Kind int

const (
	// KindOther is anything that is neither an extension module nor a shared library
	KindOther Kind = iota
	// KindExtension is a scripting-language extension module (e.g. _tkinter)
	KindExtension
	// KindShared is a plain shared library (.so, .dylib, .dll)
	KindShared
)

// String returns the lowercase name of the kind
func (k Kind) String() string {
	switch k {
	case KindExtension:
		return "extension"
	case KindShared:
		return "shared"
	default:
		return "other"
	}
}

// ParseKind converts a textual kind into a Kind. Unrecognized values map to KindOther.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "extension", "ext":
		return KindExtension
	case "shared", "binary", "dll", "so", "dylib":
		return KindShared
	default:
		return KindOther
	}
}

// LibraryRecord describes one discovered library dependency
type LibraryRecord struct {
	Name string // Module or file name (e.g. "_tkinter", "tcl86.dll", "libtcl8.6.so")
	Path string // Absolute path to the file on disk
	Kind Kind
}

// LocatedPair holds the install roots of the Tcl interpreter and the Tk toolkit.
// The directories are not checked for existence.
type LocatedPair struct {
	InterpreterRoot string
	ToolkitRoot     string
	Version         string // Empty when the layout is version-less (macOS frameworks)
}
