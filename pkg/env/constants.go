// pkg/env/constants.go
package env

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/arc-language/tkpair/pkg/platform"
)

// GetLayout returns the typical directory structure of a Python install with Tk
// support. These are RELATIVE paths within the install prefix.
func GetLayout(kind platform.Kind) Layout {
	switch kind {
	case platform.Windows:
		return getWindowsLayout()
	case platform.MacOS:
		return getDarwinLayout()
	default:
		return getUnixLayout()
	}
}

// Windows installs keep tcl86.dll and _tkinter.pyd side by side in DLLs/
func getWindowsLayout() Layout {
	return Layout{
		Libraries: []string{
			"DLLs",
			"bin",
			"",
		},
		Extensions: []string{
			"DLLs",
		},
	}
}

// Framework builds put extension modules under lib/pythonX.Y/lib-dynload
func getDarwinLayout() Layout {
	return Layout{
		Libraries: []string{
			"lib",
		},
		Extensions: []string{
			filepath.Join("lib", "python3*", "lib-dynload"),
		},
	}
}

// Debian/Ubuntu use a multiarch dir, Fedora lib64, everything else plain lib
func getUnixLayout() Layout {
	arch := runtime.GOARCH
	if arch == "amd64" {
		arch = "x86_64"
	}
	if arch == "arm64" {
		arch = "aarch64"
	}

	return Layout{
		Libraries: []string{
			filepath.Join("lib", arch+"-linux-gnu"),
			"lib64",
			"lib",
		},
		Extensions: []string{
			filepath.Join("lib", "python3*", "lib-dynload"),
			filepath.Join("lib64", "python3*", "lib-dynload"),
		},
	}
}

// DefaultPrefixes returns the install prefixes searched when no directories
// are configured
func DefaultPrefixes(kind platform.Kind) []string {
	switch kind {
	case platform.Windows:
		var prefixes []string
		for _, env := range []string{"PYTHONHOME", "LOCALAPPDATA", "ProgramFiles"} {
			if v := os.Getenv(env); v != "" {
				prefixes = append(prefixes, v)
			}
		}
		return prefixes
	case platform.MacOS:
		return []string{
			"/opt/homebrew",
			"/usr/local",
			"/Library/Frameworks/Python.framework/Versions/Current",
		}
	case platform.Unix:
		return []string{
			"/usr",
			"/usr/local",
		}
	default:
		return nil
	}
}

// DefaultSearchPaths expands the layout of kind against its default prefixes.
// Glob patterns in the layout are resolved; directories that do not exist are dropped.
func DefaultSearchPaths(kind platform.Kind) []string {
	return SearchPaths(kind, DefaultPrefixes(kind))
}

// SearchPaths expands the layout of kind against the given prefixes
func SearchPaths(kind platform.Kind, prefixes []string) []string {
	layout := GetLayout(kind)
	var dirs []string
	seen := make(map[string]bool)

	for _, prefix := range prefixes {
		for _, rel := range append(append([]string(nil), layout.Libraries...), layout.Extensions...) {
			matches, _ := filepath.Glob(filepath.Join(prefix, rel))
			for _, dir := range matches {
				if seen[dir] || !dirExists(dir) {
					continue
				}
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}

	return dirs
}

// GetSharedLibraryExtensions returns shared library suffixes for the platform
func GetSharedLibraryExtensions(kind platform.Kind) []string {
	switch kind {
	case platform.Windows:
		return []string{".dll"}
	case platform.MacOS:
		return []string{".dylib", ".so"}
	default:
		return []string{".so"}
	}
}

// GetExtensionModuleSuffixes returns Python extension module suffixes for the platform
func GetExtensionModuleSuffixes(kind platform.Kind) []string {
	switch kind {
	case platform.Windows:
		return []string{".pyd"}
	default:
		return []string{".so"}
	}
}
