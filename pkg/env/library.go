// pkg/env/library.go
package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arc-language/tkpair/pkg/locate"
	"github.com/arc-language/tkpair/pkg/platform"
)

// NewScanner creates a scanner for kind. With no dirs the platform's
// default search paths are used.
func NewScanner(kind platform.Kind, dirs []string) *Scanner {
	if len(dirs) == 0 {
		dirs = DefaultSearchPaths(kind)
	}
	return &Scanner{
		Platform: kind,
		Dirs:     dirs,
	}
}

// Scan lists every directory and returns a record for each shared library
// or extension module found. Unreadable directories are skipped.
func (s *Scanner) Scan() []locate.LibraryRecord {
	var records []locate.LibraryRecord
	seen := make(map[string]bool) // Avoid duplicates

	for _, dir := range s.Dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			fullPath := filepath.Join(dir, entry.Name())
			if seen[fullPath] {
				continue
			}

			rec, ok := s.Classify(fullPath)
			if !ok {
				continue
			}
			seen[fullPath] = true
			records = append(records, rec)
		}
	}

	return records
}

// Classify builds a record for the file at path, reporting false when the
// file is neither a shared library nor an extension module on this platform
func (s *Scanner) Classify(path string) (locate.LibraryRecord, bool) {
	name := filepath.Base(path)

	if s.isExtensionModule(name) {
		return locate.LibraryRecord{
			Name: moduleName(name),
			Path: path,
			Kind: locate.KindExtension,
		}, true
	}

	if s.isSharedLibrary(name) {
		return locate.LibraryRecord{
			Name: name,
			Path: path,
			Kind: locate.KindShared,
		}, true
	}

	return locate.LibraryRecord{}, false
}

func (s *Scanner) isExtensionModule(name string) bool {
	lower := strings.ToLower(name)
	for _, suffix := range GetExtensionModuleSuffixes(s.Platform) {
		if !strings.HasSuffix(lower, suffix) {
			continue
		}
		// Windows marks modules by suffix alone
		if suffix == ".pyd" {
			return true
		}
		// Tagged modules: _tkinter.cpython-312-x86_64-linux-gnu.so, _ssl.abi3.so
		if strings.Contains(lower, ".cpython-") || strings.Contains(lower, ".abi3.") || strings.Contains(lower, ".pypy") {
			return true
		}
		// Untagged modules (_tkinter.so, _tkintermodule.so) never carry a lib prefix
		return !strings.HasPrefix(lower, "lib")
	}
	return false
}

func (s *Scanner) isSharedLibrary(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range GetSharedLibraryExtensions(s.Platform) {
		// libtcl8.6.so, and versioned sonames like libtcl.so.0
		if strings.HasSuffix(lower, ext) || strings.Contains(lower, ext+".") {
			return true
		}
	}
	return false
}

// moduleName strips the platform tag and suffix from an extension module file name
func moduleName(file string) string {
	name := strings.Split(file, ".")[0]
	return strings.TrimSuffix(name, "module")
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
