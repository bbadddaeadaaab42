// pkg/env/types.go
package env

import "github.com/arc-language/tkpair/pkg/platform"

// Layout lists the directories, relative to an install prefix, where a
// platform keeps its libraries and extension modules
type Layout struct {
	Libraries  []string // Shared library directories (lib/, DLLs/, bin/)
	Extensions []string // Extension module directories (lib-dynload/)
}

// Scanner lists directories for library records
type Scanner struct {
	Platform platform.Kind // Naming conventions to apply
	Dirs     []string      // Directories to list, in priority order
}
