// errors.go
package tkpair

import (
	"errors"
	"fmt"

	"github.com/arc-language/tkpair/pkg/locate"
)

var (
	// ErrUnsupported indicates the platform has no Tcl/Tk locate strategy.
	// Callers should skip the runtime pair entirely.
	ErrUnsupported = locate.ErrUnsupported

	// ErrNotFound indicates no library record yielded a Tcl/Tk pair.
	// The bundled application will be missing Tk at runtime.
	ErrNotFound = locate.ErrNotFound

	// ErrNoRecords indicates neither a manifest nor a scan produced any records
	ErrNoRecords = errors.New("no library records")
)

// Error wraps an error with additional context
type Error struct {
	Op   string // Operation that failed
	Path string // File or directory if applicable
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
