package locate

import (
	"errors"
	"fmt"

	"github.com/arc-language/tkpair/pkg/platform"
)

var (
	// ErrUnsupported indicates that no locate strategy exists for the platform
	ErrUnsupported = errors.New("platform not supported")

	// ErrNotFound indicates that no library record yielded a Tcl/Tk pair
	ErrNotFound = errors.New("tcl/tk not found")
)

// Error wraps a locate failure with the operation and platform
type Error struct {
	Op       string        // Operation that failed
	Platform platform.Kind // Platform the operation ran for
	Err      error         // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Op, e.Platform, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
