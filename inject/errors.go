package inject

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedValue is returned when a surface cannot represent a value's type.
	ErrUnsupportedValue = errors.New("unsupported value type")
	// ErrInvalidName is returned when a key cannot be turned into a valid name for a surface.
	ErrInvalidName = errors.New("invalid name")
	// ErrClosed is returned by Set after Close.
	ErrClosed = errors.New("context closed")
)

// SurfaceError reports a write that one consumption surface rejected.
// The other surfaces still received the value.
type SurfaceError struct {
	Surface string
	Key     string
	Err     error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("%s surface rejected %q: %v", e.Surface, e.Key, e.Err)
}

func (e *SurfaceError) Unwrap() error { return e.Err }

func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
