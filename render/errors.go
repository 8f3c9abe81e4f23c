package render

import "fmt"

// ReadError reports an override template that exists but cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read template %q: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// ExpandError reports a template that could not be expanded. Offset is the
// byte position of the construct that failed.
type ExpandError struct {
	Source string
	Offset int
	Err    error
}

func (e *ExpandError) Error() string {
	return fmt.Sprintf("failed to expand %s at offset %d: %v", e.Source, e.Offset, e.Err)
}

func (e *ExpandError) Unwrap() error { return e.Err }
