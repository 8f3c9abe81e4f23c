// Package render selects and expands the info template and measures the
// rendered result.
package render

import (
	_ "embed"
	"errors"
	"io/fs"
	"os"
)

//go:embed default.tmpl
var defaultTemplate string

// DefaultName names the bundled template in diagnostics.
const DefaultName = "default template"

// Source is a template body and where it came from.
type Source struct {
	Name     string
	Text     string
	Override bool
}

// Default returns the template bundled with the binary.
func Default() Source {
	return Source{Name: DefaultName, Text: defaultTemplate}
}

// LoadSource picks the template to render.
//
// Parameters:
//   - overridePath: the user's override file; may be empty
//
// Returns:
//   - the override when the file exists and is readable
//   - the bundled default when the path is empty or does not exist
//   - a *ReadError when the file exists but cannot be read; this never
//     falls back to the default
func LoadSource(overridePath string) (Source, error) {
	if overridePath == "" {
		return Default(), nil
	}
	if _, err := os.Stat(overridePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Source{}, &ReadError{Path: overridePath, Err: err}
	}
	b, err := os.ReadFile(overridePath)
	if err != nil {
		return Source{}, &ReadError{Path: overridePath, Err: err}
	}
	return Source{Name: overridePath, Text: string(b), Override: true}, nil
}
