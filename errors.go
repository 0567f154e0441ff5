package pixelanimator

import (
	"errors"
	"fmt"
)

// Usage is the expected command line.
const Usage = "pixelanimator repeatcount frametime(mS) inputfilepath outputfilepath"

// ErrUsage is returned when the wrong number of arguments is given.
var ErrUsage = errors.New("invalid cmd line params")

// UsageError wraps ErrUsage with the expected command line.
func UsageError() error {
	return fmt.Errorf("%w. Usage: %s", ErrUsage, Usage)
}

// RangeError is returned when a playback parameter is outside the range
// that fits in its header byte.
type RangeError struct {
	Name  string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("invalid %s value '%d', value must be %d-%d", e.Name, e.Value, e.Min, e.Max)
}

// NotFoundError is returned when the input file doesn't exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file '%s' not found", e.Path)
}

// IOError records a failure reading, decoding or writing a file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
