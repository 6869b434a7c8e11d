package script

import (
	"errors"
	"fmt"
)

// Errors for script loading and execution.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrNoScriptFunction is returned when a script exports no transformation function.
	ErrNoScriptFunction = errors.New("script must return a function or a table with a 'script' function")

	// ErrInvalidParams is returned when the params field is not a list of strings.
	ErrInvalidParams = errors.New("'params' must be a list of strings")

	// ErrInvalidRegexp is returned when the regexp field has an unsupported type.
	ErrInvalidRegexp = errors.New("'regexp' must be a string label or a regexp(...) value")
)

// LoadError reports a script that could not be read, compiled or evaluated.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Error loading '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ScriptError reports a failure raised while the transformation ran.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ScriptError) Unwrap() error {
	return e.Err
}
