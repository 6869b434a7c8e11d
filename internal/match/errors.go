package match

import "errors"

// errNotPattern is the message shown to the user for any unusable pattern.
const errNotPattern = "Input is not a regular expression."

var (
	// ErrMissingDelimiter is returned when the input is not of the form /pattern/flags.
	ErrMissingDelimiter = errors.New("pattern must be of the form /pattern/flags")

	// ErrEmptyPattern is returned for "//".
	ErrEmptyPattern = errors.New("pattern is empty")

	// ErrInvalidFlag is returned for unknown or repeated flags.
	ErrInvalidFlag = errors.New("invalid pattern flag")
)

// PatternError is returned when text cannot be used as a regular expression.
type PatternError struct {
	Input string
	Err   error
}

func (e *PatternError) Error() string {
	return errNotPattern
}

// Unwrap returns the underlying cause.
func (e *PatternError) Unwrap() error {
	return e.Err
}
