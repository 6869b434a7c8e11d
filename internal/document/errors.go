package document

import "errors"

// Errors returned by document operations.
var (
	// ErrRangeInvalid indicates an invalid range (e.g., end < start or past the end).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrEditsOverlap indicates edits overlap or are not in reverse order.
	ErrEditsOverlap = errors.New("edits overlap or are not in reverse order")
)
