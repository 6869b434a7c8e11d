package runner

import "errors"

// ErrApply wraps a failure of the editor to apply the edit batch.
var ErrApply = errors.New("failed to apply edits")
