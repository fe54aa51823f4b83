package prompts

import "errors"

// Domain errors for prompt operations. ErrNotFound stays distinct from
// storage failures so callers can tell a missing row from a statement
// that could not be executed.
var (
	ErrNotFound  = errors.New("prompt not found")
	ErrMissingID = errors.New("prompt id required")
)
