package advance

import "errors"

var (
	ErrAdvanceNotFound   = errors.New("salary advance not found")
	ErrInvalidTransition = errors.New("advance status transition not allowed")
	ErrAdvanceNotPending = errors.New("only pending advances can be deleted")
)
