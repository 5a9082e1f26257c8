package leave

import "errors"

var (
	ErrRequestNotFound         = errors.New("leave request not found")
	ErrRequestAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInsufficientBalance     = errors.New("insufficient leave balance for the requested days")
	ErrMaternityNotApplicable  = errors.New("maternity leave is only applicable for female employees")
)
