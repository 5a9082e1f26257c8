package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")
	ErrInvalidStatus  = errors.New("unknown attendance status")
)
