package closure

import "errors"

var ErrClosureNotFound = errors.New("factory closure not found")
