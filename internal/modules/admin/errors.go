package admin

import "errors"

var ErrInvalidFilter = errors.New("invalid filter")
