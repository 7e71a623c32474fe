package common

import "errors"

var (
	ErrorInvalidValue = errors.New("invalid value")
	ErrorEmptySeries  = errors.New("series has no entries")
)
