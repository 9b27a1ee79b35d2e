package errors

import "errors"

// ErrInvalidArgument is a generic sentinel for invalid input.
// Label validation failures wrap this so callers can reject them
// before any store round trip. Missing resources are not an error
// kind here: lookups return empty lists and mutations report a
// zero count instead.
var ErrInvalidArgument = errors.New("invalid argument")
