package core

import "errors"

// ErrInvalidArgument is returned when an operation receives a missing or
// unusable argument, such as a nil actor. It signals a programming error in
// the caller and is never produced by malformed level plans.
var ErrInvalidArgument = errors.New("core: invalid argument")
