package datefmt

import "errors"

// ErrInvalidDescriptor indicates that a skeleton or explicit pattern could not
// be resolved into a usable formatter for the requested locale.
var ErrInvalidDescriptor = errors.New("datefmt: invalid format descriptor")
