package dynamic

import "errors"

// Access failures recorded in Absent.Cause.
var (
	ErrMemberNotFound   = errors.New("member not found")
	ErrNilIntermediate  = errors.New("member of a nil value")
	ErrUnexported       = errors.New("member is unexported")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnsupportedShape = errors.New("member cannot be read without arguments")
)
