package sqlconv

import "errors"

var (
	// ErrDecodingFailure indicates that a value read from a column could
	// not be decoded into the native type, either because the driver
	// delivered a value of the wrong shape or because FromDB rejected it.
	ErrDecodingFailure = errors.New("value could not be decoded from its storage format")

	// ErrUnsupportedRawType indicates that a Converter declares a raw type
	// that is outside the set the driver stack can carry.
	ErrUnsupportedRawType = errors.New("raw type is not in the driver value set")
)

// Error is a typed error with a message and one or more causes. It is
// compatible with errors.Is: calling errors.Is on an Error along with any
// error it holds as a cause will return true, which lets callers check for
// the package sentinels without typecasting.
//
// If Error has at least one cause defined, the result of calling
// Error.Error() will be its message with the result of calling Error() on
// its first cause appended to it.
//
// Error should not be used directly; call New to create one.
type Error struct {
	msg   string
	cause []error
}

// New creates an error with the given message and causes. If msg is empty,
// the message of the first cause stands in for it.
func New(msg string, causes ...error) error {
	return Error{msg: msg, cause: causes}
}

// Error returns the message defined for the Error, concatenated with the
// result of calling Error() on its first cause if one is defined. If no
// message was defined but there is at least one cause, the first cause's
// message is returned.
func (e Error) Error() string {
	if e.msg == "" && len(e.cause) > 0 {
		return e.cause[0].Error()
	}

	if len(e.cause) > 0 {
		return e.msg + ": " + e.cause[0].Error()
	}

	return e.msg
}

// Unwrap returns the causes of the Error, or nil if none were defined.
//
// This function is for interaction with the errors API.
func (e Error) Unwrap() []error {
	if len(e.cause) > 0 {
		return e.cause
	}
	return nil
}

// Is returns whether Error either is itself the given target error, or one
// of its causes is.
//
// This function is for interaction with the errors API. Go 1.19 does not
// wrap multiple errors, so causes are walked here directly.
func (e Error) Is(target error) bool {
	if errTarget, ok := target.(Error); ok {
		if e.msg == errTarget.msg && len(e.cause) == len(errTarget.cause) {
			allCausesEqual := true
			for i := range e.cause {
				if e.cause[i] != errTarget.cause[i] {
					allCausesEqual = false
					break
				}
			}
			if allCausesEqual {
				return true
			}
		}
	}

	for i := range e.cause {
		// causes of type Error need the full walk
		if sErr, ok := e.cause[i].(Error); ok {
			if sErr.Is(target) {
				return true
			}
		} else if e.cause[i] == target {
			return true
		}
	}
	return false
}
