package errors

import "reflect"

const (
	// SuccessCode declares that an operation completed without error.
	// A nil error always maps to this status.
	SuccessCode uint32 = 0

	// All unclassified errors that do not provide a status code are
	// clubbed under the internal code. It is not part of the protocol
	// enumeration and signals a coding error rather than a rejection.
	internalCode uint32 = 100
)

type coder interface {
	StatusCode() uint32
}

// StatusCode returns the protocol status carried by the given error. Errors
// are unwrapped using the Cause method until a status code is found. Any
// error that does not provide one is categorized as internal.
func StatusCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessCode
	}

	for {
		if c, ok := err.(coder); ok {
			return c.StatusCode()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}

// errIsNil returns true if value represented by the given error is nil.
//
// Most of the time a simple == check is enough. There is a very narrowed
// spectrum of cases (mostly in tests) where a more sophisticated check is
// required.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	if val := reflect.ValueOf(err); val.Kind() == reflect.Ptr {
		return val.IsNil()
	}
	return false
}
