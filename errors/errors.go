package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrNotManager is returned when an order lifecycle operation is
	// invoked by an identity that is not in the manager set.
	ErrNotManager = Register(1, "caller is not a manager")

	// ErrInvalidAmount is returned for zero or otherwise out-of-range
	// amounts. It is also the status for an out-of-range proposal type.
	ErrInvalidAmount = Register(2, "invalid amount")

	// ErrInsufficientFee is returned when the value attached to an
	// invocation does not cover the required transaction fee.
	ErrInsufficientFee = Register(3, "insufficient transaction fee")

	// ErrOrderNotFound is returned when no stored order matches the
	// requested order id or details.
	ErrOrderNotFound = Register(4, "order not found")

	// ErrInvalidOrderState is returned when an order is in the wrong
	// lifecycle stage for the requested transition.
	ErrInvalidOrderState = Register(5, "invalid order state")

	// ErrInsufficientLockedTokens is returned when the locked token pool
	// cannot back the requested operation.
	ErrInsufficientLockedTokens = Register(6, "insufficient locked tokens")

	// ErrTransferFailed is returned when the host ledger rejected a value
	// transfer.
	ErrTransferFailed = Register(7, "transfer failed")

	// ErrMaxManagersReached is returned when the manager set is full.
	ErrMaxManagersReached = Register(8, "manager set is full")

	// ErrNotAuthorized is returned when the caller lacks the role the
	// operation requires. Permanently disabled legacy operations report
	// this status unconditionally.
	ErrNotAuthorized = Register(9, "not authorized")

	// ErrProposalNotFound is returned when no active proposal matches the
	// requested proposal id.
	ErrProposalNotFound = Register(11, "proposal not found")

	// ErrProposalExecuted is returned when approving a proposal that was
	// already executed.
	ErrProposalExecuted = Register(12, "proposal already executed")

	// ErrProposalApproved is returned when an identity approves the same
	// proposal twice.
	ErrProposalApproved = Register(13, "proposal already approved")

	// ErrNotOwner is returned when a governance operation is invoked by
	// an identity that is not a multisig admin.
	ErrNotOwner = Register(14, "caller is not a multisig admin")

	// ErrMaxProposalsReached is returned when no proposal slot is free.
	// Executed proposals keep their slot, so this is a lifetime ceiling.
	ErrMaxProposalsReached = Register(15, "proposal store is full")

	// ErrNoAvailableSlots is returned when the order store is full and
	// the cleanup pass could not reclaim any slot.
	ErrNoAvailableSlots = Register(99, "no available order slots")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// All status codes of the bridge protocol are declared in this package. This
// function ensures that no code is used twice. Attempt to reuse a code
// results in panic. Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No
// two error instances should share the same status code.
var usedCodes = map[uint32]*Error{
	SuccessCode:  nil, // Code 0 signals success and must not be used.
	internalCode: nil, // Reserved for errors without an explicit code.
}

// Error represents a root error.
//
// Each error instance created during the runtime should wrap one of the
// declared root errors. This allows error tests and returning the status
// code to the client in a safe manner.
type Error struct {
	code uint32
	desc string
}

func (e *Error) Error() string {
	return e.desc
}

func (e *Error) StatusCode() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//   e.New("my description")
//   Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities.
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		if err == nil {
			return true
		}
		return reflect.ValueOf(err).IsNil()
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Wrap extends given error with an additional information.
//
// If the wrapped error does not provide a StatusCode method (ie. stdlib
// errors), it will be reported with the internal status code.
//
// If err is nil, this returns nil, avoiding the need for an if statement
// when wrapping a error returned at the end of a function.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional functionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into an ErrPanic instance and assigned to given error. Call
// this function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// ErrPanic is only set when we recover from a panic, so we know to redact
// potentially sensitive system info.
var ErrPanic = Register(111222, "panic")

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

// stackTrace returns the pkg/errors stack trace attached to this error, if
// present.
func stackTrace(err error) errors.StackTrace {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	for {
		if st, ok := err.(stackTracer); ok {
			return st.StackTrace()
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return nil
		}
	}
}
