/*
Package errors implements the coded errors used across the bridge contract
core.

Every failure a contract operation can report is represented by a root error
registered together with a numeric status code. Status codes are part of the
bridge protocol surface: callers observe them instead of Go error values, so
the registered values are fixed and must never be renumbered.

Create errors during runtime by wrapping a root error:

	errors.Wrapf(errors.ErrInvalidAmount, "amount %d", amount)

Test an error with the root's Is method:

	if errors.ErrOrderNotFound.Is(err) { ... }

and extract the protocol status with StatusCode.
*/
package errors
