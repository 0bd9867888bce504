package ethbridge

import "context"

// Invocation data travels through context.Context between the host dispatch
// layer and the contract operations. For every value XYZ of type T there are
// two functions:
//
//   WithXYZ(Context, T) Context
//   XYZ(Context) T
//
// Reading an unset value returns the zero value, never panics.

type contextKey int

const (
	contextKeyInvocator contextKey = iota
	contextKeyReward
)

// WithInvocator returns a context carrying the identity that invokes the
// in-flight operation.
func WithInvocator(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKeyInvocator, id)
}

// Invocator returns the identity invoking the in-flight operation. May be
// nil if the host did not set one.
func Invocator(ctx context.Context) Identity {
	// (val, ok) form to return nil instead of panic if unset.
	val, _ := ctx.Value(contextKeyInvocator).(Identity)
	return val
}

// WithReward returns a context carrying the value attached to the in-flight
// invocation. It pays transaction fees and liquidity deposits.
func WithReward(ctx context.Context, amount uint64) context.Context {
	return context.WithValue(ctx, contextKeyReward, amount)
}

// InvocationReward returns the value attached to the in-flight invocation.
func InvocationReward(ctx context.Context) uint64 {
	val, _ := ctx.Value(contextKeyReward).(uint64)
	return val
}
