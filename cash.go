package ethbridge

// Cash gives the contract access to the host ledger's value movement
// primitives. Both calls may fail and the contract only advances its
// accounting counters after a reported success.
type Cash interface {
	// Transfer moves amount from the contract's custody to dest.
	// Transferring to the contract's own identity pulls the attached
	// invocation value into custody.
	Transfer(dest Identity, amount uint64) error

	// DistributeDividends pays perShare to every member of the host's
	// fixed computor set and reports whether the payout happened.
	DistributeDividends(perShare uint64) bool
}
