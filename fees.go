package ethbridge

// EndTick is the host's end-of-round callback. It runs the periodic fee
// distribution and nothing else.
//
// The same chain pool is split evenly across the computor set with integer
// division. Only the amount actually paid out, perShare x computors,
// advances the distributed counter; the remainder stays in the pool and
// carries to the next tick, so fractional amounts are never distributed and
// distributed never exceeds earned.
//
// The outstanding cross chain pool is flushed in full to the fee recipient,
// when one is configured. Either payout advances its counter only after the
// host reported success.
func (b *Bridge) EndTick() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if pending := b.earnedFeesQubic - b.distributedFeesQubic; pending > 0 {
		perShare := pending / b.dividendComputors
		if perShare > 0 && b.cash.DistributeDividends(perShare) {
			paid := perShare * b.dividendComputors
			b.distributedFeesQubic += paid
			b.logger.Info("dividends distributed",
				"per_share", perShare,
				"paid", paid,
				"carried", pending-paid,
			)
		}
	}

	if outstanding := b.earnedFees - b.distributedFees; outstanding > 0 && !b.feeRecipient.IsNull() {
		if err := b.cash.Transfer(b.feeRecipient, outstanding); err == nil {
			b.distributedFees += outstanding
			b.logger.Info("fees flushed",
				"amount", outstanding,
				"recipient", b.feeRecipient.String(),
			)
		}
	}
}
