package ethbridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vottun/ethbridge"
	"github.com/vottun/ethbridge/bridgetest"
	"github.com/vottun/ethbridge/errors"
)

func TestFeeAccrual(t *testing.T) {
	f := newFixture(t)
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)

	// 0.5% into each pool.
	fees := f.bridge.GetAvailableFees()
	assert.Equal(t, uint64(1000), fees.EarnedFees)
	assert.Equal(t, uint64(1000), fees.EarnedFeesQubic)
	assert.Equal(t, uint64(0), fees.DistributedFees)
	assert.Equal(t, uint64(0), fees.DistributedFeesQubic)
}

func TestEndTickDividendSplit(t *testing.T) {
	// A seven computor set makes the integer remainder visible: 1000 / 7
	// pays 142 per share, 994 total, and carries 6.
	f := newFixture(t, func(opts *ethbridge.Options) {
		opts.DividendComputors = 7
	})
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)

	f.bridge.EndTick()

	require.Len(t, f.cash.Dividends, 1)
	assert.Equal(t, uint64(142), f.cash.Dividends[0])

	fees := f.bridge.GetAvailableFees()
	assert.Equal(t, uint64(994), fees.DistributedFeesQubic)
	assert.Equal(t, uint64(1000), fees.EarnedFeesQubic)

	// The cross chain pool was flushed in full to the recipient.
	require.Len(t, f.cash.Transfers, 1)
	assert.True(t, f.cash.Transfers[0].Destination.Equals(f.recipient))
	assert.Equal(t, uint64(1000), f.cash.Transfers[0].Amount)
	assert.Equal(t, uint64(1000), fees.DistributedFees)

	// The carried remainder of 6 is below one share, so the next tick
	// pays nothing.
	f.bridge.EndTick()
	assert.Len(t, f.cash.Dividends, 1)
	assert.Len(t, f.cash.Transfers, 1)

	// More fees join the remainder: 6 + 1000 = 1006, 143 per share,
	// 1001 paid, 5 carried.
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)
	f.bridge.EndTick()

	require.Len(t, f.cash.Dividends, 2)
	assert.Equal(t, uint64(143), f.cash.Dividends[1])
	fees = f.bridge.GetAvailableFees()
	assert.Equal(t, uint64(994+1001), fees.DistributedFeesQubic)
	assert.Equal(t, uint64(2000), fees.EarnedFeesQubic)
}

func TestEndTickNoFees(t *testing.T) {
	f := newFixture(t)
	f.bridge.EndTick()
	assert.Empty(t, f.cash.Dividends)
	assert.Empty(t, f.cash.Transfers)
}

func TestEndTickDividendFailure(t *testing.T) {
	f := newFixture(t, func(opts *ethbridge.Options) {
		opts.DividendComputors = 7
	})
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)

	f.cash.FailDividends = true
	f.bridge.EndTick()

	// Nothing was paid and nothing was counted; the flush still ran.
	fees := f.bridge.GetAvailableFees()
	assert.Equal(t, uint64(0), fees.DistributedFeesQubic)
	assert.Equal(t, uint64(1000), fees.DistributedFees)

	// The next tick retries the whole pool.
	f.cash.FailDividends = false
	f.bridge.EndTick()
	require.Len(t, f.cash.Dividends, 1)
	assert.Equal(t, uint64(142), f.cash.Dividends[0])
	assert.Equal(t, uint64(994), f.bridge.GetAvailableFees().DistributedFeesQubic)
}

func TestEndTickFlushFailure(t *testing.T) {
	f := newFixture(t)
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)

	f.cash.TransferErr = errors.ErrTransferFailed.New("host rejected")
	f.bridge.EndTick()
	assert.Equal(t, uint64(0), f.bridge.GetAvailableFees().DistributedFees)

	f.cash.TransferErr = nil
	f.bridge.EndTick()
	require.Len(t, f.cash.Transfers, 1)
	assert.Equal(t, uint64(1000), f.cash.Transfers[0].Amount)
	assert.Equal(t, uint64(1000), f.bridge.GetAvailableFees().DistributedFees)
}

func TestEndTickNoRecipient(t *testing.T) {
	f := newFixture(t, func(opts *ethbridge.Options) {
		opts.FeeRecipient = nil
	})
	f.createQubicToEthOrder(t, bridgetest.NewIdentity(), 200000)

	f.bridge.EndTick()

	// The cross chain pool stays untouched without a recipient.
	assert.Empty(t, f.cash.Transfers)
	fees := f.bridge.GetAvailableFees()
	assert.Equal(t, uint64(1000), fees.EarnedFees)
	assert.Equal(t, uint64(0), fees.DistributedFees)
}
