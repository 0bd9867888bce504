package bridgetest

import (
	"github.com/vottun/ethbridge"
)

// Transfer is one recorded Cash.Transfer call.
type Transfer struct {
	Destination ethbridge.Identity
	Amount      uint64
}

// Cash is a mock implementing the ethbridge.Cash interface. It records every
// successful call and can be instructed to fail.
type Cash struct {
	// TransferErr, when set, is returned by every Transfer call and the
	// call is not recorded.
	TransferErr error

	// FailDividends, when set, makes DistributeDividends report failure
	// without recording the call.
	FailDividends bool

	// Transfers holds every successful transfer in call order.
	Transfers []Transfer

	// Dividends holds the per-share amount of every successful dividend
	// distribution in call order.
	Dividends []uint64
}

var _ ethbridge.Cash = (*Cash)(nil)

func (c *Cash) Transfer(dest ethbridge.Identity, amount uint64) error {
	if c.TransferErr != nil {
		return c.TransferErr
	}
	c.Transfers = append(c.Transfers, Transfer{Destination: dest.Clone(), Amount: amount})
	return nil
}

func (c *Cash) DistributeDividends(perShare uint64) bool {
	if c.FailDividends {
		return false
	}
	c.Dividends = append(c.Dividends, perShare)
	return true
}
