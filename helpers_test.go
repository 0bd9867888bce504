package ethbridge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vottun/ethbridge"
	"github.com/vottun/ethbridge/bridgetest"
)

// fixture wires a bridge with one manager, three multisig admins and a 2 of
// 3 threshold, the smallest roster covering every role.
type fixture struct {
	bridge *ethbridge.Bridge
	cash   *bridgetest.Cash

	contract  ethbridge.Identity
	admin     ethbridge.Identity
	manager   ethbridge.Identity
	recipient ethbridge.Identity
	msAdmins  []ethbridge.Identity
}

func newFixture(t testing.TB, mutate ...func(*ethbridge.Options)) *fixture {
	t.Helper()

	f := &fixture{
		cash:      &bridgetest.Cash{},
		contract:  bridgetest.NewIdentity(),
		admin:     bridgetest.NewIdentity(),
		manager:   bridgetest.NewIdentity(),
		recipient: bridgetest.NewIdentity(),
		msAdmins: []ethbridge.Identity{
			bridgetest.NewIdentity(),
			bridgetest.NewIdentity(),
			bridgetest.NewIdentity(),
		},
	}
	opts := ethbridge.Options{
		Contract:          f.contract,
		Admin:             f.admin,
		FeeRecipient:      f.recipient,
		Managers:          []ethbridge.Identity{f.manager},
		MultisigAdmins:    f.msAdmins,
		RequiredApprovals: 2,
	}
	for _, fn := range mutate {
		fn(&opts)
	}
	bridge, err := ethbridge.NewBridge(opts, f.cash)
	require.NoError(t, err)
	f.bridge = bridge
	return f
}

// asCaller builds the invocation context for the given identity with the
// given attached value.
func asCaller(id ethbridge.Identity, reward uint64) context.Context {
	ctx := ethbridge.WithInvocator(context.Background(), id)
	return ethbridge.WithReward(ctx, reward)
}

// tradeFee returns the per-pool fee at the default rate of 0.5%.
func tradeFee(amount uint64) uint64 {
	return amount * uint64(ethbridge.DefaultTradeFeeBillionths) / 1000000000
}

// createQubicToEthOrder creates an outbound order for sender, paying the
// exact required fee, and returns its id.
func (f *fixture) createQubicToEthOrder(t testing.TB, sender ethbridge.Identity, amount uint64) uint64 {
	t.Helper()
	res, err := f.bridge.CreateOrder(asCaller(sender, 2*tradeFee(amount)), &ethbridge.CreateOrderMsg{
		Amount:     amount,
		EthAddress: bridgetest.NewEthAddress(),
		Direction:  ethbridge.DirectionQubicToEth,
	})
	require.NoError(t, err)
	return res.OrderID
}

// addLiquidity deposits amount into the locked pool through the manager.
func (f *fixture) addLiquidity(t testing.TB, amount uint64) {
	t.Helper()
	_, err := f.bridge.AddLiquidity(asCaller(f.manager, amount))
	require.NoError(t, err)
}
