package ethbridge

import (
	"sync"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/vottun/ethbridge/errors"
)

const (
	// DefaultTradeFeeBillionths is the per-pool trade fee rate in parts
	// per billion: 5,000,000 / 1e9 = 0.5%. Both pools charge it, so the
	// total fee withheld on creation is 1%.
	DefaultTradeFeeBillionths uint32 = 5000000

	// DefaultDividendComputors is the size of the computor set the same
	// chain fee pool is split across on every tick.
	DefaultDividendComputors uint64 = 676

	feeDenominator uint64 = 1000000000
)

// Options configures a bridge at deployment time.
type Options struct {
	// Contract is the contract's own ledger identity, the destination of
	// pull transfers when order deposits are received.
	Contract Identity

	// Admin is the primary admin. Superseded by the multisig roster but
	// still accepted by AddLiquidity and reported by GetAdminID.
	Admin Identity

	// FeeRecipient receives the cross chain fee pool. May be left null;
	// the tick distribution then skips the flush.
	FeeRecipient Identity

	// Managers seed the manager roster, at most MaxManagers entries.
	Managers []Identity

	// MultisigAdmins seed the multisig roster, between 1 and MaxAdmins
	// entries. RequiredApprovals is the execution threshold and must be
	// between 1 and the number of admins.
	MultisigAdmins    []Identity
	RequiredApprovals uint8

	// TradeFeeBillionths is the per-pool fee rate in parts per billion.
	// Zero selects DefaultTradeFeeBillionths.
	TradeFeeBillionths uint32

	// DividendComputors is the computor set size used by the tick
	// distribution. Zero selects DefaultDividendComputors.
	DividendComputors uint64

	// SourceChain identifies this ledger in order responses.
	SourceChain uint32
}

// Validate returns the first configuration error found.
func (o *Options) Validate() error {
	if err := o.Contract.Validate(); err != nil {
		return errors.Wrap(err, "contract identity")
	}
	if err := o.Admin.Validate(); err != nil {
		return errors.Wrap(err, "admin")
	}
	if !o.FeeRecipient.IsNull() {
		if err := o.FeeRecipient.Validate(); err != nil {
			return errors.Wrap(err, "fee recipient")
		}
	}
	if len(o.Managers) > MaxManagers {
		return errors.Wrapf(errors.ErrMaxManagersReached, "%d managers", len(o.Managers))
	}
	for i, m := range o.Managers {
		if err := m.Validate(); err != nil {
			return errors.Wrapf(err, "manager %d", i)
		}
	}
	switch n := len(o.MultisigAdmins); {
	case n == 0:
		return errors.Wrap(errors.ErrInvalidAmount, "no multisig admins")
	case n > MaxAdmins:
		return errors.Wrapf(errors.ErrInvalidAmount, "%d multisig admins", n)
	}
	for i, a := range o.MultisigAdmins {
		if err := a.Validate(); err != nil {
			return errors.Wrapf(err, "multisig admin %d", i)
		}
	}
	if o.RequiredApprovals < 1 || int(o.RequiredApprovals) > len(o.MultisigAdmins) {
		return errors.Wrapf(errors.ErrInvalidAmount,
			"required approvals %d with %d admins", o.RequiredApprovals, len(o.MultisigAdmins))
	}
	return nil
}

// Bridge is the single global contract state. It is constructed once at
// deployment and mutated only through its operations. One mutex serializes
// every invocation, read or write, reproducing the host's whole-operation
// atomicity.
type Bridge struct {
	mu     sync.Mutex
	logger log.Logger
	cash   Cash

	contract     Identity
	admin        Identity
	feeRecipient Identity
	managers     [MaxManagers]Identity

	orders      [OrderSlots]BridgeOrder
	nextOrderID uint64

	lockedTokens        uint64
	totalReceivedTokens uint64

	sourceChain        uint32
	tradeFeeBillionths uint32

	// Cross chain pool, paid to the fee recipient.
	earnedFees      uint64
	distributedFees uint64

	// Same chain pool, split across the computor set.
	earnedFeesQubic      uint64
	distributedFeesQubic uint64
	dividendComputors    uint64

	admins            [MaxAdmins]Identity
	numberOfAdmins    uint8
	requiredApprovals uint8

	proposals      [ProposalSlots]AdminProposal
	nextProposalID uint64
}

// NewBridge constructs the contract state from validated options. Order ids
// and proposal ids start at 1 so that 0 never names a real record.
func NewBridge(opts Options, cash Cash) (*Bridge, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "options")
	}
	if cash == nil {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "no cash controller")
	}

	b := &Bridge{
		logger:               log.NewNopLogger(),
		cash:                 cash,
		contract:             opts.Contract.Clone(),
		admin:                opts.Admin.Clone(),
		feeRecipient:         opts.FeeRecipient.Clone(),
		nextOrderID:          1,
		nextProposalID:       1,
		sourceChain:          opts.SourceChain,
		tradeFeeBillionths:   opts.TradeFeeBillionths,
		dividendComputors:    opts.DividendComputors,
		numberOfAdmins:       uint8(len(opts.MultisigAdmins)),
		requiredApprovals:    opts.RequiredApprovals,
	}
	if b.tradeFeeBillionths == 0 {
		b.tradeFeeBillionths = DefaultTradeFeeBillionths
	}
	if b.dividendComputors == 0 {
		b.dividendComputors = DefaultDividendComputors
	}

	for i := range b.orders {
		b.orders[i] = emptyOrder()
	}
	for i, m := range opts.Managers {
		b.managers[i] = m.Clone()
	}
	for i, a := range opts.MultisigAdmins {
		b.admins[i] = a.Clone()
	}
	return b, nil
}

// WithLogger sets the structured log sink. Logging is fire and forget and
// never affects control flow or state.
func (b *Bridge) WithLogger(logger log.Logger) *Bridge {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	b.mu.Lock()
	b.logger = logger
	b.mu.Unlock()
	return b
}

func emptyOrder() BridgeOrder {
	return BridgeOrder{Status: OrderStatusEmpty}
}

// rejected emits the diagnostic record for a failed operation and passes the
// error through unchanged.
func (b *Bridge) rejected(op string, err error, keyvals ...interface{}) error {
	kv := append([]interface{}{"op", op, "code", errors.StatusCode(err)}, keyvals...)
	b.logger.Info("operation rejected", kv...)
	return err
}

// orderIndex finds the slot holding the order with the given id, or -1.
// Empty slots never match, their id field is meaningless.
func (b *Bridge) orderIndex(orderID uint64) int {
	for i := range b.orders {
		if b.orders[i].Status != OrderStatusEmpty && b.orders[i].OrderID == orderID {
			return i
		}
	}
	return -1
}
