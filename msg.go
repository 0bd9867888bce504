package ethbridge

import (
	"github.com/vottun/ethbridge/errors"
)

// CreateOrderMsg opens a new bridge order.
type CreateOrderMsg struct {
	// QubicDestination receives the released tokens for EthToQubic
	// orders. It is ignored for QubicToEth orders, where the destination
	// on the native side is the invocator itself.
	QubicDestination Identity
	Amount           uint64
	EthAddress       EthAddress
	Direction        Direction
}

func (m *CreateOrderMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount is zero")
	}
	switch m.Direction {
	case DirectionQubicToEth:
	case DirectionEthToQubic:
		if err := m.QubicDestination.Validate(); err != nil {
			return errors.Wrap(err, "qubic destination")
		}
	default:
		return errors.Wrapf(errors.ErrInvalidAmount, "direction %d", m.Direction)
	}
	return nil
}

// TransferToContractMsg deposits the tokens backing a QubicToEth order into
// the contract's custody.
type TransferToContractMsg struct {
	OrderID uint64
	Amount  uint64
}

func (m *TransferToContractMsg) Validate() error {
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "amount is zero")
	}
	return nil
}

// CompleteOrderMsg finishes an order after the counter-chain action was
// confirmed.
type CompleteOrderMsg struct {
	OrderID uint64
}

func (m *CompleteOrderMsg) Validate() error {
	return nil
}

// RefundOrderMsg cancels an order and returns any deposited tokens to the
// original sender.
type RefundOrderMsg struct {
	OrderID uint64
}

func (m *RefundOrderMsg) Validate() error {
	return nil
}

// CreateProposalMsg opens a governance proposal. The creator approves
// automatically.
type CreateProposalMsg struct {
	Type   ProposalType
	Target Identity
	Amount uint64
}

func (m *CreateProposalMsg) Validate() error {
	// An out-of-range type reports the invalid amount status. The code is
	// part of the protocol surface and cannot change.
	if m.Type < ProposalSetAdmin || m.Type > ProposalChangeThreshold {
		return errors.Wrapf(errors.ErrInvalidAmount, "proposal type %d", m.Type)
	}
	return nil
}

// ApproveProposalMsg records the invocator's approval and executes the
// proposal when the threshold is reached.
type ApproveProposalMsg struct {
	ProposalID uint64
}

func (m *ApproveProposalMsg) Validate() error {
	return nil
}
