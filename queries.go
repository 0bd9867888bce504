package ethbridge

import (
	"github.com/vottun/ethbridge/errors"
)

// OrderResponse is the read-only view of a stored order.
type OrderResponse struct {
	OrderID            uint64
	OriginAccount      Identity
	DestinationAccount EthAddress
	QubicDestination   Identity
	Amount             uint64
	Status             OrderStatus
	Direction          Direction
	TokensReceived     bool
	TokensLocked       bool
	SourceChain        uint32
}

// OrderMatch is the result of a detail lookup.
type OrderMatch struct {
	OrderID          uint64
	QubicDestination Identity
}

// FeeInfo reports both fee pools. Available is the cross chain amount a
// WithdrawFees proposal can still pay out.
type FeeInfo struct {
	AvailableFees        uint64
	EarnedFees           uint64
	DistributedFees      uint64
	EarnedFeesQubic      uint64
	DistributedFeesQubic uint64
}

// ContractInfoOrders is the number of orders previewed by GetContractInfo.
const ContractInfoOrders = 16

// ContractInfo is a snapshot of the whole contract for diagnostics.
type ContractInfo struct {
	Admin               Identity
	Managers            [MaxManagers]Identity
	NumberOfAdmins      uint8
	RequiredApprovals   uint8
	NextOrderID         uint64
	LockedTokens        uint64
	TotalReceivedTokens uint64
	EarnedFees          uint64
	TradeFeeBillionths  uint32
	SourceChain         uint32

	// FirstOrders previews the first slots of the store as they are,
	// empty sentinels included.
	FirstOrders [ContractInfoOrders]BridgeOrder
	TotalOrders uint64
	EmptySlots  uint64
}

// GetOrder returns the order with the given id.
func (b *Bridge) GetOrder(orderID uint64) (*OrderResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.orderIndex(orderID)
	if idx < 0 {
		return nil, errors.Wrapf(errors.ErrOrderNotFound, "order %d", orderID)
	}
	order := b.orders[idx]
	return &OrderResponse{
		OrderID:            order.OrderID,
		OriginAccount:      order.QubicSender.Clone(),
		DestinationAccount: order.EthAddress,
		QubicDestination:   order.QubicDestination.Clone(),
		Amount:             order.Amount,
		Status:             order.Status,
		Direction:          order.Direction,
		TokensReceived:     order.TokensReceived,
		TokensLocked:       order.TokensLocked,
		SourceChain:        b.sourceChain,
	}, nil
}

// GetOrderByDetails finds the first order matching the given destination
// address, amount and status exactly. The scan runs in slot order; no other
// ordering is guaranteed.
func (b *Bridge) GetOrderByDetails(addr EthAddress, amount uint64, status OrderStatus) (*OrderMatch, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if amount == 0 {
		return nil, errors.Wrap(errors.ErrInvalidAmount, "amount is zero")
	}
	for i := range b.orders {
		order := &b.orders[i]
		if order.Status == OrderStatusEmpty {
			continue
		}
		if order.EthAddress == addr && order.Amount == amount && order.Status == status {
			return &OrderMatch{
				OrderID:          order.OrderID,
				QubicDestination: order.QubicDestination.Clone(),
			}, nil
		}
	}
	return nil, errors.Wrap(errors.ErrOrderNotFound, "no matching order")
}

// GetProposal returns the proposal with the given id. Unlike order lookups
// this matches executed proposals too: an id stays queryable forever.
func (b *Bridge) GetProposal(proposalID uint64) (*AdminProposal, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.proposals {
		if b.proposals[i].ProposalID == proposalID && proposalID != 0 {
			cpy := b.proposals[i]
			cpy.Target = b.proposals[i].Target.Clone()
			for j := range cpy.Approvals {
				cpy.Approvals[j] = b.proposals[i].Approvals[j].Clone()
			}
			return &cpy, nil
		}
	}
	return nil, errors.Wrapf(errors.ErrProposalNotFound, "proposal %d", proposalID)
}

// GetAdminID returns the primary admin identity.
func (b *Bridge) GetAdminID() Identity {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.admin.Clone()
}

// IsManager reports whether id is in the manager roster.
func (b *Bridge) IsManager(id Identity) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isManager(id)
}

// IsAdmin reports whether id is the primary admin.
func (b *Bridge) IsAdmin(id Identity) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isAdmin(id)
}

// IsMultisigAdmin reports whether id is in the multisig roster.
func (b *Bridge) IsMultisigAdmin(id Identity) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.isMultisigAdmin(id)
}

// GetTotalLockedTokens returns the contract custodied balance backing
// pending native payouts.
func (b *Bridge) GetTotalLockedTokens() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lockedTokens
}

// GetTotalReceivedTokens returns the lifetime total of tokens received.
func (b *Bridge) GetTotalReceivedTokens() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalReceivedTokens
}

// GetAvailableFees returns both fee pools.
func (b *Bridge) GetAvailableFees() *FeeInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &FeeInfo{
		AvailableFees:        b.earnedFees - b.distributedFees,
		EarnedFees:           b.earnedFees,
		DistributedFees:      b.distributedFees,
		EarnedFeesQubic:      b.earnedFeesQubic,
		DistributedFeesQubic: b.distributedFeesQubic,
	}
}

// GetContractInfo returns a diagnostic snapshot of the contract state.
func (b *Bridge) GetContractInfo() *ContractInfo {
	b.mu.Lock()
	defer b.mu.Unlock()

	info := &ContractInfo{
		Admin:               b.admin.Clone(),
		NumberOfAdmins:      b.numberOfAdmins,
		RequiredApprovals:   b.requiredApprovals,
		NextOrderID:         b.nextOrderID,
		LockedTokens:        b.lockedTokens,
		TotalReceivedTokens: b.totalReceivedTokens,
		EarnedFees:          b.earnedFees,
		TradeFeeBillionths:  b.tradeFeeBillionths,
		SourceChain:         b.sourceChain,
	}
	for i := range b.managers {
		info.Managers[i] = b.managers[i].Clone()
	}
	for i := 0; i < ContractInfoOrders; i++ {
		order := b.orders[i]
		order.QubicSender = order.QubicSender.Clone()
		order.QubicDestination = order.QubicDestination.Clone()
		info.FirstOrders[i] = order
	}
	for i := range b.orders {
		if b.orders[i].Status == OrderStatusEmpty {
			info.EmptySlots++
		} else {
			info.TotalOrders++
		}
	}
	return info
}
