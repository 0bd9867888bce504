package ethbridge

import (
	"context"
	"math"

	"github.com/vottun/ethbridge/errors"
)

// CreateOrderResult reports the id assigned to a freshly created order.
type CreateOrderResult struct {
	OrderID uint64
}

// AddLiquidityResult reports a liquidity deposit.
type AddLiquidityResult struct {
	Added       uint64
	TotalLocked uint64
}

// CreateOrder opens a new bridge order.
//
// The attached invocation reward must cover the trade fee for both pools,
// 2 x amount x rate / 1e9. No tokens move here: the fee is accrued into the
// pools and the order waits for its deposit (QubicToEth) or for completion
// against the locked pool (EthToQubic). Fees accrued here are never
// reversed, even if the order is later refunded; they pay for bridge relay
// effort already expended.
func (b *Bridge) CreateOrder(ctx context.Context, msg *CreateOrderMsg) (*CreateOrderResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := msg.Validate(); err != nil {
		return nil, b.rejected("create order", err, "amount", msg.Amount)
	}

	// The fee multiply must not wrap, an undercharged fee is worse than a
	// rejected order.
	if msg.Amount > math.MaxUint64/uint64(b.tradeFeeBillionths) {
		return nil, b.rejected("create order",
			errors.Wrapf(errors.ErrInvalidAmount, "amount %d overflows fee computation", msg.Amount),
			"amount", msg.Amount)
	}
	feeEth := msg.Amount * uint64(b.tradeFeeBillionths) / feeDenominator
	feeQubic := msg.Amount * uint64(b.tradeFeeBillionths) / feeDenominator
	if reward := InvocationReward(ctx); reward < feeEth+feeQubic {
		return nil, b.rejected("create order",
			errors.Wrapf(errors.ErrInsufficientFee, "reward %d, fee %d", reward, feeEth+feeQubic),
			"amount", msg.Amount)
	}

	sender := Invocator(ctx)
	if sender.IsNull() {
		return nil, b.rejected("create order", errors.Wrap(errors.ErrNotAuthorized, "no invocator"))
	}

	var destination Identity
	switch msg.Direction {
	case DirectionEthToQubic:
		destination = msg.QubicDestination.Clone()
		// The locked pool must already back the payout promised on
		// completion.
		if b.lockedTokens < msg.Amount {
			return nil, b.rejected("create order",
				errors.Wrapf(errors.ErrInsufficientLockedTokens, "locked %d, amount %d", b.lockedTokens, msg.Amount),
				"amount", msg.Amount)
		}
	case DirectionQubicToEth:
		destination = sender.Clone()
	}

	slot, err := b.freeOrderSlot()
	if err != nil {
		return nil, b.rejected("create order", err, "amount", msg.Amount)
	}

	// All checks passed, state writes start here.
	b.earnedFees += feeEth
	b.earnedFeesQubic += feeQubic

	order := BridgeOrder{
		OrderID:          b.nextOrderID,
		QubicSender:      sender.Clone(),
		QubicDestination: destination,
		EthAddress:       msg.EthAddress,
		Amount:           msg.Amount,
		Status:           OrderStatusCreated,
		Direction:        msg.Direction,
	}
	b.nextOrderID++
	b.orders[slot] = order

	b.logger.Info("order created",
		"order_id", order.OrderID,
		"amount", order.Amount,
		"direction", order.Direction.String(),
	)
	return &CreateOrderResult{OrderID: order.OrderID}, nil
}

// freeOrderSlot returns the index of a free order slot. When the first scan
// finds none it reclaims every refunded slot and scans once more. Completed
// orders keep their slot until a refunded one frees capacity.
func (b *Bridge) freeOrderSlot() (int, error) {
	for i := range b.orders {
		if b.orders[i].Status == OrderStatusEmpty {
			return i, nil
		}
	}

	cleaned := 0
	for i := range b.orders {
		if b.orders[i].Status == OrderStatusRefunded {
			b.orders[i] = emptyOrder()
			cleaned++
		}
	}
	if cleaned > 0 {
		for i := range b.orders {
			if b.orders[i].Status == OrderStatusEmpty {
				return i, nil
			}
		}
	}
	return -1, errors.Wrapf(errors.ErrNoAvailableSlots, "reclaimed %d", cleaned)
}

// TransferToContract deposits the tokens backing a QubicToEth order into the
// contract's custody. Only the order's creator may call it, the amount must
// match the order exactly, and a successful deposit marks the tokens as both
// received and locked.
func (b *Bridge) TransferToContract(ctx context.Context, msg *TransferToContractMsg) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := msg.Validate(); err != nil {
		return b.rejected("transfer to contract", err, "order_id", msg.OrderID)
	}

	idx := b.orderIndex(msg.OrderID)
	if idx < 0 {
		return b.rejected("transfer to contract",
			errors.Wrapf(errors.ErrOrderNotFound, "order %d", msg.OrderID),
			"order_id", msg.OrderID)
	}
	order := b.orders[idx]

	if !order.QubicSender.Equals(Invocator(ctx)) {
		return b.rejected("transfer to contract",
			errors.Wrap(errors.ErrNotAuthorized, "only the order creator may deposit"),
			"order_id", msg.OrderID)
	}
	if order.Direction != DirectionQubicToEth {
		return b.rejected("transfer to contract",
			errors.Wrap(errors.ErrInvalidOrderState, "order does not take deposits"),
			"order_id", msg.OrderID)
	}
	if order.Status != OrderStatusCreated {
		return b.rejected("transfer to contract",
			errors.Wrapf(errors.ErrInvalidOrderState, "status %s", order.Status),
			"order_id", msg.OrderID)
	}
	if order.TokensReceived {
		return b.rejected("transfer to contract",
			errors.Wrap(errors.ErrInvalidOrderState, "tokens already received"),
			"order_id", msg.OrderID)
	}
	if msg.Amount != order.Amount {
		return b.rejected("transfer to contract",
			errors.Wrapf(errors.ErrInvalidAmount, "deposit %d, order %d", msg.Amount, order.Amount),
			"order_id", msg.OrderID)
	}

	if err := b.cash.Transfer(b.contract, msg.Amount); err != nil {
		return b.rejected("transfer to contract",
			errors.Wrap(errors.ErrTransferFailed, err.Error()),
			"order_id", msg.OrderID)
	}

	b.lockedTokens += msg.Amount
	order.TokensReceived = true
	order.TokensLocked = true
	b.orders[idx] = order

	b.logger.Info("tokens received",
		"order_id", order.OrderID,
		"amount", msg.Amount,
		"locked_tokens", b.lockedTokens,
	)
	return nil
}

// CompleteOrder finishes a created order. Managers only.
//
// QubicToEth orders must have their deposit received and locked; the tokens
// stay in the locked pool backing the foreign side mint. EthToQubic orders
// pay the full recorded amount to the native destination and shrink the
// pool. The fee was withheld at creation and is not deducted again.
func (b *Bridge) CompleteOrder(ctx context.Context, msg *CompleteOrderMsg) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isManager(Invocator(ctx)) {
		return b.rejected("complete order",
			errors.Wrap(errors.ErrNotManager, "only managers complete orders"),
			"order_id", msg.OrderID)
	}

	idx := b.orderIndex(msg.OrderID)
	if idx < 0 {
		return b.rejected("complete order",
			errors.Wrapf(errors.ErrOrderNotFound, "order %d", msg.OrderID),
			"order_id", msg.OrderID)
	}
	order := b.orders[idx]

	if order.Status != OrderStatusCreated {
		return b.rejected("complete order",
			errors.Wrapf(errors.ErrInvalidOrderState, "status %s", order.Status),
			"order_id", msg.OrderID)
	}

	switch order.Direction {
	case DirectionQubicToEth:
		if !order.TokensReceived || !order.TokensLocked {
			return b.rejected("complete order",
				errors.Wrap(errors.ErrInvalidOrderState, "deposit not received"),
				"order_id", msg.OrderID)
		}
		// The deposit already sits in the locked pool, nothing moves.

	case DirectionEthToQubic:
		if b.lockedTokens < order.Amount {
			return b.rejected("complete order",
				errors.Wrapf(errors.ErrInsufficientLockedTokens, "locked %d, amount %d", b.lockedTokens, order.Amount),
				"order_id", msg.OrderID)
		}
		if err := b.cash.Transfer(order.QubicDestination, order.Amount); err != nil {
			return b.rejected("complete order",
				errors.Wrap(errors.ErrTransferFailed, err.Error()),
				"order_id", msg.OrderID)
		}
		b.lockedTokens -= order.Amount
	}

	order.Status = OrderStatusCompleted
	b.orders[idx] = order

	b.logger.Info("order completed",
		"order_id", order.OrderID,
		"amount", order.Amount,
		"locked_tokens", b.lockedTokens,
	)
	return nil
}

// RefundOrder cancels a created order. Managers only.
//
// A QubicToEth order whose deposit was never received flips straight to
// refunded; with the deposit in custody the recorded amount goes back to the
// original sender and leaves the locked pool. EthToQubic orders took nothing
// from the contract before completion, so the flip is pure. The creation
// time fee is not returned in any case.
func (b *Bridge) RefundOrder(ctx context.Context, msg *RefundOrderMsg) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isManager(Invocator(ctx)) {
		return b.rejected("refund order",
			errors.Wrap(errors.ErrNotManager, "only managers refund orders"),
			"order_id", msg.OrderID)
	}

	idx := b.orderIndex(msg.OrderID)
	if idx < 0 {
		return b.rejected("refund order",
			errors.Wrapf(errors.ErrOrderNotFound, "order %d", msg.OrderID),
			"order_id", msg.OrderID)
	}
	order := b.orders[idx]

	if order.Status != OrderStatusCreated {
		return b.rejected("refund order",
			errors.Wrapf(errors.ErrInvalidOrderState, "status %s", order.Status),
			"order_id", msg.OrderID)
	}

	if order.Direction == DirectionQubicToEth && order.TokensReceived {
		if !order.TokensLocked {
			return b.rejected("refund order",
				errors.Wrap(errors.ErrInvalidOrderState, "deposit received but not locked"),
				"order_id", msg.OrderID)
		}
		if b.lockedTokens < order.Amount {
			return b.rejected("refund order",
				errors.Wrapf(errors.ErrInsufficientLockedTokens, "locked %d, amount %d", b.lockedTokens, order.Amount),
				"order_id", msg.OrderID)
		}
		if err := b.cash.Transfer(order.QubicSender, order.Amount); err != nil {
			return b.rejected("refund order",
				errors.Wrap(errors.ErrTransferFailed, err.Error()),
				"order_id", msg.OrderID)
		}
		b.lockedTokens -= order.Amount
	}

	order.Status = OrderStatusRefunded
	b.orders[idx] = order

	b.logger.Info("order refunded",
		"order_id", order.OrderID,
		"amount", order.Amount,
		"locked_tokens", b.lockedTokens,
	)
	return nil
}

// AddLiquidity deposits the attached invocation reward into the locked pool
// so that EthToQubic orders can be created and completed. Managers and the
// primary admin only.
func (b *Bridge) AddLiquidity(ctx context.Context) (*AddLiquidityResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	caller := Invocator(ctx)
	if !b.isManager(caller) && !b.isAdmin(caller) {
		return nil, b.rejected("add liquidity",
			errors.Wrap(errors.ErrNotAuthorized, "only managers or the admin add liquidity"))
	}

	deposit := InvocationReward(ctx)
	if deposit == 0 {
		return nil, b.rejected("add liquidity",
			errors.Wrap(errors.ErrInvalidAmount, "no value attached"))
	}

	b.lockedTokens += deposit
	b.totalReceivedTokens += deposit

	b.logger.Info("liquidity added",
		"amount", deposit,
		"locked_tokens", b.lockedTokens,
	)
	return &AddLiquidityResult{
		Added:       deposit,
		TotalLocked: b.lockedTokens,
	}, nil
}
