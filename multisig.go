package ethbridge

import (
	"context"

	"github.com/vottun/ethbridge/errors"
)

// CreateProposalResult reports the id assigned to a freshly created
// proposal.
type CreateProposalResult struct {
	ProposalID uint64
}

// ApproveProposalResult reports whether the approval triggered execution.
type ApproveProposalResult struct {
	Executed bool
}

// CreateProposal opens a governance proposal. Multisig admins only. The
// creator counts as the first approver.
//
// A slot is free only while it is inactive and still carries the zero id,
// so executed proposals are never reclaimed and the store capacity is a
// lifetime ceiling on proposal count.
func (b *Bridge) CreateProposal(ctx context.Context, msg *CreateProposalMsg) (*CreateProposalResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	caller := Invocator(ctx)
	if !b.isMultisigAdmin(caller) {
		return nil, b.rejected("create proposal",
			errors.Wrap(errors.ErrNotOwner, "only multisig admins create proposals"))
	}

	if err := msg.Validate(); err != nil {
		return nil, b.rejected("create proposal", err)
	}

	slot := -1
	for i := range b.proposals {
		if !b.proposals[i].Active && b.proposals[i].ProposalID == 0 {
			slot = i
			break
		}
	}
	if slot < 0 {
		return nil, b.rejected("create proposal",
			errors.Wrapf(errors.ErrMaxProposalsReached, "%d slots", ProposalSlots))
	}

	proposal := AdminProposal{
		ProposalID:     b.nextProposalID,
		Type:           msg.Type,
		Target:         msg.Target.Clone(),
		Amount:         msg.Amount,
		ApprovalsCount: 1,
		Active:         true,
	}
	proposal.Approvals[0] = caller.Clone()
	b.nextProposalID++
	b.proposals[slot] = proposal

	b.logger.Info("proposal created",
		"proposal_id", proposal.ProposalID,
		"type", proposal.Type.String(),
		"amount", proposal.Amount,
	)
	return &CreateProposalResult{ProposalID: proposal.ProposalID}, nil
}

// ApproveProposal records the caller's approval. Multisig admins only, one
// approval per identity. When the approval count reaches the required
// threshold the proposal executes atomically within this call and is frozen.
//
// Execution is attempted once, not guaranteed to change state: an effect
// that internally no-ops (manager set full, target missing, withdraw amount
// out of range) still marks the proposal executed.
func (b *Bridge) ApproveProposal(ctx context.Context, msg *ApproveProposalMsg) (*ApproveProposalResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	caller := Invocator(ctx)
	if !b.isMultisigAdmin(caller) {
		return nil, b.rejected("approve proposal",
			errors.Wrap(errors.ErrNotOwner, "only multisig admins approve proposals"),
			"proposal_id", msg.ProposalID)
	}

	idx := -1
	for i := range b.proposals {
		if b.proposals[i].Active && b.proposals[i].ProposalID == msg.ProposalID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, b.rejected("approve proposal",
			errors.Wrapf(errors.ErrProposalNotFound, "proposal %d", msg.ProposalID),
			"proposal_id", msg.ProposalID)
	}
	proposal := b.proposals[idx]

	if proposal.Executed {
		return nil, b.rejected("approve proposal",
			errors.Wrapf(errors.ErrProposalExecuted, "proposal %d", msg.ProposalID),
			"proposal_id", msg.ProposalID)
	}
	if proposal.HasApproval(caller) {
		return nil, b.rejected("approve proposal",
			errors.Wrapf(errors.ErrProposalApproved, "proposal %d", msg.ProposalID),
			"proposal_id", msg.ProposalID)
	}

	proposal.Approvals[proposal.ApprovalsCount] = caller.Clone()
	proposal.ApprovalsCount++

	executed := false
	if proposal.ApprovalsCount >= b.requiredApprovals {
		b.executeProposal(&proposal)
		proposal.Executed = true
		executed = true
	}
	b.proposals[idx] = proposal

	b.logger.Info("proposal approved",
		"proposal_id", proposal.ProposalID,
		"approvals", proposal.ApprovalsCount,
		"executed", executed,
	)
	return &ApproveProposalResult{Executed: executed}, nil
}

// executeProposal applies the type specific effect. The proposal type set is
// closed and matched exhaustively here; CreateProposal already rejected
// anything outside it.
func (b *Bridge) executeProposal(p *AdminProposal) {
	switch p.Type {
	case ProposalSetAdmin:
		b.admin = p.Target.Clone()
		b.logger.Info("admin changed", "admin", b.admin.String())

	case ProposalAddManager:
		// No-ops silently when the set is full.
		for i := range b.managers {
			if b.managers[i].IsNull() {
				b.managers[i] = p.Target.Clone()
				b.logger.Info("manager added", "manager", p.Target.String())
				break
			}
		}

	case ProposalRemoveManager:
		// No-ops silently when the target is not a manager.
		for i := range b.managers {
			if b.managers[i].Equals(p.Target) {
				b.managers[i] = nil
				b.logger.Info("manager removed", "manager", p.Target.String())
				break
			}
		}

	case ProposalWithdrawFees:
		available := b.earnedFees - b.distributedFees
		if p.Amount > 0 && p.Amount <= available {
			if err := b.cash.Transfer(b.feeRecipient, p.Amount); err == nil {
				b.distributedFees += p.Amount
				b.logger.Info("fees withdrawn",
					"amount", p.Amount,
					"distributed_fees", b.distributedFees,
				)
			}
		}

	case ProposalChangeThreshold:
		if p.Amount > 0 && p.Amount <= uint64(b.numberOfAdmins) {
			b.requiredApprovals = uint8(p.Amount)
			b.logger.Info("threshold changed", "required_approvals", b.requiredApprovals)
		}
	}
}
