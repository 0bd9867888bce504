package ethbridge

import (
	"context"

	"github.com/vottun/ethbridge/errors"
)

// Role checks are pure predicates over the roster data. The set of roles is
// closed: primary admin, manager, multisig admin.

func (b *Bridge) isAdmin(id Identity) bool {
	return !b.admin.IsNull() && b.admin.Equals(id)
}

func (b *Bridge) isManager(id Identity) bool {
	if id.IsNull() {
		return false
	}
	for i := range b.managers {
		if b.managers[i].Equals(id) {
			return true
		}
	}
	return false
}

func (b *Bridge) isMultisigAdmin(id Identity) bool {
	if id.IsNull() {
		return false
	}
	for i := uint8(0); i < b.numberOfAdmins; i++ {
		if b.admins[i].Equals(id) {
			return true
		}
	}
	return false
}

// Legacy single-admin mutators. They are permanently disabled and kept only
// for call-signature compatibility: every invocation fails with the not
// authorized status and performs no state mutation. Governance goes through
// CreateProposal and ApproveProposal.

// SetAdmin is disabled. Use a SetAdmin proposal.
func (b *Bridge) SetAdmin(ctx context.Context, target Identity) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rejected("set admin", errors.Wrap(errors.ErrNotAuthorized, "disabled legacy operation"))
}

// AddManager is disabled. Use an AddManager proposal.
func (b *Bridge) AddManager(ctx context.Context, target Identity) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rejected("add manager", errors.Wrap(errors.ErrNotAuthorized, "disabled legacy operation"))
}

// RemoveManager is disabled. Use a RemoveManager proposal.
func (b *Bridge) RemoveManager(ctx context.Context, target Identity) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rejected("remove manager", errors.Wrap(errors.ErrNotAuthorized, "disabled legacy operation"))
}

// WithdrawFees is disabled. Use a WithdrawFees proposal.
func (b *Bridge) WithdrawFees(ctx context.Context, amount uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rejected("withdraw fees", errors.Wrap(errors.ErrNotAuthorized, "disabled legacy operation"))
}
