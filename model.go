package ethbridge

// Store capacities. They are compile time constants and never grow; running
// out of slots is an observable error condition, not a reallocation trigger.
const (
	// OrderSlots is the capacity of the order store.
	OrderSlots = 1024
	// ProposalSlots is the capacity of the proposal store. Executed
	// proposals keep their slot, so this is a lifetime ceiling.
	ProposalSlots = 32
	// MaxManagers is the capacity of the manager roster.
	MaxManagers = 16
	// MaxAdmins is the capacity of the multisig admin roster.
	MaxAdmins = 16
)

// OrderStatus is the lifecycle stage of a bridge order. Transitions go
// Created to Completed or Refunded and never reverse.
type OrderStatus uint8

const (
	OrderStatusCreated   OrderStatus = 0
	OrderStatusCompleted OrderStatus = 1
	OrderStatusRefunded  OrderStatus = 2

	// OrderStatusEmpty marks a free store slot. It is a sentinel, never a
	// real lifecycle stage.
	OrderStatusEmpty OrderStatus = 255
)

func (s OrderStatus) String() string {
	switch s {
	case OrderStatusCreated:
		return "created"
	case OrderStatusCompleted:
		return "completed"
	case OrderStatusRefunded:
		return "refunded"
	case OrderStatusEmpty:
		return "empty"
	}
	return "invalid"
}

// Direction tells which way an order moves value.
type Direction uint8

const (
	// DirectionEthToQubic releases previously locked tokens to a native
	// destination once the foreign side burn is confirmed.
	DirectionEthToQubic Direction = 0
	// DirectionQubicToEth locks native tokens in the contract until the
	// foreign side mint is confirmed.
	DirectionQubicToEth Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionEthToQubic:
		return "eth-to-qubic"
	case DirectionQubicToEth:
		return "qubic-to-eth"
	}
	return "invalid"
}

// BridgeOrder is one pending or resolved transfer. Exactly one order
// occupies a store slot at a time and its id is unique among non-empty
// slots, even across slot reclamation.
type BridgeOrder struct {
	OrderID          uint64
	QubicSender      Identity
	QubicDestination Identity
	EthAddress       EthAddress
	Amount           uint64
	Status           OrderStatus
	Direction        Direction

	// TokensReceived and TokensLocked track the deposit sub-status of
	// QubicToEth orders. Tokens must be received before they count as
	// locked.
	TokensReceived bool
	TokensLocked   bool
}

// ProposalType selects the administrative effect a proposal executes once
// its approval threshold is reached. The set is closed; the execution switch
// matches it exhaustively.
type ProposalType uint8

const (
	ProposalSetAdmin        ProposalType = 1
	ProposalAddManager      ProposalType = 2
	ProposalRemoveManager   ProposalType = 3
	ProposalWithdrawFees    ProposalType = 4
	ProposalChangeThreshold ProposalType = 5
)

func (t ProposalType) String() string {
	switch t {
	case ProposalSetAdmin:
		return "set-admin"
	case ProposalAddManager:
		return "add-manager"
	case ProposalRemoveManager:
		return "remove-manager"
	case ProposalWithdrawFees:
		return "withdraw-fees"
	case ProposalChangeThreshold:
		return "change-threshold"
	}
	return "invalid"
}

// AdminProposal is one pending or executed governance action. A slot is free
// only while Active is false and ProposalID is zero, which means a created
// proposal never frees its slot again.
type AdminProposal struct {
	ProposalID uint64
	Type       ProposalType

	// Target is the identity a SetAdmin, AddManager or RemoveManager
	// proposal acts on. Amount carries the quantity for WithdrawFees and
	// the new threshold for ChangeThreshold.
	Target Identity
	Amount uint64

	Approvals      [MaxAdmins]Identity
	ApprovalsCount uint8

	Executed bool
	Active   bool
}

// HasApproval returns whether id already approved this proposal.
func (p *AdminProposal) HasApproval(id Identity) bool {
	for i := uint8(0); i < p.ApprovalsCount; i++ {
		if p.Approvals[i].Equals(id) {
			return true
		}
	}
	return false
}
