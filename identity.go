package ethbridge

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/vottun/ethbridge/errors"
)

// IdentityLength is the length in bytes of every native (Qubic side)
// identity. You cannot change it during the lifetime of the contract state.
const IdentityLength = 32

// EthAddressLength is the length in bytes of the destination address slot on
// the Ethereum side. Addresses shorter than the slot are zero padded.
const EthAddressLength = 64

// Identity is a native chain identity. The zero value (nil, empty, or all
// zero bytes) is the null identity, used to mark free roster slots. It is
// never a valid participant.
type Identity []byte

// Equals checks if both identities refer to the same account. A nil identity
// and an all-zero identity are considered equal.
func (a Identity) Equals(b Identity) bool {
	if a.IsNull() && b.IsNull() {
		return true
	}
	return bytes.Equal(a, b)
}

// IsNull returns true for the null identity.
func (a Identity) IsNull() bool {
	for _, c := range a {
		if c != 0 {
			return false
		}
	}
	return true
}

// Validate returns an error if this is not a usable identity.
func (a Identity) Validate() error {
	if len(a) != IdentityLength {
		return errors.Wrapf(errors.ErrInvalidAmount, "identity: invalid length %d", len(a))
	}
	if a.IsNull() {
		return errors.Wrap(errors.ErrInvalidAmount, "identity: null")
	}
	return nil
}

// Clone returns an independent copy so that the caller cannot mutate stored
// state through a shared backing array.
func (a Identity) Clone() Identity {
	if a == nil {
		return nil
	}
	cpy := make(Identity, len(a))
	copy(cpy, a)
	return cpy
}

// String returns an upper-case hex representation.
func (a Identity) String() string {
	if a.IsNull() {
		return "(null)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// ParseIdentity decodes an identity from its hex representation.
func ParseIdentity(enc string) (Identity, error) {
	raw, err := hex.DecodeString(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidAmount, "identity: %s", err)
	}
	id := Identity(raw)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return id, nil
}

// EthAddress is the fixed-size destination address slot on the Ethereum
// side. Values compare with ==.
type EthAddress [EthAddressLength]byte

// IsZero returns true when no address was set.
func (a EthAddress) IsZero() bool {
	return a == EthAddress{}
}

// String returns the address payload with trailing zero padding removed.
func (a EthAddress) String() string {
	end := len(a)
	for end > 0 && a[end-1] == 0 {
		end--
	}
	return string(a[:end])
}

// NewEthAddress copies raw into a zero padded address slot. Input longer
// than the slot is rejected.
func NewEthAddress(raw []byte) (EthAddress, error) {
	var addr EthAddress
	if len(raw) > EthAddressLength {
		return addr, errors.Wrapf(errors.ErrInvalidAmount, "eth address: invalid length %d", len(raw))
	}
	copy(addr[:], raw)
	return addr, nil
}
