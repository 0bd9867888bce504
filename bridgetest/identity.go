package bridgetest

import (
	"encoding/binary"
	"fmt"
	"sync/atomic"

	"github.com/vottun/ethbridge"
)

var identitySeq uint64

// NewIdentity returns a unique, deterministic-length identity. Each call
// produces a different identity, never the null one.
func NewIdentity() ethbridge.Identity {
	n := atomic.AddUint64(&identitySeq, 1)
	id := make(ethbridge.Identity, ethbridge.IdentityLength)
	binary.BigEndian.PutUint64(id[ethbridge.IdentityLength-8:], n)
	return id
}

// NewEthAddress returns a unique destination address in the 0x-prefixed
// ASCII form the bridge relays carry.
func NewEthAddress() ethbridge.EthAddress {
	n := atomic.AddUint64(&identitySeq, 1)
	addr, err := ethbridge.NewEthAddress([]byte(fmt.Sprintf("0x%040x", n)))
	if err != nil {
		panic(err)
	}
	return addr
}
